package address

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(userID int) ([]Address, error) {
	rows, err := r.db.Query(
		`SELECT "addressId", "userId", label, line, phone, "createdAt", "updatedAt" FROM addresses WHERE "userId" = $1 ORDER BY "addressId"`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		var a Address
		var label, phone sql.NullString
		if err := rows.Scan(&a.ID, &a.UserID, &label, &a.Line, &phone, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Label = label.String
		a.Phone = phone.String
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(addr Address) (Address, error) {
	err := r.db.QueryRow(
		`INSERT INTO addresses ("userId", label, line, phone, "createdAt", "updatedAt") VALUES ($1,$2,$3,$4,$5,$6) RETURNING "addressId"`,
		addr.UserID, addr.Label, addr.Line, addr.Phone, addr.CreatedAt, addr.UpdatedAt,
	).Scan(&addr.ID)
	if err != nil {
		return Address{}, err
	}
	return addr, nil
}

func (r *PostgresRepository) Delete(userID, addressID int) error {
	res, err := r.db.Exec(`DELETE FROM addresses WHERE "userId" = $1 AND "addressId" = $2`, userID, addressID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
