package payment

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]PaymentType, error) {
	rows, err := r.db.Query(`SELECT "paymentTypeId", name FROM payment_types ORDER BY "paymentTypeId"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PaymentType, 0)
	for rows.Next() {
		var t PaymentType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (PaymentType, error) {
	var t PaymentType
	err := r.db.QueryRow(`SELECT "paymentTypeId", name FROM payment_types WHERE "paymentTypeId" = $1`, id).Scan(&t.ID, &t.Name)
	if err == sql.ErrNoRows {
		return PaymentType{}, ErrNotFound
	}
	if err != nil {
		return PaymentType{}, err
	}
	return t, nil
}
