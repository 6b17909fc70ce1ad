package user

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(`SELECT "userId", name, phone, email, "createdAt", "updatedAt" FROM users WHERE "userId" = $1`, id)
	return scanUser(row)
}

func (r *PostgresRepository) GetByNameAndPhone(name, phone string) (User, error) {
	row := r.db.QueryRow(`SELECT "userId", name, phone, email, "createdAt", "updatedAt" FROM users WHERE name = $1 AND phone = $2`, name, phone)
	return scanUser(row)
}

func (r *PostgresRepository) Create(user User) (User, error) {
	err := r.db.QueryRow(
		`INSERT INTO users (name, phone, email, "createdAt", "updatedAt") VALUES ($1,$2,$3,$4,$5) RETURNING "userId"`,
		user.Name, user.Phone, nullable(user.Email), user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		// the unique index on (name, phone) reports duplicates
		if strings.Contains(err.Error(), "duplicate key") {
			return User{}, ErrDuplicate
		}
		return User{}, err
	}
	return user, nil
}

func scanUser(row *sql.Row) (User, error) {
	var u User
	var email sql.NullString
	err := row.Scan(&u.ID, &u.Name, &u.Phone, &email, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	u.Email = email.String
	return u, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
