package catalog

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listBasketsQuery = `
		SELECT "basketId", name, description, "basePrice", size, "customizationLimit", active
		FROM baskets
		WHERE active = TRUE
		ORDER BY "basketId"
	`
	getBasketQuery = `
		SELECT "basketId", name, description, "basePrice", size, "customizationLimit", active
		FROM baskets
		WHERE "basketId" = $1
	`
	listContentsQuery = `
		SELECT bc."candyId", c.name, c."unitPrice", bc.quantity
		FROM basket_contents bc
		JOIN candies c ON c."candyId" = bc."candyId"
		WHERE bc."basketId" = $1
		ORDER BY bc."candyId"
	`
	listCandiesQuery = `
		SELECT "candyId", name, "unitPrice", type, active, stock
		FROM candies
		WHERE active = TRUE AND stock > 0
		ORDER BY "candyId"
	`
	getCandyQuery = `
		SELECT "candyId", name, "unitPrice", type, active, stock
		FROM candies
		WHERE "candyId" = $1
	`
	listCandiesByIDsQuery = `
		SELECT "candyId", name, "unitPrice", type, active, stock
		FROM candies
		WHERE "candyId" = ANY($1::int[])
		ORDER BY array_position($1::int[], "candyId")
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListBaskets() ([]Basket, error) {
	rows, err := r.db.Query(listBasketsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Basket, 0)
	for rows.Next() {
		b, err := scanBasket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetBasket(id int) (Basket, error) {
	row := r.db.QueryRow(getBasketQuery, id)

	var b Basket
	var desc, size sql.NullString
	err := row.Scan(&b.ID, &b.Name, &desc, &b.BasePrice, &size, &b.CustomizationLimit, &b.Active)
	if err == sql.ErrNoRows {
		return Basket{}, ErrNotFound
	}
	if err != nil {
		return Basket{}, err
	}
	b.Description = desc.String
	b.Size = size.String
	return b, nil
}

func (r *PostgresRepository) ListContents(basketID int) ([]Content, error) {
	rows, err := r.db.Query(listContentsQuery, basketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Content, 0)
	for rows.Next() {
		var c Content
		if err := rows.Scan(&c.CandyID, &c.Name, &c.UnitPrice, &c.Quantity); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListCandies() ([]Candy, error) {
	rows, err := r.db.Query(listCandiesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Candy, 0)
	for rows.Next() {
		c, err := scanCandy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetCandy(id int) (Candy, error) {
	row := r.db.QueryRow(getCandyQuery, id)

	var c Candy
	var typ sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.UnitPrice, &typ, &c.Active, &c.Stock)
	if err == sql.ErrNoRows {
		return Candy{}, ErrNotFound
	}
	if err != nil {
		return Candy{}, err
	}
	c.Type = typ.String
	return c, nil
}

func (r *PostgresRepository) ListCandiesByIDs(ids []int) ([]Candy, error) {
	if len(ids) == 0 {
		return []Candy{}, nil
	}

	rows, err := r.db.Query(listCandiesByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Candy, 0, len(ids))
	for rows.Next() {
		c, err := scanCandy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanBasket(rows *sql.Rows) (Basket, error) {
	var b Basket
	var desc, size sql.NullString
	if err := rows.Scan(&b.ID, &b.Name, &desc, &b.BasePrice, &size, &b.CustomizationLimit, &b.Active); err != nil {
		return Basket{}, err
	}
	b.Description = desc.String
	b.Size = size.String
	return b, nil
}

func scanCandy(rows *sql.Rows) (Candy, error) {
	var c Candy
	var typ sql.NullString
	if err := rows.Scan(&c.ID, &c.Name, &c.UnitPrice, &typ, &c.Active, &c.Stock); err != nil {
		return Candy{}, err
	}
	c.Type = typ.String
	return c, nil
}
