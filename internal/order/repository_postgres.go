package order

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders ("userID", total, "paymentTypeId", status, "giftMessage", "deliveryAddress", "createdAt")
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING "orderID"
	`
	insertLineItemQuery = `
		INSERT INTO order_items ("orderID", "productType", "productId", "productName", quantity, "unitPrice")
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	getOrderQuery = `
		SELECT "orderID", "userID", total, "paymentTypeId", status, "giftMessage", "deliveryAddress", "createdAt"
		FROM orders
		WHERE "orderID" = $1
	`
	listItemsQuery = `
		SELECT "orderID", "productType", "productId", "productName", quantity, "unitPrice"
		FROM order_items
		WHERE "orderID" = $1
		ORDER BY "orderItemID"
	`
	listByUserQuery = `
		SELECT "orderID", "userID", total, "paymentTypeId", status, "giftMessage", "deliveryAddress", "createdAt"
		FROM orders
		WHERE "userID" = $1
		ORDER BY "orderID" DESC
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateWithItems writes the order header and all line items inside a single
// transaction. The deferred rollback covers every early return; it becomes a
// no-op once Commit succeeds.
func (r *PostgresRepository) CreateWithItems(ord Order, items []LineItem) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(insertOrderQuery,
		ord.UserID, ord.Total, ord.PaymentTypeID, ord.Status, ord.GiftMessage, ord.DeliveryAddress, ord.CreatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}

	for _, item := range items {
		item.OrderID = ord.ID
		if _, err := tx.Exec(insertLineItemQuery,
			item.OrderID, item.ProductType, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice,
		); err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	var ord Order
	var gift sql.NullString
	err := r.db.QueryRow(getOrderQuery, id).Scan(
		&ord.ID, &ord.UserID, &ord.Total, &ord.PaymentTypeID, &ord.Status, &gift, &ord.DeliveryAddress, &ord.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	if gift.Valid {
		ord.GiftMessage = &gift.String
	}
	return ord, nil
}

func (r *PostgresRepository) ListItems(orderID int) ([]LineItem, error) {
	rows, err := r.db.Query(listItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LineItem, 0)
	for rows.Next() {
		var item LineItem
		if err := rows.Scan(&item.OrderID, &item.ProductType, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var ord Order
		var gift sql.NullString
		if err := rows.Scan(&ord.ID, &ord.UserID, &ord.Total, &ord.PaymentTypeID, &ord.Status, &gift, &ord.DeliveryAddress, &ord.CreatedAt); err != nil {
			return nil, err
		}
		if gift.Valid {
			ord.GiftMessage = &gift.String
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}
