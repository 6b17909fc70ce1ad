package order

// StatusPending is the status every freshly committed order carries.
// Status transitions happen outside this service.
const StatusPending = "pending"

// Product types stored on order line items.
const (
	ProductTypeBasket = "Basket"
	ProductTypeCandy  = "Candy"
)

// Order is the durable order header. Committed together with its line items
// in one transaction and never mutated afterwards.
type Order struct {
	ID              int     `json:"orderId"`
	UserID          int     `json:"userId"`
	Total           float64 `json:"total"`
	PaymentTypeID   int     `json:"payment_type_id"`
	Status          string  `json:"status"`
	GiftMessage     *string `json:"gift_message,omitempty"`
	DeliveryAddress string  `json:"delivery_address"`
	CreatedAt       string  `json:"createdAt"`
}

// LineItem is one durable order line. A configured basket expands into one
// Basket line plus one Candy line per distinct extra in its snapshot.
type LineItem struct {
	OrderID     int     `json:"orderId"`
	ProductType string  `json:"product_type"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}
