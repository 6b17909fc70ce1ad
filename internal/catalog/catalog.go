package catalog

// Candy represents a single candy from the catalog. JSON tags keep the
// Spanish field names the storefront pages already consume.
type Candy struct {
	ID        int     `json:"id"`
	Name      string  `json:"nombre"`
	UnitPrice float64 `json:"precio"`
	Type      string  `json:"tipo,omitempty"`
	Active    bool    `json:"activo"`
	Stock     int     `json:"stock"`
}

// Basket is a predefined gift basket: fixed base contents plus an allowance
// of extra candies (CustomizationLimit counts units, not distinct candies).
type Basket struct {
	ID                 int     `json:"id"`
	Name               string  `json:"nombre"`
	Description        string  `json:"descripcion,omitempty"`
	BasePrice          float64 `json:"precio_base"`
	Size               string  `json:"tamano,omitempty"`
	CustomizationLimit int     `json:"limite_personalizacion"`
	Active             bool    `json:"activo"`
}

// Content is one row of a basket's fixed contents.
type Content struct {
	CandyID   int     `json:"id_dulce"`
	Name      string  `json:"nombre"`
	UnitPrice float64 `json:"precio"`
	Quantity  int     `json:"cantidad"`
}
