package address

// Address is a saved delivery address used to prefill checkout. Orders still
// store the delivery address as free text, so these rows are a convenience,
// not a foreign key.
type Address struct {
	ID        int    `json:"addressId"`
	UserID    int    `json:"userId"`
	Label     string `json:"etiqueta,omitempty"`
	Line      string `json:"direccion"`
	Phone     string `json:"telefono,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
