package user

// User is a storefront customer. Credentials are the name+phone pair; there
// is no password.
type User struct {
	ID        int    `json:"userId"`
	Name      string `json:"nombre"`
	Phone     string `json:"telefono"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
