package payment

// PaymentType is a label-only payment method. No processing happens here;
// orders just reference the id.
type PaymentType struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}
