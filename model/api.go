package model

type ErrorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

// CreatePurchaseResponse is returned before the purchase has run; poll or stream by PurchaseID.
type CreatePurchaseResponse struct {
	PurchaseID string `json:"purchase_id"`
}

type ListTicketsResponse struct {
	Signature string   `json:"signature"`
	Tickets   []Ticket `json:"tickets"`
}
