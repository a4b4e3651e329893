package model

import "time"

type TicketStatus string

const (
	TicketStatusValid       TicketStatus = "valid"
	TicketStatusUsed        TicketStatus = "used"
	TicketStatusTransferred TicketStatus = "transferred"
)

type Ticket struct {
	ID               string       `json:"id"`
	EventID          string       `json:"event_id"`
	OwnerID          string       `json:"owner_id"`
	TierID           string       `json:"tier_id"`
	TierName         string       `json:"tier_name"`
	QRCode           string       `json:"qr_code"`
	TokenID          string       `json:"token_id"`
	Status           TicketStatus `json:"status"`
	PricePaid        int64        `json:"price_paid"`
	PaymentSignature string       `json:"payment_signature"`
	IssuedAt         time.Time    `json:"issued_at"`
}
