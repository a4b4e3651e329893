package model

import "time"

// SignatureRequest is pushed to the buyer app when an external wallet has to approve a transfer.
type SignatureRequest struct {
	Type          string    `json:"type"`
	RequestID     string    `json:"request_id"`
	WalletAddress string    `json:"wallet_address"`
	Transaction   string    `json:"transaction"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type SignatureAnswer struct {
	RequestID         string `json:"request_id" validate:"required,max=64"`
	SignedTransaction string `json:"signed_transaction" validate:"omitempty,base64"`
	Rejected          bool   `json:"rejected"`
}
