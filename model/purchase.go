package model

import (
	"math/bits"
	"time"
)

type PurchaseRequest struct {
	EventID          string `json:"event_id" validate:"required,max=64"`
	BuyerID          string `json:"buyer_id" validate:"required,max=128"`
	TierID           string `json:"tier_id" validate:"required,max=64"`
	TierName         string `json:"tier_name" validate:"required,max=100"`
	Quantity         int    `json:"quantity" validate:"min=1,max=5"`
	UnitPrice        int64  `json:"unit_price" validate:"gte=0"`
	OrganizerAddress string `json:"organizer_address" validate:"max=64"`
	BuyerEmail       string `json:"buyer_email,omitempty" validate:"omitempty,email"`
}

// TotalLamports returns quantity*unitPrice, or false when the product does not fit in uint64.
func (r PurchaseRequest) TotalLamports() (uint64, bool) {
	if r.Quantity < 0 || r.UnitPrice < 0 {
		return 0, false
	}

	hi, lo := bits.Mul64(uint64(r.Quantity), uint64(r.UnitPrice))
	if hi != 0 {
		return 0, false
	}

	return lo, true
}

type PurchaseState string

const (
	PurchaseStateIdle              PurchaseState = "idle"
	PurchaseStateResolvingWallet   PurchaseState = "resolving_wallet"
	PurchaseStateAwaitingSignature PurchaseState = "awaiting_signature"
	PurchaseStateConfirming        PurchaseState = "confirming"
	PurchaseStateIssuing           PurchaseState = "issuing"
	PurchaseStateSuccess           PurchaseState = "success"
	PurchaseStateFailed            PurchaseState = "failed"
)

func (s PurchaseState) IsTerminal() bool {
	return s == PurchaseStateSuccess || s == PurchaseStateFailed
}

type PurchaseOutcome struct {
	PurchaseID string          `json:"purchase_id"`
	State      PurchaseState   `json:"state"`
	Receipt    *PaymentReceipt `json:"receipt,omitempty"`
	Tickets    []Ticket        `json:"tickets,omitempty"`
	ErrorKind  string          `json:"error_kind,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PurchaseTransition struct {
	PurchaseID string        `json:"purchase_id"`
	BuyerID    string        `json:"buyer_id"`
	From       PurchaseState `json:"from"`
	To         PurchaseState `json:"to"`
	ErrorKind  string        `json:"error_kind,omitempty"`
	Signature  string        `json:"signature,omitempty"`
	At         time.Time     `json:"at"`
}

type ResumePurchaseEventMessage struct {
	Signature string `json:"signature"`
}

// PurchaseSnapshot is the last known view of a purchase, readable from any instance.
type PurchaseSnapshot struct {
	PurchaseID string           `json:"purchase_id"`
	BuyerID    string           `json:"buyer_id,omitempty"`
	State      PurchaseState    `json:"state"`
	Signature  string           `json:"signature,omitempty"`
	ErrorKind  string           `json:"error_kind,omitempty"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Outcome    *PurchaseOutcome `json:"outcome,omitempty"`
}
