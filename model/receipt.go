package model

import (
	"github.com/shopspring/decimal"
	"math/big"
	"tickto/common/constant"
	"time"
)

type BlockReference struct {
	Hash         string `json:"hash"`
	ExpiryHeight uint64 `json:"expiry_height"`
}

type PaymentReceipt struct {
	Signature       string `json:"signature"`
	BlockhashUsed   string `json:"blockhash_used,omitempty"`
	LastValidHeight uint64 `json:"last_valid_height,omitempty"`
	Amount          uint64 `json:"amount"`
	FromAddress     string `json:"from_address,omitempty"`
	ToAddress       string `json:"to_address,omitempty"`
	Free            bool   `json:"free"`
	Confirmed       bool   `json:"confirmed"`
}

func (r PaymentReceipt) AmountDisplay() string {
	return FormatLamports(r.Amount)
}

// FormatLamports renders an integer lamport amount in SOL without going through floats.
func FormatLamports(amount uint64) string {
	sol := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -constant.SolanaDecimals)
	return sol.String() + " SOL"
}

type TransactionStatus struct {
	Landed     bool   `json:"landed"`
	Succeeded  bool   `json:"succeeded"`
	Height     uint64 `json:"height"`
	Commitment string `json:"commitment"`
	Err        string `json:"err,omitempty"`
}

type ConfirmationResult string

const (
	ConfirmationConfirmed ConfirmationResult = "confirmed"
	ConfirmationRejected  ConfirmationResult = "rejected"
	ConfirmationExpired   ConfirmationResult = "expired"
)

type ReceiptStatus string

const (
	ReceiptStatusSigned    ReceiptStatus = "signed"
	ReceiptStatusSubmitted ReceiptStatus = "submitted"
	ReceiptStatusConfirmed ReceiptStatus = "confirmed"
	ReceiptStatusRejected  ReceiptStatus = "rejected"
	ReceiptStatusExpired   ReceiptStatus = "expired"
	ReceiptStatusIssued    ReceiptStatus = "issued"
	ReceiptStatusFailed    ReceiptStatus = "failed"

	// ReceiptStatusSuperseded marks a dead attempt that a later signature of the same purchase replaced.
	ReceiptStatusSuperseded ReceiptStatus = "superseded"
)

// JournalEntry is the durable record of a signed payment and the request it pays for.
type JournalEntry struct {
	PurchaseID string          `json:"purchase_id"`
	Receipt    PaymentReceipt  `json:"receipt"`
	Request    PurchaseRequest `json:"request"`
	Status     ReceiptStatus   `json:"status"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
