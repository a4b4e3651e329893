package purchase

import (
	"context"
	"tickto/model"
)

//go:generate mockgen -source=contract.go -destination=mocks/contract.go -package=mocks

// Identity is the auth provider that owns the buyer's wallets. RequestSignature may block until the
// wallet holder approves, and must return errs.ErrSignatureRejected when they decline.
type Identity interface {
	ListWallets(ctx context.Context, userID string) ([]model.SigningWallet, error)
	CreateWallet(ctx context.Context, userID string, chainKind string) (model.SigningWallet, error)
	RequestSignature(ctx context.Context, wallet model.SigningWallet, transaction []byte) ([]byte, error)
}

type ProfileLookup interface {
	PrimaryWalletAddress(ctx context.Context, userID string) (string, error)
}

// Ledger reports Landed=false for transactions it has never seen.
type Ledger interface {
	LatestBlockReference(ctx context.Context) (model.BlockReference, error)
	SubmitTransaction(ctx context.Context, signed []byte) (string, error)
	GetTransactionStatus(ctx context.Context, signature string) (model.TransactionStatus, error)
	CurrentBlockHeight(ctx context.Context) (uint64, error)
}

// TicketStore must make InsertTicketsIfAbsent atomic and keyed on signature: when tickets already
// exist for the signature it returns those and writes nothing.
type TicketStore interface {
	InsertTicketsIfAbsent(ctx context.Context, signature string, rows []model.Ticket) ([]model.Ticket, error)
	FindTicketsBySignature(ctx context.Context, signature string) ([]model.Ticket, error)
}

type ReceiptJournal interface {
	RecordSigned(ctx context.Context, entry model.JournalEntry) error
	UpdateReceiptStatus(ctx context.Context, signature string, status model.ReceiptStatus) error
	FindReceipt(ctx context.Context, signature string) (model.JournalEntry, error)
	// FindSupersedingReceipt returns "" when no other live attempt exists for purchaseID.
	FindSupersedingReceipt(ctx context.Context, purchaseID string, signature string) (string, error)
}

type Observer interface {
	Observe(ctx context.Context, transition model.PurchaseTransition)
}
