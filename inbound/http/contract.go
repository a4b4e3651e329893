package http

import (
	"context"
	"tickto/model"
	"tickto/purchase"
)

//go:generate mockgen -source=contract.go -destination=mocks/contract.go -package=mocks

type PurchaseRunner interface {
	Run(ctx context.Context, sm *purchase.StateMachine, req model.PurchaseRequest) (model.PurchaseOutcome, error)
	Resume(ctx context.Context, signature string) (model.PurchaseOutcome, error)
}

type SnapshotStore interface {
	Observe(ctx context.Context, transition model.PurchaseTransition)
	Get(ctx context.Context, purchaseID string) (model.PurchaseSnapshot, error)
	SaveOutcome(ctx context.Context, outcome model.PurchaseOutcome) error
}

type TicketFinder interface {
	FindTicketsBySignature(ctx context.Context, signature string) ([]model.Ticket, error)
}

type SignatureRelay interface {
	Answer(ctx context.Context, answer model.SignatureAnswer) error
}

type TransitionFeed interface {
	Subscribe(ctx context.Context, purchaseID string, fn func(model.PurchaseTransition)) (func(), error)
}

// BuyerVerifier resolves a bearer access token to the user id it was issued for.
type BuyerVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}
