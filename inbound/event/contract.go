package event

import (
	"context"
	"tickto/model"
)

//go:generate mockgen -source=contract.go -destination=mocks/contract.go -package=mocks

type Resumer interface {
	Resume(ctx context.Context, signature string) (model.PurchaseOutcome, error)
}

type OutcomeSaver interface {
	SaveOutcome(ctx context.Context, outcome model.PurchaseOutcome) error
}

type EmailSender interface {
	Send(ctx context.Context, to []string, subject string, body string) error
}
