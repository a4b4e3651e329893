package purchase

import (
	"context"
	"errors"
	"fmt"
	backoff "github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"log/slog"
	"math"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/metrics"
	"tickto/common/otel"
	"tickto/model"
	"time"
)

const defaultSubmitMaxAttempts = 3

// Coordinator runs the purchase pipeline: resolve wallet, pay, confirm, issue. After a payment is
// submitted the pipeline ignores caller cancellation and every failure carries the receipt.
type Coordinator struct {
	Validate  *validator.Validate
	Resolver  *WalletResolver
	Submitter *PaymentSubmitter
	Watcher   *ConfirmationWatcher
	Issuer    *TicketIssuer
	Journal   ReceiptJournal
	Publisher jetstream.Publisher
	Notifier  *Notifier
	Observers []Observer

	// SubmitMaxAttempts bounds automatic payment attempts for custodial wallets.
	SubmitMaxAttempts int
	SubmitBackOff     func() backoff.BackOff
}

func (c *Coordinator) Purchase(ctx context.Context, req model.PurchaseRequest) (model.PurchaseOutcome, error) {
	return c.Run(ctx, NewStateMachine(ulid.Make().String(), req.BuyerID), req)
}

// Run drives sm from idle to a terminal state. The returned outcome is always populated; the
// error is a *errs.PurchaseError whenever the purchase failed.
func (c *Coordinator) Run(ctx context.Context, sm *StateMachine, req model.PurchaseRequest) (model.PurchaseOutcome, error) {
	ctx, span := otel.Tracer.Start(ctx, "Coordinator.Run")
	defer span.End()

	defer c.observe(ctx, sm)()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	purchaseAttr := slog.String(constant.LogFieldPurchaseId, sm.PurchaseID())

	slog.InfoContext(ctx, "purchase started", traceIdAttr, purchaseAttr, slog.Any(constant.LogFieldPayload, req))

	if err := c.validate(ctx, req); err != nil {
		common.UtilSpanError(span, err)
		return c.fail(ctx, sm, nil, err)
	}

	if err := ctx.Err(); err != nil {
		return c.fail(ctx, sm, nil, errs.NewPurchaseError(errs.KindCanceled, nil, err))
	}

	c.advance(ctx, sm, model.PurchaseStateResolvingWallet)
	started := time.Now()

	wallet, err := c.Resolver.Resolve(ctx, req.BuyerID)
	if err != nil {
		common.UtilSpanError(span, err)
		return c.fail(ctx, sm, nil, asPurchaseError(errs.KindWalletUnavailable, nil, err))
	}
	metrics.RecordStageDuration(string(model.PurchaseStateResolvingWallet), started)

	if err = ctx.Err(); err != nil {
		return c.fail(ctx, sm, nil, errs.NewPurchaseError(errs.KindCanceled, nil, err))
	}

	c.advance(ctx, sm, model.PurchaseStateAwaitingSignature)
	started = time.Now()

	receipt, err := c.submit(ctx, sm.PurchaseID(), wallet, req)
	if err != nil {
		common.UtilSpanError(span, err)
		return c.fail(ctx, sm, errs.ReceiptOf(err), asPurchaseError(errs.KindSubmissionFailed, nil, err))
	}
	metrics.RecordStageDuration(string(model.PurchaseStateAwaitingSignature), started)

	sm.setSignature(receipt.Signature)

	// The payment is in flight; from here the caller can no longer abort.
	ctx = context.WithoutCancel(ctx)

	slog.InfoContext(ctx, "payment in flight", traceIdAttr, purchaseAttr, slog.String(constant.LogFieldSignature, receipt.Signature), slog.Bool("free", receipt.Free))

	return c.settle(ctx, sm, req, receipt, true)
}

// Resume finishes a journaled payment by signature: it rechecks the ledger when the outcome is
// still open and issues tickets once confirmed. It never submits a payment.
func (c *Coordinator) Resume(ctx context.Context, signature string) (model.PurchaseOutcome, error) {
	ctx, span := otel.Tracer.Start(ctx, "Coordinator.Resume")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	sigAttr := slog.String(constant.LogFieldSignature, signature)

	entry, err := c.Journal.FindReceipt(ctx, signature)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to load journaled receipt", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		}
		common.UtilSpanError(span, err)
		return model.PurchaseOutcome{}, fmt.Errorf("find receipt %s: %w", signature, err)
	}

	slog.InfoContext(ctx, "resuming purchase", traceIdAttr, sigAttr, slog.String(constant.LogFieldPurchaseId, entry.PurchaseID), slog.String("status", string(entry.Status)))

	var supersededBy string
	if entry.Status == model.ReceiptStatusFailed || entry.Status == model.ReceiptStatusExpired {
		supersededBy, err = c.Journal.FindSupersedingReceipt(ctx, entry.PurchaseID, signature)
		if err != nil {
			common.UtilSpanError(span, err)
			return model.PurchaseOutcome{}, fmt.Errorf("find superseding receipt %s: %w", signature, err)
		}
	}

	sm := resumedStateMachine(entry.PurchaseID, entry.Request.BuyerID, signature)
	defer c.observe(ctx, sm)()

	receipt := entry.Receipt

	if supersededBy != "" {
		slog.ErrorContext(ctx, "payment was replaced by a later attempt, not issuing", traceIdAttr, sigAttr, slog.String("superseded_by", supersededBy))
		c.markReceipt(ctx, signature, model.ReceiptStatusSuperseded)
		entry.Status = model.ReceiptStatusSuperseded
	}

	switch entry.Status {
	case model.ReceiptStatusRejected:
		c.advance(ctx, sm, model.PurchaseStateConfirming)
		return c.fail(ctx, sm, &receipt, errs.NewPurchaseError(errs.KindPaymentRejected, &receipt, errors.New("payment was rejected by the ledger")))
	case model.ReceiptStatusSuperseded:
		c.advance(ctx, sm, model.PurchaseStateConfirming)
		return c.fail(ctx, sm, &receipt, errs.NewPurchaseError(errs.KindSubmissionFailed, &receipt, errors.New("payment was replaced by a later attempt")))
	case model.ReceiptStatusConfirmed, model.ReceiptStatusIssued:
		receipt.Confirmed = true
	}

	return c.settle(ctx, sm, entry.Request, receipt, false)
}

// settle takes a submitted payment through confirmation and issuance. sm must be in
// awaiting_signature.
func (c *Coordinator) settle(ctx context.Context, sm *StateMachine, req model.PurchaseRequest, receipt model.PaymentReceipt, enqueueResume bool) (model.PurchaseOutcome, error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	purchaseAttr := slog.String(constant.LogFieldPurchaseId, sm.PurchaseID())

	c.advance(ctx, sm, model.PurchaseStateConfirming)

	if !receipt.Free && !receipt.Confirmed {
		result, err := c.Watcher.AwaitConfirmation(ctx, receipt)
		if err != nil {
			return c.fail(ctx, sm, &receipt, errs.NewPurchaseError(errs.KindAmbiguousOutcome, &receipt, err))
		}

		switch result {
		case model.ConfirmationRejected:
			c.markReceipt(ctx, receipt.Signature, model.ReceiptStatusRejected)
			return c.fail(ctx, sm, &receipt, errs.NewPurchaseError(errs.KindPaymentRejected, &receipt, errors.New("transaction failed on the ledger")))
		case model.ConfirmationExpired:
			c.markReceipt(ctx, receipt.Signature, model.ReceiptStatusExpired)
			return c.fail(ctx, sm, &receipt, errs.NewPurchaseError(errs.KindAmbiguousOutcome, &receipt, errors.New("payment not confirmed before its blockhash expired")))
		}

		receipt.Confirmed = true
		c.markReceipt(ctx, receipt.Signature, model.ReceiptStatusConfirmed)
	}

	c.advance(ctx, sm, model.PurchaseStateIssuing)
	started := time.Now()

	tickets, fresh, err := c.Issuer.Issue(ctx, req, receipt)
	if err != nil {
		if errs.KindOf(err) == errs.KindIssuanceAfterPaymentFailed && enqueueResume {
			c.escalate(ctx, req, receipt, err)
		}
		return c.fail(ctx, sm, &receipt, asPurchaseError(errs.KindIssuanceAfterPaymentFailed, &receipt, err))
	}
	metrics.RecordStageDuration(string(model.PurchaseStateIssuing), started)

	if !receipt.Free {
		c.markReceipt(ctx, receipt.Signature, model.ReceiptStatusIssued)
	}

	c.advance(ctx, sm, model.PurchaseStateSuccess)
	metrics.RecordPurchaseOutcome(string(model.PurchaseStateSuccess), "")

	if c.Notifier != nil && fresh {
		if err = c.Notifier.TicketsIssued(ctx, sm.PurchaseID(), req, receipt, tickets); err != nil {
			slog.WarnContext(ctx, "failed to queue tickets email", traceIdAttr, purchaseAttr, slog.Any(constant.LogFieldErr, err))
		}
	}

	slog.InfoContext(ctx, "purchase succeeded", traceIdAttr, purchaseAttr, slog.String(constant.LogFieldSignature, receipt.Signature), slog.Int("tickets", len(tickets)))

	return model.PurchaseOutcome{
		PurchaseID: sm.PurchaseID(),
		State:      model.PurchaseStateSuccess,
		Receipt:    &receipt,
		Tickets:    tickets,
	}, nil
}

func (c *Coordinator) validate(ctx context.Context, req model.PurchaseRequest) *errs.PurchaseError {
	if c.Validate != nil {
		if err := c.Validate.StructCtx(ctx, req); err != nil {
			return errs.NewPurchaseError(errs.KindValidation, nil, err)
		}
	}

	if req.Quantity < constant.MinTicketQuantity || req.Quantity > constant.MaxTicketQuantity {
		return errs.NewPurchaseError(errs.KindValidation, nil, fmt.Errorf("quantity %d outside %d..%d", req.Quantity, constant.MinTicketQuantity, constant.MaxTicketQuantity))
	}

	if req.UnitPrice < 0 {
		return errs.NewPurchaseError(errs.KindValidation, nil, fmt.Errorf("unit price %d is negative", req.UnitPrice))
	}

	total, ok := req.TotalLamports()
	if !ok || total > math.MaxInt64 {
		return errs.NewPurchaseError(errs.KindValidation, nil, fmt.Errorf("total of %d x %d overflows", req.Quantity, req.UnitPrice))
	}

	return nil
}

// submit retries SubmissionFailed for custodial wallets only, each attempt signing over a fresh
// blockhash. External wallets are never prompted twice without the buyer asking.
func (c *Coordinator) submit(ctx context.Context, purchaseID string, wallet model.SigningWallet, req model.PurchaseRequest) (model.PaymentReceipt, error) {
	maxAttempts := c.SubmitMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultSubmitMaxAttempts
	}

	var receipt model.PaymentReceipt
	attempt := 0

	op := func() error {
		attempt++

		var err error
		receipt, err = c.Submitter.Submit(ctx, purchaseID, wallet, req)
		if err == nil {
			return nil
		}

		if errs.KindOf(err) != errs.KindSubmissionFailed {
			return backoff.Permanent(err)
		}

		retry := wallet.ClientKind == model.WalletClientCustodial && attempt < maxAttempts

		if sent := errs.ReceiptOf(err); sent != nil {
			receipt, err = c.settleFailedSend(ctx, *sent, err, retry)

			var permanent *backoff.PermanentError
			if err == nil || errors.As(err, &permanent) {
				return err
			}
		}

		if !retry {
			return backoff.Permanent(err)
		}

		slog.WarnContext(ctx, "payment submission failed, retrying",
			common.ExtractTraceIDFromCtx(ctx),
			slog.String(constant.LogFieldPurchaseId, purchaseID),
			slog.Int("attempt", attempt),
			slog.Any(constant.LogFieldErr, err),
		)

		return err
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(c.newSubmitBackOff(), uint64(maxAttempts-1)), ctx))
	if err != nil {
		if errs.KindOf(err) == "" && ctx.Err() != nil {
			return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindCanceled, nil, err)
		}
		return model.PaymentReceipt{}, err
	}

	return receipt, nil
}

// settleFailedSend watches a transaction whose send returned an error, since the bytes may still
// have reached the ledger. A landed transfer is adopted. Another attempt is allowed only once the
// blockhash is past its last valid height without the transfer landing, and the dead attempt is
// then marked superseded so it is never issued on.
func (c *Coordinator) settleFailedSend(ctx context.Context, sent model.PaymentReceipt, cause error, retry bool) (model.PaymentReceipt, error) {
	ctx = context.WithoutCancel(ctx)

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	sigAttr := slog.String(constant.LogFieldSignature, sent.Signature)

	result, err := c.Watcher.AwaitConfirmation(ctx, sent)
	if err != nil {
		return model.PaymentReceipt{}, backoff.Permanent(errs.NewPurchaseError(errs.KindAmbiguousOutcome, &sent, err))
	}

	switch result {
	case model.ConfirmationConfirmed:
		slog.WarnContext(ctx, "payment landed despite a send error, adopting it", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, cause))
		sent.Confirmed = true
		c.markReceipt(ctx, sent.Signature, model.ReceiptStatusConfirmed)
		return sent, nil
	case model.ConfirmationRejected:
		c.markReceipt(ctx, sent.Signature, model.ReceiptStatusRejected)
		return model.PaymentReceipt{}, backoff.Permanent(errs.NewPurchaseError(errs.KindPaymentRejected, &sent, errors.New("transaction failed on the ledger")))
	}

	if !c.Watcher.pastExpiry(ctx, sent) {
		return model.PaymentReceipt{}, backoff.Permanent(errs.NewPurchaseError(errs.KindAmbiguousOutcome, &sent, fmt.Errorf("outcome unknown after send error: %w", cause)))
	}

	if !retry {
		c.markReceipt(ctx, sent.Signature, model.ReceiptStatusExpired)
		return model.PaymentReceipt{}, cause
	}

	c.markReceipt(ctx, sent.Signature, model.ReceiptStatusSuperseded)

	return model.PaymentReceipt{}, cause
}

func (c *Coordinator) newSubmitBackOff() backoff.BackOff {
	if c.SubmitBackOff != nil {
		return c.SubmitBackOff()
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 4 * time.Second

	return bo
}

// escalate queues a background issuance retry and tells support which payment is waiting.
func (c *Coordinator) escalate(ctx context.Context, req model.PurchaseRequest, receipt model.PaymentReceipt, cause error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	sigAttr := slog.String(constant.LogFieldSignature, receipt.Signature)

	if c.Publisher != nil {
		err := common.PublishMessage(ctx, c.Publisher, constant.SubjectResumePurchase,
			model.ResumePurchaseEventMessage{Signature: receipt.Signature},
			jetstream.WithMsgID("resume:"+receipt.Signature),
		)
		if err != nil {
			slog.ErrorContext(ctx, "failed to enqueue purchase resume", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		}
	}

	if c.Notifier != nil {
		if err := c.Notifier.IssuanceFailed(ctx, req, receipt, cause); err != nil {
			slog.ErrorContext(ctx, "failed to queue support email", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		}
	}
}

func (c *Coordinator) fail(ctx context.Context, sm *StateMachine, receipt *model.PaymentReceipt, err *errs.PurchaseError) (model.PurchaseOutcome, error) {
	if err.Receipt == nil {
		err.Receipt = receipt
	}

	if failErr := sm.fail(err.Kind); failErr != nil {
		slog.ErrorContext(ctx, "failed to record purchase failure", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, failErr))
	}

	metrics.RecordPurchaseOutcome(string(model.PurchaseStateFailed), string(err.Kind))

	level := slog.LevelWarn
	if err.Kind.RequiresResume() {
		level = slog.LevelError
	}
	slog.Log(ctx, level, "purchase failed",
		common.ExtractTraceIDFromCtx(ctx),
		slog.String(constant.LogFieldPurchaseId, sm.PurchaseID()),
		slog.String(constant.LogFieldKind, string(err.Kind)),
		slog.Any(constant.LogFieldErr, err),
	)

	return model.PurchaseOutcome{
		PurchaseID: sm.PurchaseID(),
		State:      model.PurchaseStateFailed,
		Receipt:    err.Receipt,
		ErrorKind:  string(err.Kind),
		Message:    err.Kind.Message(),
	}, err
}

func (c *Coordinator) advance(ctx context.Context, sm *StateMachine, to model.PurchaseState) {
	if err := sm.advance(to); err != nil {
		slog.ErrorContext(ctx, "purchase state machine refused transition", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
	}
}

func (c *Coordinator) markReceipt(ctx context.Context, signature string, status model.ReceiptStatus) {
	if c.Journal == nil {
		return
	}

	if err := c.Journal.UpdateReceiptStatus(ctx, signature, status); err != nil {
		slog.ErrorContext(ctx, "failed to update receipt status",
			common.ExtractTraceIDFromCtx(ctx),
			slog.String(constant.LogFieldSignature, signature),
			slog.String("status", string(status)),
			slog.Any(constant.LogFieldErr, err),
		)
	}
}

// observe forwards transitions of sm to the configured observers and returns the unsubscribe func.
func (c *Coordinator) observe(ctx context.Context, sm *StateMachine) func() {
	if len(c.Observers) == 0 {
		return func() {}
	}

	detached := context.WithoutCancel(ctx)
	return sm.Subscribe(func(transition model.PurchaseTransition) {
		for _, observer := range c.Observers {
			observer.Observe(detached, transition)
		}
	})
}

func asPurchaseError(fallback errs.Kind, receipt *model.PaymentReceipt, err error) *errs.PurchaseError {
	var purchaseErr *errs.PurchaseError
	if errors.As(err, &purchaseErr) {
		return purchaseErr
	}

	return errs.NewPurchaseError(fallback, receipt, err)
}
