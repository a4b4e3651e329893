package purchase

import (
	"context"
	"fmt"
	backoff "github.com/cenkalti/backoff/v4"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/metrics"
	"tickto/common/otel"
	"tickto/model"
	"time"
)

const (
	CommitmentProcessed = "processed"
	CommitmentConfirmed = "confirmed"
	CommitmentFinalized = "finalized"
)

var commitmentRank = map[string]int{
	CommitmentProcessed: 1,
	CommitmentConfirmed: 2,
	CommitmentFinalized: 3,
}

// ConfirmationWatcher polls the ledger until a submitted payment is final, failed, or past the
// height at which its blockhash expires.
type ConfirmationWatcher struct {
	Ledger     Ledger
	Commitment string

	PollInterval time.Duration
	MaxInterval  time.Duration
	// MaxWait caps the watch when the ledger stops reporting heights.
	MaxWait time.Duration
}

func (w *ConfirmationWatcher) AwaitConfirmation(ctx context.Context, receipt model.PaymentReceipt) (model.ConfirmationResult, error) {
	ctx, span := otel.Tracer.Start(ctx, "ConfirmationWatcher.AwaitConfirmation")
	defer span.End()

	if receipt.Free {
		return model.ConfirmationConfirmed, nil
	}

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	sigAttr := slog.String(constant.LogFieldSignature, receipt.Signature)
	started := time.Now()

	bo := w.newBackOff()
	for {
		status, err := w.Ledger.GetTransactionStatus(ctx, receipt.Signature)
		if err != nil {
			slog.WarnContext(ctx, "failed to query transaction status", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		} else if result, done := w.evaluate(status); done {
			metrics.RecordConfirmation(string(result))
			metrics.RecordStageDuration("confirming", started)
			slog.InfoContext(ctx, "confirmation finished", traceIdAttr, sigAttr, slog.String("result", string(result)), slog.String("ledger_err", status.Err))
			return result, nil
		}

		if err == nil && !status.Landed && w.pastExpiry(ctx, receipt) {
			// The blockhash is dead, but the transaction may have landed between the two reads.
			result := model.ConfirmationExpired
			if last, lastErr := w.Ledger.GetTransactionStatus(ctx, receipt.Signature); lastErr == nil {
				if r, done := w.evaluate(last); done {
					result = r
				}
			}

			metrics.RecordConfirmation(string(result))
			slog.InfoContext(ctx, "blockhash expired before confirmation", traceIdAttr, sigAttr, slog.String("result", string(result)))
			return result, nil
		}

		wait := bo.NextBackOff()
		if wait == backoff.Stop {
			metrics.RecordConfirmation(string(model.ConfirmationExpired))
			slog.WarnContext(ctx, "confirmation wait exhausted", traceIdAttr, sigAttr, slog.Duration("waited", time.Since(started)))
			return model.ConfirmationExpired, nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			common.UtilSpanError(span, ctx.Err())
			return "", fmt.Errorf("await confirmation: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

func (w *ConfirmationWatcher) evaluate(status model.TransactionStatus) (model.ConfirmationResult, bool) {
	if !status.Landed {
		return "", false
	}

	if !status.Succeeded {
		return model.ConfirmationRejected, true
	}

	if commitmentRank[status.Commitment] >= commitmentRank[w.commitment()] {
		return model.ConfirmationConfirmed, true
	}

	return "", false
}

func (w *ConfirmationWatcher) pastExpiry(ctx context.Context, receipt model.PaymentReceipt) bool {
	if receipt.LastValidHeight == 0 {
		return false
	}

	height, err := w.Ledger.CurrentBlockHeight(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to query block height", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		return false
	}

	return height > receipt.LastValidHeight
}

func (w *ConfirmationWatcher) commitment() string {
	if _, ok := commitmentRank[w.Commitment]; ok {
		return w.Commitment
	}

	return CommitmentConfirmed
}

func (w *ConfirmationWatcher) newBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = w.PollInterval
	if bo.InitialInterval <= 0 {
		bo.InitialInterval = 500 * time.Millisecond
	}

	bo.MaxInterval = w.MaxInterval
	if bo.MaxInterval <= 0 {
		bo.MaxInterval = 5 * time.Second
	}

	bo.MaxElapsedTime = w.MaxWait
	if bo.MaxElapsedTime <= 0 {
		bo.MaxElapsedTime = 2 * time.Minute
	}

	bo.Reset()
	return bo
}
