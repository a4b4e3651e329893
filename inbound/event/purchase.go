package event

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
	"time"
)

type PurchaseEvent struct {
	Resumer   Resumer
	Snapshots OutcomeSaver

	Timeout time.Duration
}

// ResumeHandler finishes a journaled payment. Returning an error asks the stream to redeliver,
// which happens only while the outcome still needs another look.
func (in PurchaseEvent) ResumeHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	ctx, span := otel.Tracer.Start(ctx, "PurchaseEvent.ResumeHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	reqAttr := slog.Any(constant.LogFieldPayload, string(msg))

	var req model.ResumePurchaseEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil || req.Signature == "" {
		slog.WarnContext(ctx, "resume purchase event unmarshal error", traceIdAttr, reqAttr, slog.Any(constant.LogFieldErr, err))
		return nil
	}

	outcome, err := in.Resumer.Resume(ctx, req.Signature)
	if outcome.PurchaseID != "" && in.Snapshots != nil {
		if saveErr := in.Snapshots.SaveOutcome(ctx, outcome); saveErr != nil {
			slog.WarnContext(ctx, "failed to save resumed outcome", traceIdAttr, reqAttr, slog.Any(constant.LogFieldErr, saveErr))
		}
	}

	if err == nil {
		slog.InfoContext(ctx, "resume purchase event done", traceIdAttr, reqAttr, slog.String(constant.LogFieldState, string(outcome.State)))
		return nil
	}

	common.UtilSpanError(span, err)

	if errors.Is(err, errs.ErrNotFound) {
		slog.WarnContext(ctx, "resume purchase event for unknown signature", traceIdAttr, reqAttr)
		return nil
	}

	kind := errs.KindOf(err)
	if kind != "" && !kind.RequiresResume() {
		slog.InfoContext(ctx, "resume purchase event settled with failure", traceIdAttr, reqAttr, slog.String(constant.LogFieldKind, string(kind)))
		return nil
	}

	slog.ErrorContext(ctx, "resume purchase event error", traceIdAttr, reqAttr, slog.Any(constant.LogFieldErr, err))
	return err
}
