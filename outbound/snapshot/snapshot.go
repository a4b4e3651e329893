package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
	"time"
)

const (
	fieldBuyerId   = "buyer_id"
	fieldState     = "state"
	fieldSignature = "signature"
	fieldErrorKind = "error_kind"
	fieldUpdatedAt = "updated_at"
	fieldOutcome   = "outcome"
)

// Store keeps one redis hash per purchase. Every write refreshes the TTL.
type Store struct {
	Cache *redis.Client
	TTL   time.Duration
}

func (out *Store) key(purchaseID string) string {
	return fmt.Sprintf(constant.PurchaseSnapshotKey, purchaseID)
}

func (out *Store) ttl() time.Duration {
	if out.TTL <= 0 {
		return constant.PurchaseSnapshotDefaultTTL
	}

	return out.TTL
}

// Observe records a transition. Failures are logged only, the purchase itself never waits on redis.
func (out *Store) Observe(ctx context.Context, transition model.PurchaseTransition) {
	ctx, span := otel.Tracer.Start(ctx, "SnapshotStore.Observe")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	values := []any{
		fieldBuyerId, transition.BuyerID,
		fieldState, string(transition.To),
		fieldUpdatedAt, transition.At.UTC().Format(time.RFC3339Nano),
	}
	if transition.Signature != "" {
		values = append(values, fieldSignature, transition.Signature)
	}
	if transition.ErrorKind != "" {
		values = append(values, fieldErrorKind, transition.ErrorKind)
	}

	if err := out.write(ctx, transition.PurchaseID, values); err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to store purchase snapshot", traceIdAttr,
			slog.String(constant.LogFieldPurchaseId, transition.PurchaseID),
			slog.String(constant.LogFieldState, string(transition.To)),
			slog.Any(constant.LogFieldErr, err))
	}
}

func (out *Store) SaveOutcome(ctx context.Context, outcome model.PurchaseOutcome) error {
	ctx, span := otel.Tracer.Start(ctx, "SnapshotStore.SaveOutcome")
	defer span.End()

	data, err := json.Marshal(outcome)
	if err != nil {
		common.UtilSpanError(span, err)
		return err
	}

	values := []any{
		fieldState, string(outcome.State),
		fieldOutcome, string(data),
	}
	if outcome.Receipt != nil && outcome.Receipt.Signature != "" {
		values = append(values, fieldSignature, outcome.Receipt.Signature)
	}

	if err = out.write(ctx, outcome.PurchaseID, values); err != nil {
		common.UtilSpanError(span, err)
		return fmt.Errorf("save outcome: %w", err)
	}

	return nil
}

func (out *Store) write(ctx context.Context, purchaseID string, values []any) error {
	key := out.key(purchaseID)

	pipe := out.Cache.TxPipeline()
	pipe.HSet(ctx, key, values...)
	pipe.Expire(ctx, key, out.ttl())

	_, err := pipe.Exec(ctx)
	return err
}

// Get returns errs.ErrNotFound for purchases never seen or already expired.
func (out *Store) Get(ctx context.Context, purchaseID string) (model.PurchaseSnapshot, error) {
	ctx, span := otel.Tracer.Start(ctx, "SnapshotStore.Get")
	defer span.End()

	fields, err := out.Cache.HGetAll(ctx, out.key(purchaseID)).Result()
	if err != nil {
		common.UtilSpanError(span, err)
		return model.PurchaseSnapshot{}, fmt.Errorf("get snapshot: %w", err)
	}

	if len(fields) == 0 {
		return model.PurchaseSnapshot{}, errs.ErrNotFound
	}

	snap := model.PurchaseSnapshot{
		PurchaseID: purchaseID,
		BuyerID:    fields[fieldBuyerId],
		State:      model.PurchaseState(fields[fieldState]),
		Signature:  fields[fieldSignature],
		ErrorKind:  fields[fieldErrorKind],
	}

	if raw := fields[fieldUpdatedAt]; raw != "" {
		snap.UpdatedAt, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			common.UtilSpanError(span, err)
			return model.PurchaseSnapshot{}, fmt.Errorf("parse updated_at: %w", err)
		}
	}

	if raw := fields[fieldOutcome]; raw != "" {
		var outcome model.PurchaseOutcome
		if err = json.Unmarshal([]byte(raw), &outcome); err != nil {
			common.UtilSpanError(span, err)
			return model.PurchaseSnapshot{}, fmt.Errorf("decode outcome: %w", err)
		}
		snap.Outcome = &outcome
	}

	return snap, nil
}
