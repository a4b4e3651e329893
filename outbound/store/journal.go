package store

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"log/slog"
	"math"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
	"tickto/outbound/sqlgen"
	"time"
)

// ReceiptJournal persists signed payments in payment_receipts so they can be resumed from any instance.
type ReceiptJournal struct {
	Querier *sqlgen.Queries
}

func (out ReceiptJournal) RecordSigned(ctx context.Context, entry model.JournalEntry) error {
	ctx, span := otel.Tracer.Start(ctx, "ReceiptJournal.RecordSigned")
	defer span.End()

	receipt := entry.Receipt
	if receipt.Amount > math.MaxInt64 || receipt.LastValidHeight > math.MaxInt64 {
		err := fmt.Errorf("receipt %s does not fit the journal columns", receipt.Signature)
		common.UtilSpanError(span, err)
		return err
	}

	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := out.Querier.InsertPaymentReceipt(ctx, sqlgen.InsertPaymentReceiptParams{
		Signature:       receipt.Signature,
		PurchaseID:      entry.PurchaseID,
		BuyerID:         entry.Request.BuyerID,
		BuyerEmail:      pgtype.Text{String: entry.Request.BuyerEmail, Valid: entry.Request.BuyerEmail != ""},
		EventID:         entry.Request.EventID,
		TierID:          entry.Request.TierID,
		TierName:        entry.Request.TierName,
		Quantity:        int32(entry.Request.Quantity),
		UnitPrice:       entry.Request.UnitPrice,
		Amount:          int64(receipt.Amount),
		FromAddress:     receipt.FromAddress,
		ToAddress:       receipt.ToAddress,
		Blockhash:       receipt.BlockhashUsed,
		LastValidHeight: int64(receipt.LastValidHeight),
		Status:          string(entry.Status),
		CreatedAt:       pgtype.Timestamptz{Time: updatedAt, Valid: true},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert payment receipt", common.ExtractTraceIDFromCtx(ctx), slog.String(constant.LogFieldSignature, receipt.Signature), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	return nil
}

// UpdateReceiptStatus never moves a receipt out of issued.
func (out ReceiptJournal) UpdateReceiptStatus(ctx context.Context, signature string, status model.ReceiptStatus) error {
	ctx, span := otel.Tracer.Start(ctx, "ReceiptJournal.UpdateReceiptStatus")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	cmd, err := out.Querier.UpdatePaymentReceiptStatus(ctx, sqlgen.UpdatePaymentReceiptStatusParams{
		Signature: signature,
		Status:    string(status),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to update payment receipt", traceIdAttr, slog.String(constant.LogFieldSignature, signature), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	if cmd.RowsAffected() == 0 {
		slog.DebugContext(ctx, "payment receipt not updated", traceIdAttr, slog.String(constant.LogFieldSignature, signature), slog.String("status", string(status)))
	}

	return nil
}

func (out ReceiptJournal) FindReceipt(ctx context.Context, signature string) (model.JournalEntry, error) {
	ctx, span := otel.Tracer.Start(ctx, "ReceiptJournal.FindReceipt")
	defer span.End()

	row, err := out.Querier.FindPaymentReceipt(ctx, signature)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.JournalEntry{}, errs.ErrNotFound
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to find payment receipt", common.ExtractTraceIDFromCtx(ctx), slog.String(constant.LogFieldSignature, signature), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.JournalEntry{}, err
	}

	return model.JournalEntry{
		PurchaseID: row.PurchaseID,
		Receipt: model.PaymentReceipt{
			Signature:       row.Signature,
			BlockhashUsed:   row.Blockhash,
			LastValidHeight: uint64(row.LastValidHeight),
			Amount:          uint64(row.Amount),
			FromAddress:     row.FromAddress,
			ToAddress:       row.ToAddress,
		},
		Request: model.PurchaseRequest{
			EventID:          row.EventID,
			BuyerID:          row.BuyerID,
			TierID:           row.TierID,
			TierName:         row.TierName,
			Quantity:         int(row.Quantity),
			UnitPrice:        row.UnitPrice,
			OrganizerAddress: row.ToAddress,
			BuyerEmail:       row.BuyerEmail.String,
		},
		Status:    model.ReceiptStatus(row.Status),
		UpdatedAt: row.UpdatedAt.Time,
	}, nil
}

// FindSupersedingReceipt returns the newest live signature journaled for purchaseID other than
// signature, or "" when there is none.
func (out ReceiptJournal) FindSupersedingReceipt(ctx context.Context, purchaseID string, signature string) (string, error) {
	ctx, span := otel.Tracer.Start(ctx, "ReceiptJournal.FindSupersedingReceipt")
	defer span.End()

	later, err := out.Querier.FindSupersedingPaymentReceipt(ctx, sqlgen.FindSupersedingPaymentReceiptParams{
		PurchaseID: purchaseID,
		Signature:  signature,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to find superseding payment receipt", common.ExtractTraceIDFromCtx(ctx), slog.String(constant.LogFieldPurchaseId, purchaseID), slog.String(constant.LogFieldSignature, signature), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return "", err
	}

	return later, nil
}

// ListStale returns signatures in one of statuses that have not moved since updatedBefore, skipping
// receipts created before createdAfter.
func (out ReceiptJournal) ListStale(ctx context.Context, statuses []model.ReceiptStatus, updatedBefore, createdAfter time.Time, limit int) ([]string, error) {
	ctx, span := otel.Tracer.Start(ctx, "ReceiptJournal.ListStale")
	defer span.End()

	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, string(status))
	}

	rows, err := out.Querier.ListStalePaymentReceipts(ctx, sqlgen.ListStalePaymentReceiptsParams{
		Statuses:      names,
		UpdatedBefore: pgtype.Timestamptz{Time: updatedBefore, Valid: true},
		CreatedAfter:  pgtype.Timestamptz{Time: createdAfter, Valid: true},
		MaxRows:       int32(limit),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list stale payment receipts", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	signatures := make([]string, 0, len(rows))
	for _, row := range rows {
		signatures = append(signatures, row.Signature)
	}

	return signatures, nil
}
