package store

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/contract"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
	"tickto/outbound/sqlgen"
)

const pgUniqueViolation = "23505"

type TicketStore struct {
	Db      contract.TxStarter
	Querier *sqlgen.Queries
}

// InsertTicketsIfAbsent claims the payment signature in ticket_issuances and copies the rows in the
// same transaction. When another issuer already claimed the signature it returns that issuer's tickets.
func (out TicketStore) InsertTicketsIfAbsent(ctx context.Context, signature string, rows []model.Ticket) ([]model.Ticket, error) {
	ctx, span := otel.Tracer.Start(ctx, "TicketStore.InsertTicketsIfAbsent")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	sigAttr := slog.String(constant.LogFieldSignature, signature)

	if len(rows) == 0 {
		return nil, errors.New("no ticket rows to insert")
	}

	tx, err := out.Db.Begin(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to begin transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.ErrorContext(ctx, "failed to rollback transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	withTx := out.Querier.WithTx(tx)

	cmd, err := withTx.InsertTicketIssuance(ctx, sqlgen.InsertTicketIssuanceParams{
		PaymentSignature: signature,
		Quantity:         int32(len(rows)),
		IssuedAt:         pgtype.Timestamptz{Time: rows[0].IssuedAt, Valid: true},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert ticket issuance", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	if cmd.RowsAffected() == 0 {
		slog.InfoContext(ctx, "payment already issued by another worker", traceIdAttr, sigAttr)
		return out.FindTicketsBySignature(ctx, signature)
	}

	params := make([]sqlgen.InsertTicketsParams, 0, len(rows))
	for _, row := range rows {
		params = append(params, sqlgen.InsertTicketsParams{
			ID:               row.ID,
			EventID:          row.EventID,
			OwnerID:          row.OwnerID,
			TierID:           row.TierID,
			TierName:         row.TierName,
			QrCode:           row.QRCode,
			TokenID:          row.TokenID,
			Status:           string(row.Status),
			PricePaid:        row.PricePaid,
			PaymentSignature: signature,
			IssuedAt:         pgtype.Timestamptz{Time: row.IssuedAt, Valid: true},
		})
	}

	copied, err := withTx.InsertTickets(ctx, params)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			slog.WarnContext(ctx, "ticket code already taken", traceIdAttr, sigAttr, slog.String("constraint", pgErr.ConstraintName))
			return nil, fmt.Errorf("copy tickets: %w", errs.ErrTicketCodeCollision)
		}

		slog.ErrorContext(ctx, "failed to copy tickets", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	if copied != int64(len(rows)) {
		err = fmt.Errorf("copied %d tickets, want %d", copied, len(rows))
		slog.ErrorContext(ctx, "ticket copy incomplete", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	slog.InfoContext(ctx, "tickets issued", traceIdAttr, sigAttr, slog.Int("count", len(rows)))

	issued := make([]model.Ticket, len(rows))
	copy(issued, rows)
	for i := range issued {
		issued[i].PaymentSignature = signature
	}

	return issued, nil
}

func (out TicketStore) FindTicketsBySignature(ctx context.Context, signature string) ([]model.Ticket, error) {
	ctx, span := otel.Tracer.Start(ctx, "TicketStore.FindTicketsBySignature")
	defer span.End()

	rows, err := out.Querier.FindTicketsBySignature(ctx, signature)
	if err != nil {
		slog.ErrorContext(ctx, "failed to find tickets", common.ExtractTraceIDFromCtx(ctx), slog.String(constant.LogFieldSignature, signature), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, err
	}

	tickets := make([]model.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, model.Ticket{
			ID:               row.ID,
			EventID:          row.EventID,
			OwnerID:          row.OwnerID,
			TierID:           row.TierID,
			TierName:         row.TierName,
			QRCode:           row.QrCode,
			TokenID:          row.TokenID,
			Status:           model.TicketStatus(row.Status),
			PricePaid:        row.PricePaid,
			PaymentSignature: row.PaymentSignature,
			IssuedAt:         row.IssuedAt.Time,
		})
	}

	return tickets, nil
}
