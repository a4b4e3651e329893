package purchase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"github.com/oklog/ulid/v2"
	"log/slog"
	"slices"
	"strings"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/metrics"
	"tickto/common/otel"
	"tickto/model"
	"time"
	"unicode"
)

const defaultMaxCodeAttempts = 3

// TicketIssuer turns a confirmed payment into exactly Quantity tickets. Issuance is keyed on the
// receipt signature, so calling it again for the same payment returns the stored tickets.
type TicketIssuer struct {
	Store TicketStore

	TimeNow         func() time.Time
	MaxCodeAttempts int
}

// Issue reports fresh=false when the tickets were already stored for the payment, by an earlier
// call or a concurrent issuer.
func (i *TicketIssuer) Issue(ctx context.Context, req model.PurchaseRequest, receipt model.PaymentReceipt) (tickets []model.Ticket, fresh bool, err error) {
	ctx, span := otel.Tracer.Start(ctx, "TicketIssuer.Issue")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	sigAttr := slog.String(constant.LogFieldSignature, receipt.Signature)

	if !receipt.Free && !receipt.Confirmed {
		err := fmt.Errorf("receipt %s is not confirmed", receipt.Signature)
		common.UtilSpanError(span, err)
		return nil, false, i.failure(receipt, err)
	}

	existing, err := i.Store.FindTicketsBySignature(ctx, receipt.Signature)
	if err != nil {
		slog.ErrorContext(ctx, "failed to look up issued tickets", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, false, i.failure(receipt, fmt.Errorf("find tickets: %w", err))
	}

	if len(existing) > 0 {
		slog.InfoContext(ctx, "tickets already issued for payment", traceIdAttr, sigAttr, slog.Int("count", len(existing)))
		return existing, false, nil
	}

	attempts := i.MaxCodeAttempts
	if attempts <= 0 {
		attempts = defaultMaxCodeAttempts
	}

	var rows []model.Ticket
	for attempt := 1; attempt <= attempts; attempt++ {
		rows = i.buildRows(req, receipt)
		tickets, err = i.Store.InsertTicketsIfAbsent(ctx, receipt.Signature, rows)
		if err == nil {
			break
		}

		if !errors.Is(err, errs.ErrTicketCodeCollision) {
			break
		}

		slog.WarnContext(ctx, "ticket code collision, regenerating", traceIdAttr, sigAttr, slog.Int("attempt", attempt))
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to insert tickets", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, false, i.failure(receipt, fmt.Errorf("insert tickets: %w", err))
	}

	if len(tickets) != req.Quantity {
		err = fmt.Errorf("store holds %d tickets for payment, want %d", len(tickets), req.Quantity)
		slog.ErrorContext(ctx, "issued ticket count mismatch", traceIdAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return nil, false, i.failure(receipt, err)
	}

	if len(tickets) > 0 && !slices.ContainsFunc(rows, func(row model.Ticket) bool { return row.ID == tickets[0].ID }) {
		slog.InfoContext(ctx, "tickets were issued by a concurrent issuer", traceIdAttr, sigAttr)
		return tickets, false, nil
	}

	metrics.RecordTicketsIssued(len(tickets))

	return tickets, true, nil
}

func (i *TicketIssuer) failure(receipt model.PaymentReceipt, err error) error {
	if receipt.Free {
		return errs.NewPurchaseError(errs.KindIssuanceFailed, &receipt, err)
	}

	return errs.NewPurchaseError(errs.KindIssuanceAfterPaymentFailed, &receipt, err)
}

func (i *TicketIssuer) buildRows(req model.PurchaseRequest, receipt model.PaymentReceipt) []model.Ticket {
	issuedAt := i.now().UTC()
	seen := make(map[string]struct{}, req.Quantity)

	rows := make([]model.Ticket, 0, req.Quantity)
	for len(rows) < req.Quantity {
		code := NewQRCode(req.EventID)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		rows = append(rows, model.Ticket{
			ID:               ulid.Make().String(),
			EventID:          req.EventID,
			OwnerID:          req.BuyerID,
			TierID:           req.TierID,
			TierName:         req.TierName,
			QRCode:           code,
			TokenID:          ulid.Make().String(),
			Status:           model.TicketStatusValid,
			PricePaid:        req.UnitPrice,
			PaymentSignature: receipt.Signature,
			IssuedAt:         issuedAt,
		})
	}

	return rows
}

func (i *TicketIssuer) now() time.Time {
	if i.TimeNow == nil {
		return time.Now()
	}

	return i.TimeNow()
}

// NewQRCode returns TICKTO-<event prefix>-<random>, where the random part comes from crypto/rand.
func NewQRCode(eventID string) string {
	prefix := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToUpper(r)
		}
		return -1
	}, eventID)

	if len(prefix) > constant.QrCodeEventPrefixSize {
		prefix = prefix[:constant.QrCodeEventPrefixSize]
	}

	return fmt.Sprintf("%s-%s-%s", constant.QrCodePrefix, prefix, rand.Text()[:constant.QrCodeRandomSize])
}
