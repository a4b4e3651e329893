package purchase

import (
	"context"
	"fmt"
	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/text/message"
	"log/slog"
	"strings"
	"tickto/common"
	"tickto/common/constant"
	"tickto/model"
)

// Notifier queues emails on the work queue stream; the email consumer does the actual sending.
type Notifier struct {
	Publisher        jetstream.Publisher
	LamportFormatter *message.Printer
	SupportEmail     string
}

func (n *Notifier) TicketsIssued(ctx context.Context, purchaseID string, req model.PurchaseRequest, receipt model.PaymentReceipt, tickets []model.Ticket) error {
	if req.BuyerEmail == "" {
		return nil
	}

	var lines strings.Builder
	for _, ticket := range tickets {
		fmt.Fprintf(&lines, constant.EmailTicketLineTemplate, ticket.ID, ticket.TokenID, ticket.QRCode)
	}

	body := fmt.Sprintf(constant.EmailTicketsIssuedTemplate,
		purchaseID,
		req.TierName,
		req.Quantity,
		n.formatAmount(receipt),
		receipt.Signature,
		lines.String(),
	)

	return n.publish(ctx, model.SendEmailEventMessage{
		To:      req.BuyerEmail,
		Subject: "Your tickets are ready",
		Body:    body,
	}, "tickets:"+receipt.Signature)
}

func (n *Notifier) IssuanceFailed(ctx context.Context, req model.PurchaseRequest, receipt model.PaymentReceipt, cause error) error {
	if n.SupportEmail == "" {
		slog.WarnContext(ctx, "no support address configured, skipping reconciliation email", common.ExtractTraceIDFromCtx(ctx), slog.String(constant.LogFieldSignature, receipt.Signature))
		return nil
	}

	body := fmt.Sprintf(constant.EmailIssuanceFailedSupportTemplate,
		receipt.Signature,
		req.BuyerID,
		req.EventID,
		req.TierName,
		req.TierID,
		req.Quantity,
		n.formatAmount(receipt),
		receipt.FromAddress,
		receipt.ToAddress,
		cause,
		receipt.Signature,
	)

	return n.publish(ctx, model.SendEmailEventMessage{
		To:      n.SupportEmail,
		Subject: "Ticket issuance failed after payment " + receipt.Signature,
		Body:    body,
	}, "support:"+receipt.Signature)
}

func (n *Notifier) publish(ctx context.Context, msg model.SendEmailEventMessage, msgID string) error {
	err := common.PublishMessage(ctx, n.Publisher, constant.SubjectSendEmail, msg, jetstream.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("queue email: %w", err)
	}

	slog.DebugContext(ctx, "email queued", common.ExtractTraceIDFromCtx(ctx), slog.String("subject", msg.Subject))

	return nil
}

func (n *Notifier) formatAmount(receipt model.PaymentReceipt) string {
	if receipt.Free {
		return "Free"
	}

	if n.LamportFormatter == nil {
		return receipt.AmountDisplay()
	}

	return n.LamportFormatter.Sprintf("%s (%d lamports)", receipt.AmountDisplay(), receipt.Amount)
}
