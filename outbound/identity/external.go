package identity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"github.com/oklog/ulid/v2"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
	"time"
)

const (
	DefaultApprovalTimeout = 2 * time.Minute

	signatureRequestType = "signature_request"
)

type Pusher interface {
	Push(ctx context.Context, channel string, message any) error
}

// ExternalSigner asks the buyer's app to sign with a wallet we do not control and waits for the answer.
// Silence until ApprovalTimeout counts as a decline.
type ExternalSigner struct {
	Pusher          Pusher
	Relay           AnswerRelay
	ApprovalTimeout time.Duration
	TimeNow         func() time.Time
}

func (out *ExternalSigner) RequestSignature(ctx context.Context, wallet model.SigningWallet, transaction []byte) ([]byte, error) {
	ctx, span := otel.Tracer.Start(ctx, "ExternalSigner.RequestSignature")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	if wallet.OwnerID == "" {
		err := errors.New("external wallet has no owner to ask")
		common.UtilSpanError(span, err)
		return nil, err
	}

	timeout := out.ApprovalTimeout
	if timeout <= 0 {
		timeout = DefaultApprovalTimeout
	}

	now := time.Now
	if out.TimeNow != nil {
		now = out.TimeNow
	}

	requestID := ulid.Make().String()

	answers, stop, err := out.Relay.Await(ctx, requestID)
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, err
	}
	defer stop()

	err = out.Pusher.Push(ctx, fmt.Sprintf(constant.BuyerChannel, wallet.OwnerID), model.SignatureRequest{
		Type:          signatureRequestType,
		RequestID:     requestID,
		WalletAddress: wallet.Address,
		Transaction:   base64.StdEncoding.EncodeToString(transaction),
		ExpiresAt:     now().Add(timeout).UTC(),
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, fmt.Errorf("push signature request: %w", err)
	}

	slog.InfoContext(ctx, "waiting for external wallet approval", traceIdAttr,
		slog.String(constant.LogFieldBuyerId, wallet.OwnerID),
		slog.String("request_id", requestID))

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case answer := <-answers:
		if answer.Rejected {
			return nil, errs.ErrSignatureRejected
		}

		signed, err := base64.StdEncoding.DecodeString(answer.SignedTransaction)
		if err != nil {
			common.UtilSpanError(span, err)
			return nil, fmt.Errorf("decode signed transaction: %w", err)
		}

		return signed, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w: no answer within %s", errs.ErrSignatureRejected, timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
