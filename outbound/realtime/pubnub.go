package realtime

import (
	"context"
	"fmt"
	pubnub "github.com/pubnub/go"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/otel"
	"tickto/model"
)

type stateMessage struct {
	Type       string              `json:"type"`
	PurchaseID string              `json:"purchase_id"`
	State      model.PurchaseState `json:"state"`
	ErrorKind  string              `json:"error_kind,omitempty"`
	Signature  string              `json:"signature,omitempty"`
}

// PubNubNotifier pushes to the buyer's own channel, user-<buyer id>.
type PubNubNotifier struct {
	Client *pubnub.PubNub
}

func NewPubNub(publishKey, subscribeKey, secretKey string) *pubnub.PubNub {
	cfg := pubnub.NewConfig()
	cfg.PublishKey = publishKey
	cfg.SubscribeKey = subscribeKey
	cfg.SecretKey = secretKey

	return pubnub.NewPubNub(cfg)
}

func (out *PubNubNotifier) Push(ctx context.Context, channel string, message any) error {
	ctx, span := otel.Tracer.Start(ctx, "PubNubNotifier.Push")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	_, status, err := out.Client.Publish().
		Channel(channel).
		Message(message).
		Execute()
	if err != nil {
		common.UtilSpanError(span, err)
		slog.WarnContext(ctx, "pubnub publish failed", traceIdAttr,
			slog.String("channel", channel),
			slog.Int("status", status.StatusCode),
			slog.Any(constant.LogFieldErr, err))
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	return nil
}

func (out *PubNubNotifier) Observe(ctx context.Context, transition model.PurchaseTransition) {
	if transition.BuyerID == "" {
		return
	}

	_ = out.Push(ctx, fmt.Sprintf(constant.BuyerChannel, transition.BuyerID), stateMessage{
		Type:       "purchase_state",
		PurchaseID: transition.PurchaseID,
		State:      transition.To,
		ErrorKind:  transition.ErrorKind,
		Signature:  transition.Signature,
	})
}
