package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/nats-io/nats.go"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/model"
)

// Conn is the part of *nats.Conn the notifier needs.
type Conn interface {
	Publish(subj string, data []byte) error
	Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error)
}

// NatsNotifier fans purchase transitions out on core NATS so any instance can stream them.
type NatsNotifier struct {
	Conn Conn
}

func (out *NatsNotifier) Observe(ctx context.Context, transition model.PurchaseTransition) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	data, err := json.Marshal(transition)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal transition", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	if err = out.Conn.Publish(fmt.Sprintf(constant.PurchaseStateSubject, transition.PurchaseID), data); err != nil {
		slog.WarnContext(ctx, "failed to publish transition", traceIdAttr,
			slog.String(constant.LogFieldPurchaseId, transition.PurchaseID),
			slog.String(constant.LogFieldState, string(transition.To)),
			slog.Any(constant.LogFieldErr, err))
	}
}

// Subscribe calls fn for every transition of the purchase until the returned func is called.
func (out *NatsNotifier) Subscribe(ctx context.Context, purchaseID string, fn func(model.PurchaseTransition)) (func(), error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	sub, err := out.Conn.Subscribe(fmt.Sprintf(constant.PurchaseStateSubject, purchaseID), func(msg *nats.Msg) {
		var transition model.PurchaseTransition
		if err := json.Unmarshal(msg.Data, &transition); err != nil {
			slog.WarnContext(ctx, "dropping malformed transition", traceIdAttr,
				slog.String(constant.LogFieldPayload, string(msg.Data)),
				slog.Any(constant.LogFieldErr, err))
			return
		}

		fn(transition)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe transitions: %w", err)
	}

	return func() { _ = sub.Unsubscribe() }, nil
}
