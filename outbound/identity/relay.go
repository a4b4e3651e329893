package identity

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

// AnswerRelay carries a buyer's answer from whichever instance received it to the one waiting.
type AnswerRelay interface {
	Await(ctx context.Context, requestID string) (<-chan model.SignatureAnswer, func(), error)
	Answer(ctx context.Context, answer model.SignatureAnswer) error
}

type NatsRelay struct {
	Conn *nats.Conn
}

// Await registers interest before returning, so an answer published right after cannot be missed.
func (out *NatsRelay) Await(ctx context.Context, requestID string) (<-chan model.SignatureAnswer, func(), error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	msgs := make(chan *nats.Msg, 1)
	sub, err := out.Conn.ChanSubscribe(fmt.Sprintf(constant.WalletSignatureSubject, requestID), msgs)
	if err != nil {
		return nil, nil, fmt.Errorf("subscribe signature answer: %w", err)
	}

	if err = out.Conn.FlushWithContext(ctx); err != nil {
		_ = sub.Unsubscribe()
		return nil, nil, fmt.Errorf("flush signature subscription: %w", err)
	}

	answers := make(chan model.SignatureAnswer, 1)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case msg := <-msgs:
				var answer model.SignatureAnswer
				if err := json.Unmarshal(msg.Data, &answer); err != nil {
					slog.WarnContext(ctx, "dropping malformed signature answer", traceIdAttr,
						slog.String(constant.LogFieldPayload, string(msg.Data)),
						slog.Any(constant.LogFieldErr, err))
					continue
				}

				select {
				case answers <- answer:
				default:
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		_ = sub.Unsubscribe()
		close(done)
	}

	return answers, stop, nil
}

func (out *NatsRelay) Answer(ctx context.Context, answer model.SignatureAnswer) error {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	data, err := json.Marshal(answer)
	if err != nil {
		return err
	}

	if err = out.Conn.Publish(fmt.Sprintf(constant.WalletSignatureSubject, answer.RequestID), data); err != nil {
		slog.ErrorContext(ctx, "failed to relay signature answer", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	return nil
}
