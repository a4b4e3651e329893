package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/model"
	"time"
)

type EmailEvent struct {
	Sender  EmailSender
	Timeout time.Duration
}

func (in EmailEvent) SendEmailHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	var req model.SendEmailEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil || req.To == "" {
		slog.WarnContext(ctx, "send email event unmarshal error", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return nil
	}

	err = in.Sender.Send(ctx, []string{req.To}, req.Subject, req.Body)
	if err != nil {
		slog.ErrorContext(ctx, "send email event error", traceIdAttr,
			slog.String("subject", req.Subject),
			slog.Any(constant.LogFieldErr, err))
		return err
	}

	slog.DebugContext(ctx, "send email event success", traceIdAttr, slog.String("subject", req.Subject))

	return nil
}
