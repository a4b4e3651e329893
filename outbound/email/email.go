package email

import (
	"context"
	"fmt"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/viper"
	"log/slog"
	"net/smtp"
	"strings"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/otel"
	"time"
)

const (
	authPlain   = "plain"
	authCramMD5 = "crammd5"
)

// EmailOutbound sends plain text mail. The envelope sender is always email.user, email.from only
// changes the From header.
type EmailOutbound struct {
	Cfg *viper.Viper

	auth     smtp.Auth
	addr     string
	sender   string
	from     string
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	timeNow  func() time.Time
}

func (out *EmailOutbound) Init() {
	host := out.Cfg.GetString("email.host")
	user := out.Cfg.GetString("email.user")
	password := out.Cfg.GetString("email.password")

	out.sender = user
	out.from = out.Cfg.GetString("email.from")
	if out.from == "" {
		out.from = user
	}

	out.addr = fmt.Sprintf("%s:%d", host, out.Cfg.GetInt("email.port"))

	switch strings.ToLower(out.Cfg.GetString("email.auth")) {
	case authPlain:
		out.auth = smtp.PlainAuth("", user, password, host)
	case authCramMD5, "":
		out.auth = smtp.CRAMMD5Auth(user, password)
	default:
		slog.Warn("unknown email auth, sending without auth", slog.String("auth", out.Cfg.GetString("email.auth")))
	}

	out.sendMail = smtp.SendMail
	out.timeNow = time.Now
}

func (out *EmailOutbound) Send(ctx context.Context, to []string, subject string, body string) error {
	ctx, span := otel.Tracer.Start(ctx, "EmailOutbound.Send")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	message := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nDate: %s\r\nMessage-ID: <%s@tickto>\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		out.from,
		strings.Join(to, ","),
		subject,
		out.timeNow().Format(time.RFC1123Z),
		ulid.Make().String(),
		strings.ReplaceAll(body, "\n", "\r\n"),
	))

	err := out.sendMail(out.addr, out.auth, out.sender, to, message)
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to send email", traceIdAttr,
			slog.String("subject", subject),
			slog.Any(constant.LogFieldErr, err))
		return err
	}

	slog.DebugContext(ctx, "email sent", traceIdAttr, slog.String("subject", subject))
	return nil
}
