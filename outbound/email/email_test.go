package email

import (
	"context"
	"errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"net/smtp"
	"strings"
	"testing"
	"time"
)

type sent struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  string
}

type EmailOutboundTestSuite struct {
	suite.Suite
	cfg  *viper.Viper
	sent []sent
	err  error
}

func (s *EmailOutboundTestSuite) SetupTest() {
	s.cfg = viper.New()
	s.cfg.Set("email.host", "smtp.example.com")
	s.cfg.Set("email.port", 587)
	s.cfg.Set("email.user", "mailer@tickto.app")
	s.cfg.Set("email.password", "hunter2")
	s.sent = nil
	s.err = nil
}

func TestEmailOutboundTestSuite(t *testing.T) {
	suite.Run(t, new(EmailOutboundTestSuite))
}

func (s *EmailOutboundTestSuite) newOutbound() *EmailOutbound {
	out := &EmailOutbound{Cfg: s.cfg}
	out.Init()
	out.timeNow = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	out.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		s.sent = append(s.sent, sent{addr: addr, auth: a, from: from, to: to, msg: string(msg)})
		return s.err
	}

	return out
}

func (s *EmailOutboundTestSuite) TestSend() {
	out := s.newOutbound()

	err := out.Send(context.Background(), []string{"ana@example.com", "bo@example.com"}, "Your tickets", "line one\nline two")
	s.Require().NoError(err)

	s.Require().Len(s.sent, 1)
	mail := s.sent[0]
	s.Equal("smtp.example.com:587", mail.addr)
	s.Equal("mailer@tickto.app", mail.from)
	s.Equal([]string{"ana@example.com", "bo@example.com"}, mail.to)
	s.NotNil(mail.auth)

	headers, body, found := strings.Cut(mail.msg, "\r\n\r\n")
	s.Require().True(found)
	s.Contains(headers, "From: mailer@tickto.app\r\n")
	s.Contains(headers, "To: ana@example.com,bo@example.com\r\n")
	s.Contains(headers, "Subject: Your tickets\r\n")
	s.Contains(headers, "Date: Fri, 01 May 2026 12:00:00 +0000\r\n")
	s.Contains(headers, "Content-Type: text/plain; charset=UTF-8")
	s.Equal("line one\r\nline two", body)
}

func (s *EmailOutboundTestSuite) TestSendUsesConfiguredFrom() {
	s.cfg.Set("email.from", "Tickto <no-reply@tickto.app>")
	s.cfg.Set("email.auth", "plain")
	out := s.newOutbound()

	s.Require().NoError(out.Send(context.Background(), []string{"ana@example.com"}, "s", "b"))
	s.Equal("mailer@tickto.app", s.sent[0].from)
	s.Contains(s.sent[0].msg, "From: Tickto <no-reply@tickto.app>\r\n")
}

func (s *EmailOutboundTestSuite) TestSendError() {
	s.err = errors.New("535 authentication failed")
	out := s.newOutbound()

	err := out.Send(context.Background(), []string{"ana@example.com"}, "s", "b")
	s.Error(err)
}
