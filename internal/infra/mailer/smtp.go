package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/errs"
	"booking-reconciler/internal/usecase/shared"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
	send sendFunc
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: net.JoinHostPort(cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
		send: smtp.SendMail,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg shared.Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return errs.New("mail recipient is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- m.send(m.addr, m.auth, m.from, []string{msg.To}, m.compose(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return errs.Mark(errs.Wrapf(err, "failed to send mail to %s", msg.To), errs.ErrExternalServiceFailed)
		}
		return nil
	case <-ctx.Done():
		return errs.Mark(errs.Wrap(ctx.Err(), "mail send cancelled"), errs.ErrExternalServiceFailed)
	}
}

func (m *SMTPMailer) compose(msg shared.Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}
