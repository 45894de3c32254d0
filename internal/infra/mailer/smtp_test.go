//go:build unit

package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"booking-reconciler/internal/pkg/config"
	"booking-reconciler/internal/pkg/errs"
	"booking-reconciler/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_Send(t *testing.T) {
	cfg := config.MailConfig{Host: "mail.local", Port: "2525", From: "bookings@example.com"}

	t.Run("composes headers and body", func(t *testing.T) {
		m := NewSMTPMailer(cfg)
		var gotAddr string
		var gotTo []string
		var gotMsg string
		m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, string(msg)
			assert.Equal(t, "bookings@example.com", from)
			return nil
		}

		err := m.Send(context.Background(), shared.Message{To: "pat@example.com", Subject: "Booking BK-1", Body: "line1\nline2"})

		require.NoError(t, err)
		assert.Equal(t, "mail.local:2525", gotAddr)
		assert.Equal(t, []string{"pat@example.com"}, gotTo)
		assert.Contains(t, gotMsg, "Subject: Booking BK-1\r\n")
		assert.Contains(t, gotMsg, "line1\r\nline2")
	})

	t.Run("transport failure is marked external", func(t *testing.T) {
		m := NewSMTPMailer(cfg)
		m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("connection refused") }

		err := m.Send(context.Background(), shared.Message{To: "pat@example.com"})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrExternalServiceFailed))
	})

	t.Run("empty recipient", func(t *testing.T) {
		m := NewSMTPMailer(cfg)
		assert.Error(t, m.Send(context.Background(), shared.Message{}))
	})
}
