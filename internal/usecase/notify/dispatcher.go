package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"booking-reconciler/internal/usecase/readmodel"
	"booking-reconciler/internal/usecase/shared"

	"github.com/google/uuid"
)

type Role string

const (
	RolePayer    Role = "payer"
	RoleProvider Role = "provider"
)

var roles = []Role{RolePayer, RoleProvider}

type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

type DispatchReport map[Role]Outcome

// MarkerKey identifies the sent marker for one recipient of one booking.
func MarkerKey(bookingID int64, role Role) string {
	return fmt.Sprintf("notif:sent:%d:%s", bookingID, role)
}

type Dispatcher struct {
	markers   shared.MarkerStore
	providers shared.ProviderDirectory
	users     shared.UserDirectory
	mailer    shared.Mailer
	renderer  Renderer
	markerTTL time.Duration
	logger    *slog.Logger
}

func NewDispatcher(
	markers shared.MarkerStore,
	providers shared.ProviderDirectory,
	users shared.UserDirectory,
	mailer shared.Mailer,
	renderer Renderer,
	markerTTL time.Duration,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		markers:   markers,
		providers: providers,
		users:     users,
		mailer:    mailer,
		renderer:  renderer,
		markerTTL: markerTTL,
		logger:    logger,
	}
}

// Dispatch sends each role's confirmation at most once per marker lifetime.
// Failures are reported, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, b *readmodel.BookingRM, userID *uuid.UUID) DispatchReport {
	report := make(DispatchReport, len(roles))
	for _, role := range roles {
		report[role] = d.dispatchRole(ctx, b, role)
	}

	if report[RolePayer] != OutcomeSent && userID != nil {
		if d.fallbackToAccountEmail(ctx, b, *userID) {
			report[RolePayer] = OutcomeSent
		}
	}
	return report
}

func (d *Dispatcher) dispatchRole(ctx context.Context, b *readmodel.BookingRM, role Role) Outcome {
	log := d.logger.With("booking_id", b.ID, "role", string(role))
	key := MarkerKey(b.ID, role)

	sent, err := d.markers.Exists(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "sent marker check failed", "error", err)
		return OutcomeFailed
	}
	if sent {
		log.InfoContext(ctx, "confirmation already sent")
		return OutcomeSkipped
	}

	to, err := d.address(ctx, b, role)
	if err != nil || to == "" {
		log.WarnContext(ctx, "no recipient address", "error", err)
		return OutcomeSkipped
	}
	return d.send(ctx, b, role, to, key, log)
}

func (d *Dispatcher) address(ctx context.Context, b *readmodel.BookingRM, role Role) (string, error) {
	switch role {
	case RolePayer:
		return strings.TrimSpace(b.GuardianEmail), nil
	case RoleProvider:
		contact, err := d.providers.ContactByID(ctx, b.ProviderID)
		if err != nil || contact == nil {
			return "", err
		}
		return strings.TrimSpace(contact.Email), nil
	}
	return "", fmt.Errorf("unknown role %q", role)
}

// fallbackToAccountEmail retries the payer at the signed-in account's address, only while
// the payer marker is still absent.
func (d *Dispatcher) fallbackToAccountEmail(ctx context.Context, b *readmodel.BookingRM, userID uuid.UUID) bool {
	log := d.logger.With("booking_id", b.ID, "role", string(RolePayer), "fallback", true)
	key := MarkerKey(b.ID, RolePayer)

	sent, err := d.markers.Exists(ctx, key)
	if err != nil || sent {
		return false
	}
	to, err := d.users.EmailByID(ctx, userID)
	if err != nil || strings.TrimSpace(to) == "" {
		log.WarnContext(ctx, "account email unavailable", "error", err)
		return false
	}
	return d.send(ctx, b, RolePayer, strings.TrimSpace(to), key, log) == OutcomeSent
}

func (d *Dispatcher) send(ctx context.Context, b *readmodel.BookingRM, role Role, to, key string, log *slog.Logger) Outcome {
	subject, body, err := d.renderer.Render(NewConfirmationData(role, b))
	if err != nil {
		log.ErrorContext(ctx, "confirmation render failed", "error", err)
		return OutcomeFailed
	}
	if err := d.mailer.Send(ctx, shared.Message{To: to, Subject: subject, Body: body}); err != nil {
		log.WarnContext(ctx, "confirmation send failed, will retry on a later visit", "error", err)
		return OutcomeFailed
	}
	if err := d.markers.Set(ctx, key, d.markerTTL); err != nil {
		log.ErrorContext(ctx, "confirmation sent but marker not recorded", "error", err)
	}
	log.InfoContext(ctx, "confirmation sent")
	return OutcomeSent
}
