package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is the joined booking view rendered on the confirmation page
// and used to address confirmation notifications.
type BookingRM struct {
	ID                   int64      `json:"id"`
	Number               string     `json:"number"`
	ProviderID           uuid.UUID  `json:"provider_id"`
	ProviderName         string     `json:"provider_name"`
	GuardianID           uuid.UUID  `json:"guardian_id"`
	GuardianName         string     `json:"guardian_name"`
	GuardianEmail        string     `json:"guardian_email"`
	ParticipantID        uuid.UUID  `json:"participant_id"`
	ParticipantName      string     `json:"participant_name"`
	SessionDate          string     `json:"session_date"`
	StartTime            string     `json:"start_time"`
	Location             string     `json:"location"`
	PackageType          string     `json:"package_type"`
	TotalSessions        int        `json:"total_sessions"`
	SessionsRemaining    int        `json:"sessions_remaining"`
	TotalCents           int64      `json:"total_cents"`
	Currency             string     `json:"currency"`
	FeeCents             int64      `json:"fee_cents"`
	PayoutCents          int64      `json:"payout_cents"`
	PaymentTransactionID string     `json:"payment_transaction_id"`
	Status               string     `json:"status"`
	EscrowHoldID         *uuid.UUID `json:"escrow_hold_id,omitempty"`
	PackageCreditID      *uuid.UUID `json:"package_credit_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

type ProviderContactRM struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
