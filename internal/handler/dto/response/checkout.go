package response

import (
	"time"

	"booking-reconciler/internal/usecase"
	"booking-reconciler/internal/usecase/commands"
	"booking-reconciler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                int64     `json:"id"`
	Number            string    `json:"number"`
	ProviderID        uuid.UUID `json:"providerId"`
	ProviderName      string    `json:"providerName"`
	GuardianName      string    `json:"guardianName"`
	ParticipantName   string    `json:"participantName"`
	SessionDate       string    `json:"sessionDate,omitempty"`
	StartTime         string    `json:"startTime,omitempty"`
	Location          string    `json:"location,omitempty"`
	PackageType       string    `json:"packageType"`
	TotalSessions     int       `json:"totalSessions"`
	SessionsRemaining int       `json:"sessionsRemaining"`
	TotalCents        int64     `json:"totalCents"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

type ConfirmationResponse struct {
	Status        string            `json:"status"`
	Message       string            `json:"message"`
	Booking       *BookingResponse  `json:"booking,omitempty"`
	ResolvedBy    string            `json:"resolvedBy,omitempty"`
	Recovered     bool              `json:"recovered"`
	Notifications map[string]string `json:"notifications,omitempty"`
}

type SnapshotResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) (*BookingResponse, error) {
	if rm == nil {
		return nil, nil
	}
	var out BookingResponse
	if err := copier.Copy(&out, rm); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromConfirmationView(v *usecase.ConfirmationView) (*ConfirmationResponse, error) {
	out := &ConfirmationResponse{
		Status:     v.Status,
		Message:    v.Message,
		ResolvedBy: v.ResolvedBy,
		Recovered:  v.Recovered,
	}
	b, err := FromBookingRM(v.Booking)
	if err != nil {
		return nil, err
	}
	out.Booking = b
	if len(v.Notifications) > 0 {
		out.Notifications = make(map[string]string, len(v.Notifications))
		for role, outcome := range v.Notifications {
			out.Notifications[string(role)] = string(outcome)
		}
	}
	return out, nil
}

func FromCaptureSnapshotResult(r *commands.CaptureSnapshotResult) *SnapshotResponse {
	return &SnapshotResponse{Token: r.Token, ExpiresAt: r.ExpiresAt}
}
