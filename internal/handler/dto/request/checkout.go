package request

import (
	"strconv"
	"strings"

	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/usecase/commands"
	"booking-reconciler/internal/usecase/resolver"

	"github.com/google/uuid"
)

type CartItemRequest struct {
	SKU        string `json:"sku" binding:"required,max=64"`
	Name       string `json:"name" binding:"required,max=200"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
}

type ContactRequest struct {
	GuardianName string `json:"guardian_name" binding:"max=200"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"max=40"`
}

type ParticipantRequest struct {
	ID        *uuid.UUID `json:"id"`
	FirstName string     `json:"first_name" binding:"max=100"`
	LastName  string     `json:"last_name" binding:"max=100"`
}

type ScheduleRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Location  string `json:"location" binding:"max=200"`
}

type CaptureSnapshotRequest struct {
	Cart        []CartItemRequest  `json:"cart" binding:"required,min=1,dive"`
	Contact     ContactRequest     `json:"contact"`
	Participant ParticipantRequest `json:"participant"`
	ProviderID  uuid.UUID          `json:"provider_id" binding:"required"`
	PackageType string             `json:"package_type" binding:"required"`
	Schedule    ScheduleRequest    `json:"schedule"`
	TotalCents  int64              `json:"total_cents" binding:"min=0"`
	Currency    string             `json:"currency" binding:"omitempty,len=3"`
}

func (r *CaptureSnapshotRequest) ToCommand() commands.CaptureSnapshotRequest {
	cart := make([]checkout.CartItem, 0, len(r.Cart))
	for _, it := range r.Cart {
		cart = append(cart, checkout.CartItem{
			SKU:        it.SKU,
			Name:       it.Name,
			Quantity:   it.Quantity,
			PriceCents: it.PriceCents,
		})
	}
	return commands.CaptureSnapshotRequest{
		Cart: cart,
		Contact: checkout.Contact{
			GuardianName: strings.TrimSpace(r.Contact.GuardianName),
			Email:        strings.TrimSpace(r.Contact.Email),
			Phone:        strings.TrimSpace(r.Contact.Phone),
		},
		Participant: checkout.ParticipantInfo{
			ID:        r.Participant.ID,
			FirstName: strings.TrimSpace(r.Participant.FirstName),
			LastName:  strings.TrimSpace(r.Participant.LastName),
		},
		ProviderID:  r.ProviderID,
		PackageType: r.PackageType,
		Schedule: checkout.Schedule{
			Date:      r.Schedule.Date,
			StartTime: r.Schedule.StartTime,
			Location:  r.Schedule.Location,
		},
		TotalCents: r.TotalCents,
		Currency:   r.Currency,
	}
}

// ConfirmationQuery holds the identifiers the payment redirect may carry.
// Everything is optional and malformed values are ignored.
type ConfirmationQuery struct {
	BookingID     string `form:"booking_id"`
	OrderID       string `form:"order_id"`
	BookingNumber string `form:"booking_number"`
	PaymentIntent string `form:"payment_intent"`
	TransactionID string `form:"transaction_id"`
	CheckoutToken string `form:"checkout_token"`
}

// ToHints maps the query onto resolver hints. A non-numeric booking_id is
// treated as a booking number.
func (q *ConfirmationQuery) ToHints() resolver.Hints {
	h := resolver.Hints{
		BookingNumber: strings.TrimSpace(q.BookingNumber),
		CheckoutToken: strings.TrimSpace(q.CheckoutToken),
	}

	if raw := strings.TrimSpace(q.BookingID); raw != "" {
		if id, ok := parsePositiveID(raw); ok {
			h.BookingID = &id
		} else if h.BookingNumber == "" {
			h.BookingNumber = raw
		}
	}
	if id, ok := parsePositiveID(q.OrderID); ok {
		h.OrderID = &id
	}

	h.PaymentTransactionID = strings.TrimSpace(q.PaymentIntent)
	if h.PaymentTransactionID == "" {
		h.PaymentTransactionID = strings.TrimSpace(q.TransactionID)
	}
	return h
}

func parsePositiveID(raw string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
