package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"booking-reconciler/internal/pkg/errs"
	"booking-reconciler/internal/usecase/notify"
	"booking-reconciler/internal/usecase/readmodel"
	"booking-reconciler/internal/usecase/recovery"
	"booking-reconciler/internal/usecase/resolver"

	"github.com/google/uuid"
)

const (
	StatusConfirmed      = "confirmed"
	StatusPendingDetails = "pending_details"

	ConfirmedMessage       = "Your booking is confirmed. A confirmation email is on its way."
	PaymentReceivedMessage = "Payment received. Your booking details are being finalized and will be emailed to you shortly."
)

type BookingResolver interface {
	Resolve(ctx context.Context, h resolver.Hints) (*resolver.Result, error)
}

type BookingRecoverer interface {
	Recover(ctx context.Context, req recovery.Request) (*recovery.Result, error)
}

type ConfirmationNotifier interface {
	Dispatch(ctx context.Context, b *readmodel.BookingRM, userID *uuid.UUID) notify.DispatchReport
}

type ConfirmationView struct {
	Status        string
	Message       string
	Booking       *readmodel.BookingRM
	ResolvedBy    string
	Recovered     bool
	Notifications notify.DispatchReport
}

// PendingView is what the page shows whenever the booking cannot be identified.
func PendingView() *ConfirmationView {
	return &ConfirmationView{Status: StatusPendingDetails, Message: PaymentReceivedMessage}
}

type ConfirmationUseCase interface {
	// Confirm never fails: unresolved or broken flows degrade to PendingView.
	Confirm(ctx context.Context, h resolver.Hints) *ConfirmationView
}

type confirmationUseCaseImpl struct {
	resolver BookingResolver
	recovery BookingRecoverer
	notifier ConfirmationNotifier
	logger   *slog.Logger
}

func NewConfirmationUseCase(
	resolver BookingResolver,
	recovery BookingRecoverer,
	notifier ConfirmationNotifier,
	logger *slog.Logger,
) ConfirmationUseCase {
	return &confirmationUseCaseImpl{
		resolver: resolver,
		recovery: recovery,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *confirmationUseCaseImpl) Confirm(ctx context.Context, h resolver.Hints) (view *ConfirmationView) {
	defer func() {
		if r := recover(); r != nil {
			err := errs.New(fmt.Sprint(r))
			uc.logger.ErrorContext(ctx, "confirmation flow panicked",
				"panic", r,
				"transaction_id", h.PaymentTransactionID,
				"checkout_token", h.CheckoutToken,
				"stack", errs.ExtractStackLines(err, 12),
			)
			view = PendingView()
		}
	}()

	h.PaymentTransactionID = strings.TrimSpace(h.PaymentTransactionID)
	h.CheckoutToken = strings.TrimSpace(h.CheckoutToken)

	view = &ConfirmationView{}
	resolved, err := uc.resolver.Resolve(ctx, h)
	if err != nil {
		uc.logger.WarnContext(ctx, "booking resolution aborted", "error", err)
	}
	if resolved != nil {
		view.Booking = resolved.Booking
		view.ResolvedBy = resolved.Strategy
	} else {
		view.Booking = uc.recover(ctx, h)
		view.Recovered = view.Booking != nil
	}

	if view.Booking == nil {
		return PendingView()
	}

	view.Status = StatusConfirmed
	view.Message = ConfirmedMessage
	view.Notifications = uc.notifier.Dispatch(ctx, view.Booking, h.UserID)
	return view
}

func (uc *confirmationUseCaseImpl) recover(ctx context.Context, h resolver.Hints) *readmodel.BookingRM {
	if h.PaymentTransactionID == "" {
		return nil
	}
	res, err := uc.recovery.Recover(ctx, recovery.Request{
		PaymentTransactionID: h.PaymentTransactionID,
		CheckoutToken:        h.CheckoutToken,
		UserID:               h.UserID,
	})
	switch {
	case err == nil:
		return res.Booking
	case errs.IsAny(err, recovery.ErrPreconditionUnmet, recovery.ErrPaymentNotVerified):
		uc.logger.InfoContext(ctx, "booking not recoverable yet",
			"transaction_id", h.PaymentTransactionID,
			"checkout_token", h.CheckoutToken,
			"reason", err.Error(),
		)
	default:
		uc.logger.ErrorContext(ctx, "booking unresolved after payment, needs support follow-up",
			"transaction_id", h.PaymentTransactionID,
			"checkout_token", h.CheckoutToken,
			"error", err,
		)
	}
	return nil
}
