package gateway

import (
	"context"
	"net/http"
	"strings"

	"booking-reconciler/internal/domain/checkout"
	"booking-reconciler/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Stripe looks payment intents up with a secret key. It never mutates them.
type Stripe struct {
	api *client.API
}

func NewStripe(secretKey string) (*Stripe, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, errs.New("stripe secret key is required")
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Stripe{api: api}, nil
}

func (s *Stripe) Lookup(ctx context.Context, transactionID string) (*checkout.PaymentTransaction, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.Get(transactionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errs.As(err, &stripeErr) &&
			(stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(errs.Wrapf(err, "failed to retrieve payment intent %s", transactionID), errs.ErrExternalServiceFailed)
	}

	amount := pi.AmountReceived
	if amount == 0 {
		amount = pi.Amount
	}
	return &checkout.PaymentTransaction{
		ID:          pi.ID,
		AmountCents: amount,
		Currency:    strings.ToLower(string(pi.Currency)),
		Status:      string(pi.Status),
		Metadata:    pi.Metadata,
	}, nil
}
