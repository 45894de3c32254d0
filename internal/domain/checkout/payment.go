package checkout

const StatusSucceeded = "succeeded"

// PaymentTransaction is the gateway's record of a charge. Read-only here.
type PaymentTransaction struct {
	ID          string
	AmountCents int64
	Currency    string
	Status      string
	Metadata    map[string]string
}

func (p *PaymentTransaction) Succeeded() bool {
	return p != nil && p.Status == StatusSucceeded
}

// CheckoutToken returns the snapshot token the checkout attached to the charge, if any.
func (p *PaymentTransaction) CheckoutToken() string {
	if p == nil || p.Metadata == nil {
		return ""
	}
	return p.Metadata["checkout_token"]
}
