package booking

// Split is the platform fee / provider payout breakdown of a booking total.
type Split struct {
	Fee        Money
	Payout     Money
	PerSession Money
}

// Derive computes the fee split and per-session price for a total.
// Rounding is to the cent, halves away from zero.
func Derive(total Money, feePercent float64, sessionCount int) (Split, error) {
	if total.cents < 0 {
		return Split{}, ErrNegativeMoney
	}
	if feePercent < 0 || feePercent > 100 {
		return Split{}, ErrInvalidFeePercent
	}

	fee := Money{cents: roundHalfAway(float64(total.cents) * feePercent / 100.0)}
	payout := total.Sub(fee)

	perSession := total
	if sessionCount > 0 {
		perSession = Money{cents: roundHalfAway(float64(total.cents) / float64(sessionCount))}
	}

	return Split{
		Fee:        fee,
		Payout:     payout,
		PerSession: perSession,
	}, nil
}
