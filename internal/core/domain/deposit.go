package domain

// Published deposit amounts for the German market, in euro cents.
const (
	DepositSingleUseCents     = 8
	DepositReusableBeerCents  = 15
	DepositReusableOtherCents = 25
)

// DepositVerdict is the outcome of a deposit check. AmountKnown is false
// when a deposit was detected but no amount could be inferred; callers must
// treat that as "unknown amount", never as zero.
type DepositVerdict struct {
	HasDeposit      bool
	AmountCents     int
	AmountKnown     bool
	ReturnLocations []string
}

// AmountEuros returns the deposit amount in euros, or 0 when unknown.
func (v DepositVerdict) AmountEuros() float64 {
	if !v.AmountKnown {
		return 0
	}
	return float64(v.AmountCents) / 100
}
