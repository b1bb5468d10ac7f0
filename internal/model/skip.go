package model

// SkipReason explains why a statement row was not turned into a transaction.
type SkipReason string

const (
	SkipInternalTransfer SkipReason = "internal_transfer"
	SkipATMWithdrawal    SkipReason = "atm_withdrawal"
	SkipCardPayment      SkipReason = "card_payment" // credit line repayment, not a purchase
	SkipPending          SkipReason = "pending"
	SkipNoAmount         SkipReason = "no_amount"
	SkipOther            SkipReason = "other"
)

// SkipReasons is the fixed taxonomy in display order.
var SkipReasons = []SkipReason{
	SkipInternalTransfer,
	SkipATMWithdrawal,
	SkipCardPayment,
	SkipPending,
	SkipNoAmount,
	SkipOther,
}

// SkipStats counts skipped rows per reason. Count always equals the sum of Reasons.
type SkipStats struct {
	Count   int                `json:"count"`
	Reasons map[SkipReason]int `json:"reasons"`
}

// NewSkipStats returns empty stats with a non-nil Reasons map.
func NewSkipStats() SkipStats {
	return SkipStats{Reasons: make(map[SkipReason]int)}
}

// Add records one skipped row.
func (s *SkipStats) Add(reason SkipReason) {
	if s.Reasons == nil {
		s.Reasons = make(map[SkipReason]int)
	}
	s.Reasons[reason]++
	s.Count++
}

// Merge adds all counts from other.
func (s *SkipStats) Merge(other SkipStats) {
	for reason, n := range other.Reasons {
		for range n {
			s.Add(reason)
		}
	}
}
