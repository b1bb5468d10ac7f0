package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipStatsAdd(t *testing.T) {
	var s SkipStats
	s.Add(SkipPending)
	s.Add(SkipPending)
	s.Add(SkipNoAmount)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 2, s.Reasons[SkipPending])
	assert.Equal(t, 1, s.Reasons[SkipNoAmount])
}

func TestSkipStatsMerge(t *testing.T) {
	a := NewSkipStats()
	a.Add(SkipOther)

	b := NewSkipStats()
	b.Add(SkipOther)
	b.Add(SkipATMWithdrawal)

	a.Merge(b)
	assert.Equal(t, 3, a.Count)
	assert.Equal(t, 2, a.Reasons[SkipOther])
	assert.Equal(t, 1, a.Reasons[SkipATMWithdrawal])
}

func TestBankFormatKnown(t *testing.T) {
	for _, f := range KnownFormats {
		assert.True(t, f.Known(), "%s should be known", f)
	}
	assert.False(t, BankUnknown.Known())
	assert.False(t, BankFormat("pko").Known())
}
