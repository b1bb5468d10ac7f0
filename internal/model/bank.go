package model

// BankFormat identifies which row grammar a statement export uses.
type BankFormat string

const (
	BankMillennium BankFormat = "millennium"
	BankMBank      BankFormat = "mbank"
	BankRevolut    BankFormat = "revolut"
	BankRevolutPL  BankFormat = "revolut_pl"
	BankING        BankFormat = "ing"
	BankZen        BankFormat = "zen"
	BankUnknown    BankFormat = "unknown"
)

// KnownFormats lists every format with a dedicated grammar, in detection order.
var KnownFormats = []BankFormat{
	BankMillennium,
	BankMBank,
	BankRevolut,
	BankRevolutPL,
	BankING,
	BankZen,
}

// Known reports whether f has a dedicated grammar.
func (f BankFormat) Known() bool {
	for _, k := range KnownFormats {
		if f == k {
			return true
		}
	}
	return false
}
