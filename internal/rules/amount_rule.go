// Package rules provides composable predicates used by institution cleaners to
// decide whether a raw statement record matches a cleaning rule.
package rules

import (
	"github.com/shopspring/decimal"

	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

type amountMode int

const (
	amountNone amountMode = iota
	amountEquals
	amountGreaterThan
	amountLessThan
)

// AmountRule compares a record's raw amount against a literal. Exactly one
// comparison mode is active per instance; the zero value never matches.
type AmountRule struct {
	mode  amountMode
	value decimal.Decimal
}

// AmountEquals matches records whose amount equals the given literal.
func AmountEquals(value decimal.Decimal) AmountRule {
	return AmountRule{mode: amountEquals, value: value}
}

// AmountGreaterThan matches records whose amount is strictly greater than the literal.
func AmountGreaterThan(value decimal.Decimal) AmountRule {
	return AmountRule{mode: amountGreaterThan, value: value}
}

// AmountLessThan matches records whose amount is strictly less than the literal.
func AmountLessThan(value decimal.Decimal) AmountRule {
	return AmountRule{mode: amountLessThan, value: value}
}

// Match evaluates the configured comparison against the record's raw amount.
func (r AmountRule) Match(record models.RawRecord) bool {
	switch r.mode {
	case amountEquals:
		return record.Amount.Equal(r.value)
	case amountGreaterThan:
		return record.Amount.GreaterThan(r.value)
	case amountLessThan:
		return record.Amount.LessThan(r.value)
	default:
		return false
	}
}

func (r AmountRule) configured() bool {
	return r.mode != amountNone
}
