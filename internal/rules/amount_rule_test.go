package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

func record(amount float64) models.RawRecord {
	return models.RawRecord{Amount: decimal.NewFromFloat(amount)}
}

func TestAmountEquals(t *testing.T) {
	rule := AmountEquals(decimal.NewFromFloat(-42.00))
	assert.True(t, rule.Match(record(-42.00)))
	assert.False(t, rule.Match(record(-42.01)))
}

func TestAmountGreaterThan(t *testing.T) {
	rule := AmountGreaterThan(decimal.NewFromInt(100))
	assert.True(t, rule.Match(record(100.01)))
	assert.False(t, rule.Match(record(100)))
	assert.False(t, rule.Match(record(-5)))
}

func TestAmountLessThan(t *testing.T) {
	rule := AmountLessThan(decimal.Zero)
	assert.True(t, rule.Match(record(-0.01)))
	assert.False(t, rule.Match(record(0)))
}

func TestZeroValueAmountRuleNeverMatches(t *testing.T) {
	var rule AmountRule
	assert.False(t, rule.Match(record(0)))
	assert.False(t, rule.Match(record(123.45)))
}
