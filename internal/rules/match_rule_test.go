package rules

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

func passthrough(record models.RawRecord) models.Transaction {
	return models.Transaction{
		Type:   models.ParseTransactionType(record.Type),
		Amount: record.Amount,
	}
}

func TestNewMatchRuleRequiresAMatcher(t *testing.T) {
	_, err := NewMatchRule(passthrough)
	assert.ErrorIs(t, err, ErrNoMatchers)
}

func TestMatchAllMatchesEverything(t *testing.T) {
	rule := MatchAll(passthrough)
	assert.True(t, rule.Matches(models.RawRecord{}))
	assert.True(t, rule.Matches(models.RawRecord{Type: "POS", Name: "anything"}))
}

func TestMatchRuleTypeMatcher(t *testing.T) {
	rule, err := NewMatchRule(passthrough, WithType(models.TypePOS))
	require.NoError(t, err)

	assert.True(t, rule.Matches(models.RawRecord{Type: "POS"}))
	assert.True(t, rule.Matches(models.RawRecord{Type: "pos"}))
	assert.False(t, rule.Matches(models.RawRecord{Type: "ATM"}))
}

func TestMatchRuleNamePatternIsNormalizedFirst(t *testing.T) {
	rule, err := NewMatchRule(passthrough,
		WithNamePattern(regexp.MustCompile(`^IDP PURCHASE`)))
	require.NoError(t, err)

	assert.True(t, rule.Matches(models.RawRecord{Name: "  idp purchase - 7135 "}))
	assert.False(t, rule.Matches(models.RawRecord{Name: "PAYROLL DEPOSIT"}))
}

func TestMatchRuleCombinesMatchersWithAND(t *testing.T) {
	rule, err := NewMatchRule(passthrough,
		WithType(models.TypeDebit),
		WithAmount(AmountLessThan(decimal.Zero)),
		WithMemoPattern(regexp.MustCompile(`COFFEE`)))
	require.NoError(t, err)

	matching := models.RawRecord{Type: "DEBIT", Amount: decimal.NewFromInt(-4), Memo: "morning coffee"}
	assert.True(t, rule.Matches(matching))

	wrongAmount := matching
	wrongAmount.Amount = decimal.NewFromInt(4)
	assert.False(t, rule.Matches(wrongAmount))

	wrongMemo := matching
	wrongMemo.Memo = "tea"
	assert.False(t, rule.Matches(wrongMemo))
}

func TestApplyRunsTransform(t *testing.T) {
	rule := MatchAll(func(record models.RawRecord) models.Transaction {
		return models.Transaction{Type: models.TypeTransfer, Amount: record.Amount}
	})
	tx := rule.Apply(models.RawRecord{Amount: decimal.NewFromInt(7)})
	assert.Equal(t, models.TypeTransfer, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(7)))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "IDP PURCHASE - 7135", Normalize("  idp purchase - 7135 "))
	assert.Equal(t, "", Normalize("   "))
}
