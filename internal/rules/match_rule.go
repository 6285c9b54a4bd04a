package rules

import (
	"errors"
	"regexp"
	"strings"

	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

// ErrNoMatchers is returned when a rule is built without any matcher. A rule
// that should match every record must say so explicitly via MatchAll.
var ErrNoMatchers = errors.New("match rule requires at least one matcher")

// Transform produces a partially-built canonical transaction from a raw record.
// It is only invoked after the owning rule's Matches returns true.
type Transform func(models.RawRecord) models.Transaction

// MatchRule is an AND-combination of independently optional matchers: a
// transaction type, an AmountRule, and regex patterns against the normalized
// name and memo fields. Rule sets are evaluated in declared slice order so
// matching stays deterministic.
type MatchRule struct {
	txType      models.TransactionType
	hasType     bool
	amount      AmountRule
	namePattern *regexp.Regexp
	memoPattern *regexp.Regexp
	matchAll    bool
	transform   Transform
}

// MatchRuleOption configures a single matcher on a MatchRule.
type MatchRuleOption func(*MatchRule)

// WithType matches records whose classified transaction type equals t.
func WithType(t models.TransactionType) MatchRuleOption {
	return func(r *MatchRule) {
		r.txType = t
		r.hasType = true
	}
}

// WithAmount matches records satisfying the given AmountRule.
func WithAmount(a AmountRule) MatchRuleOption {
	return func(r *MatchRule) { r.amount = a }
}

// WithNamePattern matches records whose normalized name field matches pattern.
func WithNamePattern(pattern *regexp.Regexp) MatchRuleOption {
	return func(r *MatchRule) { r.namePattern = pattern }
}

// WithMemoPattern matches records whose normalized memo field matches pattern.
func WithMemoPattern(pattern *regexp.Regexp) MatchRuleOption {
	return func(r *MatchRule) { r.memoPattern = pattern }
}

// NewMatchRule builds a rule from the given matchers. At least one matcher is
// required; an empty rule is almost always a builder mistake.
func NewMatchRule(transform Transform, opts ...MatchRuleOption) (MatchRule, error) {
	r := MatchRule{transform: transform}
	for _, opt := range opts {
		opt(&r)
	}
	if !r.hasType && !r.amount.configured() && r.namePattern == nil && r.memoPattern == nil {
		return MatchRule{}, ErrNoMatchers
	}
	return r, nil
}

// MatchAll builds a rule that matches every record. Used for an institution's
// terminal fallback rule.
func MatchAll(transform Transform) MatchRule {
	return MatchRule{transform: transform, matchAll: true}
}

// Matches reports whether every configured matcher accepts the record. It is a
// pure predicate with no side effects.
func (r MatchRule) Matches(record models.RawRecord) bool {
	if r.matchAll {
		return true
	}
	if r.hasType && models.ParseTransactionType(record.Type) != r.txType {
		return false
	}
	if r.amount.configured() && !r.amount.Match(record) {
		return false
	}
	if r.namePattern != nil && !r.namePattern.MatchString(Normalize(record.Name)) {
		return false
	}
	if r.memoPattern != nil && !r.memoPattern.MatchString(Normalize(record.Memo)) {
		return false
	}
	return true
}

// Apply runs the rule's transform. Callers must only invoke it after Matches
// has returned true.
func (r MatchRule) Apply(record models.RawRecord) models.Transaction {
	return r.transform(record)
}

// Normalize trims and upper-cases a raw field for pattern matching.
func Normalize(field string) string {
	return strings.ToUpper(strings.TrimSpace(field))
}
