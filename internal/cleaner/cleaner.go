// Package cleaner turns raw statement records into canonical transactions.
// Each supported institution gets its own Cleaner; unrecognized institutions
// fall back to the default one.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/MusikPolice/ofxcat-sub001/internal/models"
	"github.com/MusikPolice/ofxcat-sub001/internal/rules"
)

// Cleaner converts a raw statement record into a canonical transaction.
type Cleaner interface {
	Clean(record models.RawRecord) models.Transaction
}

// replaceRule substitutes a fixed canonical string for a field that matches
// its pattern. Several raw spellings of the same thing collapse to one key.
type replaceRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// fieldPipeline is the two-stage per-field cleaning pipeline: discard rules
// run first and drop the field's contribution entirely; replace rules run only
// when no discard rule matched, and the first match wins. Both lists are
// evaluated in declared order so cleaning is deterministic.
type fieldPipeline struct {
	discard []*regexp.Regexp
	replace []replaceRule
}

// apply normalizes the field and runs it through the pipeline. An empty result
// means the field contributes nothing to the description.
func (p fieldPipeline) apply(field string) string {
	normalized := rules.Normalize(field)
	if normalized == "" {
		return ""
	}
	for _, pattern := range p.discard {
		if pattern.MatchString(normalized) {
			return ""
		}
	}
	for _, rule := range p.replace {
		if rule.pattern.MatchString(normalized) {
			return rule.replacement
		}
	}
	return normalized
}

// joinDescription concatenates the surviving name and memo contributions with
// a single space. Both empty yields an empty description, which is a valid but
// unmatchable transaction; the caller must prompt for a category.
func joinDescription(name, memo string) string {
	parts := make([]string, 0, 2)
	if name != "" {
		parts = append(parts, name)
	}
	if memo != "" {
		parts = append(parts, memo)
	}
	return strings.Join(parts, " ")
}

// baseTransaction carries over the fields every cleaner preserves unchanged.
func baseTransaction(record models.RawRecord) models.Transaction {
	return models.Transaction{
		Type:      models.ParseTransactionType(record.Type),
		Date:      record.Date,
		Amount:    record.Amount,
		AccountID: record.AccountID,
		Balance:   record.Balance,
		FitID:     record.FitID,
	}
}

// DefaultCleaner handles institutions without a dedicated cleaner. It trims,
// upper-cases, and joins name and memo; no discard or replace rules run.
type DefaultCleaner struct{}

// NewDefaultCleaner returns the fallback cleaner.
func NewDefaultCleaner() *DefaultCleaner {
	return &DefaultCleaner{}
}

// Clean implements Cleaner.
func (c *DefaultCleaner) Clean(record models.RawRecord) models.Transaction {
	tx := baseTransaction(record)
	tx.Description = joinDescription(rules.Normalize(record.Name), rules.Normalize(record.Memo))
	return tx
}
