// Package engine drives the categorization loop: raw record in, categorized
// transaction out, with the interactive prompt layer supplied as a
// collaborator.
package engine

import (
	"fmt"

	"github.com/MusikPolice/ofxcat-sub001/internal/categorizer"
	"github.com/MusikPolice/ofxcat-sub001/internal/cleaner"
	"github.com/MusikPolice/ofxcat-sub001/internal/logging"
	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

// Prompter is the external collaborator that resolves ambiguity. It must
// always come back with an answer; the engine never leaves a transaction
// uncategorized on its own initiative.
type Prompter interface {
	// Choose presents the ranked candidates and returns the user's pick, or
	// nil to indicate the user wants to create a new category instead.
	Choose(tx models.Transaction, candidates []*models.Category) (*models.Category, error)

	// NewCategory asks for a fresh category name for the transaction.
	NewCategory(tx models.Transaction) (string, error)
}

// Engine wires the cleaner registry, the categorization store, and the prompt
// collaborator into the single-threaded categorization loop. Transactions are
// processed one at a time because categorization may block on the prompt.
type Engine struct {
	registry *cleaner.Registry
	store    *categorizer.CategoryStore
	prompter Prompter
	logger   logging.Logger
	limit    int
}

// New creates an Engine. limit bounds the number of fuzzy candidates offered
// to the prompt collaborator.
func New(registry *cleaner.Registry, store *categorizer.CategoryStore, prompter Prompter, logger logging.Logger, limit int) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if limit < 1 {
		limit = categorizer.DefaultFuzzyLimit
	}
	return &Engine{
		registry: registry,
		store:    store,
		prompter: prompter,
		logger:   logger,
		limit:    limit,
	}
}

// Clean selects the institution's cleaner and produces the canonical
// transaction for a raw record.
func (e *Engine) Clean(record models.RawRecord) models.Transaction {
	return e.registry.Get(record.InstitutionID).Clean(record)
}

// Categorize runs one raw record through the full lifecycle: clean, exact
// match, fuzzy match, prompt, learn.
func (e *Engine) Categorize(record models.RawRecord) (models.CategorizedTransaction, error) {
	tx := e.Clean(record)

	// Cleaners that positively classify a record as a transfer bind it to the
	// reserved TRANSFER category without prompting.
	if tx.Type == models.TypeTransfer {
		return e.store.Put(tx, models.NewCategory(models.CategoryTransfer)), nil
	}

	if category, ok := e.store.GetExact(tx); ok {
		e.logger.Debug("exact match",
			logging.Field{Key: "description", Value: tx.Description},
			logging.Field{Key: "category", Value: category.Name})
		return models.CategorizedTransaction{Transaction: tx, Category: category}, nil
	}

	candidates := e.store.GetFuzzy(tx, e.limit)
	if len(candidates) > 0 {
		chosen, err := e.prompter.Choose(tx, candidates)
		if err != nil {
			return models.CategorizedTransaction{}, fmt.Errorf("prompting for category choice: %w", err)
		}
		if chosen != nil {
			return e.store.Put(tx, chosen), nil
		}
	}

	return e.promptForNewCategory(tx)
}

// promptForNewCategory asks the collaborator to name a category, re-prompting
// on validation failures until an acceptable name arrives.
func (e *Engine) promptForNewCategory(tx models.Transaction) (models.CategorizedTransaction, error) {
	for {
		name, err := e.prompter.NewCategory(tx)
		if err != nil {
			return models.CategorizedTransaction{}, fmt.Errorf("prompting for new category: %w", err)
		}
		if err := categorizer.ValidateName(name); err != nil {
			e.logger.WithError(err).Warn("rejected category name",
				logging.Field{Key: "name", Value: name})
			continue
		}
		return e.store.Put(tx, models.NewCategory(name)), nil
	}
}

// Flush persists the store's learned state.
func (e *Engine) Flush() error {
	return e.store.Save()
}
