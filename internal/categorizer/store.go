// Package categorizer owns the learned description→category knowledge base:
// exact and fuzzy lookup of previously categorized descriptions, category
// identity deduplication, and persistence through a pluggable adapter.
package categorizer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/MusikPolice/ofxcat-sub001/internal/logging"
	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

// DefaultDescriptionThreshold is the minimum similarity ratio (0–100 scale) a
// description key must score to count as a fuzzy candidate.
const DefaultDescriptionThreshold = 80

// DefaultTokenOverlapThreshold is the minimum fraction of query tokens that
// must appear in a key for the coarse token-overlap fallback to accept it.
const DefaultTokenOverlapThreshold = 0.6

// DefaultFuzzyLimit bounds the candidate list offered to the prompt layer.
const DefaultFuzzyLimit = 5

// Adapter persists the store's description index. Implementations own the
// durable representation; the store owns the in-memory state.
type Adapter interface {
	// Load restores the description→category-name mapping. A missing backing
	// store yields an empty map, not an error.
	Load() (map[string]string, error)

	// Save writes the full description→category-name mapping.
	Save(index map[string]string) error
}

// CategoryStore holds the known categories and the description index for the
// lifetime of one run. It is not safe for concurrent mutation; the
// categorization loop is single-threaded by design.
type CategoryStore struct {
	categories map[string]*models.Category // canonical name → singleton
	index      map[string]*models.Category // canonical description → category
	adapter    Adapter
	logger     logging.Logger

	descriptionThreshold  int
	tokenOverlapThreshold float64
}

// StoreOption configures a CategoryStore.
type StoreOption func(*CategoryStore)

// WithDescriptionThreshold overrides the fine-grained similarity threshold.
func WithDescriptionThreshold(threshold int) StoreOption {
	return func(s *CategoryStore) { s.descriptionThreshold = threshold }
}

// WithTokenOverlapThreshold overrides the coarse token-overlap threshold.
func WithTokenOverlapThreshold(threshold float64) StoreOption {
	return func(s *CategoryStore) { s.tokenOverlapThreshold = threshold }
}

// NewCategoryStore creates an empty store backed by the given adapter.
func NewCategoryStore(adapter Adapter, logger logging.Logger, opts ...StoreOption) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	s := &CategoryStore{
		categories:            make(map[string]*models.Category),
		index:                 make(map[string]*models.Category),
		adapter:               adapter,
		logger:                logger,
		descriptionThreshold:  DefaultDescriptionThreshold,
		tokenOverlapThreshold: DefaultTokenOverlapThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put records that the transaction's description belongs to the given
// category. The category name is canonicalized and deduplicated: if a category
// with the same canonical name already exists, the association binds to that
// singleton instead of the supplied instance. Any prior association for the
// exact description is overwritten. This is the sole category-creation path.
func (s *CategoryStore) Put(tx models.Transaction, category *models.Category) models.CategorizedTransaction {
	canonical := s.intern(category)
	s.index[models.CanonicalizeName(tx.Description)] = canonical
	s.logger.Debug("learned association",
		logging.Field{Key: "description", Value: tx.Description},
		logging.Field{Key: "category", Value: canonical.Name})
	return models.CategorizedTransaction{Transaction: tx, Category: canonical}
}

// intern resolves a category to its singleton instance, registering it on
// first sight.
func (s *CategoryStore) intern(category *models.Category) *models.Category {
	name := models.CanonicalizeName(category.Name)
	if existing, ok := s.categories[name]; ok {
		return existing
	}
	canonical := &models.Category{ID: category.ID, Name: name}
	s.categories[name] = canonical
	return canonical
}

// GetExact looks up the transaction's description case-insensitively against
// the index. Keys are stored canonicalized, so at most one should match; if
// canonicalization was ever violated the first key in sorted order wins rather
// than failing. A miss returns (nil, false), not an error.
func (s *CategoryStore) GetExact(tx models.Transaction) (*models.Category, bool) {
	key := models.CanonicalizeName(tx.Description)
	if key == "" {
		return nil, false
	}
	if category, ok := s.index[key]; ok {
		return category, true
	}
	var matches []string
	for k := range s.index {
		if strings.EqualFold(k, key) {
			matches = append(matches, k)
		}
	}
	if len(matches) == 0 {
		return nil, false
	}
	sort.Strings(matches)
	return s.index[matches[0]], true
}

// scoredKey pairs an index key with its similarity score for ranking.
type scoredKey struct {
	key   string
	score int
}

// GetFuzzy returns up to limit candidate categories for the transaction's
// description, ranked by descending similarity. Ties break lexicographically
// on the index key and categories are deduplicated in first-appearance order.
// When the edit-distance pass yields nothing, a coarser token-overlap pass
// runs as a fallback. The store is never mutated.
func (s *CategoryStore) GetFuzzy(tx models.Transaction, limit int) []*models.Category {
	query := models.CanonicalizeName(tx.Description)
	if query == "" || limit <= 0 {
		return nil
	}

	candidates := s.scoreByRatio(query)
	if len(candidates) == 0 {
		candidates = s.scoreByTokenOverlap(query)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].key < candidates[j].key
	})

	seen := make(map[string]struct{})
	results := make([]*models.Category, 0, limit)
	for _, c := range candidates {
		category := s.index[c.key]
		if _, dup := seen[category.Name]; dup {
			continue
		}
		seen[category.Name] = struct{}{}
		results = append(results, category)
		if len(results) == limit {
			break
		}
	}
	return results
}

func (s *CategoryStore) scoreByRatio(query string) []scoredKey {
	var candidates []scoredKey
	for key := range s.index {
		if score := ratio(query, key); score >= s.descriptionThreshold {
			candidates = append(candidates, scoredKey{key: key, score: score})
		}
	}
	return candidates
}

func (s *CategoryStore) scoreByTokenOverlap(query string) []scoredKey {
	var candidates []scoredKey
	for key := range s.index {
		if overlap := tokenOverlap(query, key); overlap >= s.tokenOverlapThreshold {
			candidates = append(candidates, scoredKey{key: key, score: int(math.Round(100 * overlap))})
		}
	}
	return candidates
}

// GetNames returns the known category names in ascending order.
func (s *CategoryStore) GetNames() []string {
	names := make([]string, 0, len(s.categories))
	for name := range s.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of learned description associations.
func (s *CategoryStore) Size() int {
	return len(s.index)
}

// Load replaces the in-memory state with the adapter's persisted state.
func (s *CategoryStore) Load() error {
	persisted, err := s.adapter.Load()
	if err != nil {
		return fmt.Errorf("loading categorization state: %w", err)
	}
	s.categories = make(map[string]*models.Category)
	s.index = make(map[string]*models.Category)
	for description, categoryName := range persisted {
		s.index[models.CanonicalizeName(description)] = s.intern(models.NewCategory(categoryName))
	}
	s.logger.Debug("loaded categorization state",
		logging.Field{Key: "associations", Value: len(s.index)},
		logging.Field{Key: "categories", Value: len(s.categories)})
	return nil
}

// Save writes the full in-memory state through the adapter.
func (s *CategoryStore) Save() error {
	persisted := make(map[string]string, len(s.index))
	for description, category := range s.index {
		persisted[description] = category.Name
	}
	if err := s.adapter.Save(persisted); err != nil {
		return fmt.Errorf("saving categorization state: %w", err)
	}
	return nil
}
