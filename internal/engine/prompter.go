package engine

import (
	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

// AutoPrompter resolves categorization without user interaction: it accepts
// the top-ranked fuzzy candidate when one exists and files everything else
// under the reserved UNKNOWN category. Used by non-interactive commands.
type AutoPrompter struct{}

// Choose implements Prompter.
func (AutoPrompter) Choose(_ models.Transaction, candidates []*models.Category) (*models.Category, error) {
	if len(candidates) > 0 {
		return candidates[0], nil
	}
	return nil, nil
}

// NewCategory implements Prompter.
func (AutoPrompter) NewCategory(models.Transaction) (string, error) {
	return models.CategoryUnknown, nil
}
