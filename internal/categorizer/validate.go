package categorizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

// NameSeparator is reserved by the flat-file format and may not appear in a
// category name.
const NameSeparator = ":"

// Prompt keywords the interactive collaborator reserves for itself. A category
// may not shadow them.
var reservedKeywords = map[string]struct{}{
	"NEW":  {},
	"SKIP": {},
	"HELP": {},
}

// Validation failures. The prompt collaborator surfaces these as re-promptable
// rejections; they are never fatal.
var (
	ErrBlankName     = errors.New("category name must not be blank")
	ErrNameSeparator = fmt.Errorf("category name must not contain %q", NameSeparator)
	ErrReservedName  = errors.New("category name collides with a reserved prompt keyword")
)

// ValidateName checks a proposed category name before it is used to create a
// category. The reserved categories UNKNOWN and TRANSFER always pass.
func ValidateName(name string) error {
	canonical := models.CanonicalizeName(name)
	if canonical == "" {
		return ErrBlankName
	}
	if strings.Contains(canonical, NameSeparator) {
		return ErrNameSeparator
	}
	if canonical == models.CategoryUnknown || canonical == models.CategoryTransfer {
		return nil
	}
	if _, ok := reservedKeywords[canonical]; ok {
		return ErrReservedName
	}
	return nil
}
