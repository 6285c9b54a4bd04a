package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain name", "Groceries", nil},
		{"padded name", "  rent  ", nil},
		{"blank", "   ", ErrBlankName},
		{"empty", "", ErrBlankName},
		{"separator", "home:utilities", ErrNameSeparator},
		{"reserved keyword", "new", ErrReservedName},
		{"reserved keyword upper", "SKIP", ErrReservedName},
		{"reserved category passes", "unknown", nil},
		{"transfer passes", "Transfer", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
