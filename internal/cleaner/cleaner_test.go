package cleaner

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

func TestDefaultCleanerNormalizesAndJoins(t *testing.T) {
	c := NewDefaultCleaner()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tx := c.Clean(models.RawRecord{
		Type:      "POS",
		Date:      date,
		Amount:    decimal.NewFromFloat(-9.99),
		Name:      "  tim hortons ",
		Memo:      " store #123 ",
		AccountID: "chequing",
		FitID:     "fit-9",
	})

	assert.Equal(t, "TIM HORTONS STORE #123", tx.Description)
	assert.Equal(t, models.TypePOS, tx.Type)
	assert.Equal(t, date, tx.Date)
	assert.Equal(t, "chequing", tx.AccountID)
	assert.Equal(t, "fit-9", tx.FitID)
	assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(-9.99)))
}

func TestDefaultCleanerSingleFieldAndEmpty(t *testing.T) {
	c := NewDefaultCleaner()

	onlyName := c.Clean(models.RawRecord{Name: "payroll deposit"})
	assert.Equal(t, "PAYROLL DEPOSIT", onlyName.Description)

	onlyMemo := c.Clean(models.RawRecord{Memo: "payroll deposit"})
	assert.Equal(t, "PAYROLL DEPOSIT", onlyMemo.Description)

	empty := c.Clean(models.RawRecord{Name: "  ", Memo: ""})
	assert.Equal(t, "", empty.Description, "both fields blank yields an empty description")
}

func TestDefaultCleanerUnknownTypeCode(t *testing.T) {
	c := NewDefaultCleaner()
	tx := c.Clean(models.RawRecord{Type: "BOGUS", Name: "x"})
	assert.Equal(t, models.TypeOther, tx.Type)
}
