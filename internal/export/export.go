// Package export writes categorized transactions to CSV for downstream
// reporting tools.
package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

// csvRow is the flattened CSV representation of a categorized transaction.
type csvRow struct {
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Balance     string `csv:"Balance"`
	Account     string `csv:"Account"`
	Category    string `csv:"Category"`
}

// Write renders the categorized transactions as CSV, preserving input order.
func Write(w io.Writer, transactions []models.CategorizedTransaction) error {
	rows := make([]*csvRow, 0, len(transactions))
	for _, ct := range transactions {
		categoryName := models.CategoryUnknown
		if ct.Category != nil {
			categoryName = ct.Category.Name
		}
		rows = append(rows, &csvRow{
			Date:        ct.Transaction.Date.Format("2006-01-02"),
			Type:        string(ct.Transaction.Type),
			Description: ct.Transaction.Description,
			Amount:      ct.Transaction.Amount.StringFixed(2),
			Balance:     ct.Transaction.Balance.StringFixed(2),
			Account:     ct.Transaction.AccountID,
			Category:    categoryName,
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing categorized transactions: %w", err)
	}
	return nil
}
