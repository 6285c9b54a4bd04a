// Package feed reads raw statement records from a CSV interchange file. The
// real statement parser is an external collaborator; this package only adapts
// its output into RawRecord tuples for the engine.
package feed

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/MusikPolice/ofxcat-sub001/internal/logging"
	"github.com/MusikPolice/ofxcat-sub001/internal/models"
)

// row is a single CSV line of the interchange format. String fields
// throughout; conversion happens in toRecord.
type row struct {
	Type          string `csv:"Type"`
	Date          string `csv:"Date"`
	Amount        string `csv:"Amount"`
	Name          string `csv:"Name"`
	Memo          string `csv:"Memo"`
	FitID         string `csv:"FitId"`
	InstitutionID string `csv:"InstitutionId"`
	AccountID     string `csv:"AccountId"`
	Balance       string `csv:"Balance"`
}

var dateFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"2006-01-02T15:04:05Z",
}

func parseDate(value string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

func (r row) toRecord() (models.RawRecord, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return models.RawRecord{}, err
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.RawRecord{}, fmt.Errorf("parsing amount %q: %w", r.Amount, err)
	}
	balance := decimal.Zero
	if r.Balance != "" {
		balance, err = decimal.NewFromString(r.Balance)
		if err != nil {
			return models.RawRecord{}, fmt.Errorf("parsing balance %q: %w", r.Balance, err)
		}
	}
	return models.RawRecord{
		Type:          r.Type,
		Date:          date,
		Amount:        amount,
		Name:          r.Name,
		Memo:          r.Memo,
		FitID:         r.FitID,
		InstitutionID: r.InstitutionID,
		AccountID:     r.AccountID,
		Balance:       balance,
	}, nil
}

// Read parses raw statement records from r. Rows that cannot be converted are
// skipped with a warning rather than failing the whole feed.
func Read(r io.Reader, logger logging.Logger) ([]models.RawRecord, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var rows []*row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading statement records: %w", err)
	}

	records := make([]models.RawRecord, 0, len(rows))
	for _, line := range rows {
		if line.Date == "" {
			continue
		}
		record, err := line.toRecord()
		if err != nil {
			logger.WithError(err).Warn("skipping malformed statement record")
			continue
		}
		records = append(records, record)
	}
	logger.Info("read statement records",
		logging.Field{Key: "count", Value: len(records)})
	return records, nil
}
