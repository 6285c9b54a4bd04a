package feed

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Type,Date,Amount,Name,Memo,FitId,InstitutionId,AccountId,Balance
POS,2024-03-14,-54.20,IDP PURCHASE - 7135,CHEESECAKE FACTORY,fit-1,Royal Bank of Canada,chequing,1200.00
CREDIT,2024-03-15,2000.00,PAYROLL DEPOSIT,,fit-2,Royal Bank of Canada,chequing,3200.00
`

func TestReadParsesRecords(t *testing.T) {
	records, err := Read(strings.NewReader(sampleCSV), nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "POS", first.Type)
	assert.Equal(t, 2024, first.Date.Year())
	assert.True(t, first.Amount.Equal(decimal.NewFromFloat(-54.20)))
	assert.Equal(t, "IDP PURCHASE - 7135", first.Name)
	assert.Equal(t, "CHEESECAKE FACTORY", first.Memo)
	assert.Equal(t, "Royal Bank of Canada", first.InstitutionID)
	assert.True(t, first.Balance.Equal(decimal.NewFromFloat(1200.00)))
}

func TestReadSkipsMalformedRows(t *testing.T) {
	csv := `Type,Date,Amount,Name,Memo,FitId,InstitutionId,AccountId,Balance
POS,not-a-date,-1.00,A,,f1,RBC,acct,
POS,2024-03-14,not-a-number,B,,f2,RBC,acct,
POS,2024-03-14,-2.00,C,,f3,RBC,acct,
`
	records, err := Read(strings.NewReader(csv), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "C", records[0].Name)
}

func TestReadSkipsBlankDates(t *testing.T) {
	csv := `Type,Date,Amount,Name,Memo,FitId,InstitutionId,AccountId,Balance
POS,,-1.00,A,,f1,RBC,acct,
`
	records, err := Read(strings.NewReader(csv), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadRejectsGarbageInput(t *testing.T) {
	_, err := Read(strings.NewReader(""), nil)
	assert.Error(t, err)
}
