// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction by the institution's type code.
type TransactionType string

// Transaction types recognized by the cleaning layer. Raw codes that do not
// map to one of these are classified as TypeOther rather than rejected.
const (
	TypeCredit           TransactionType = "CREDIT"
	TypeDebit            TransactionType = "DEBIT"
	TypeInterest         TransactionType = "INT"
	TypeDividend         TransactionType = "DIV"
	TypeFee              TransactionType = "FEE"
	TypeServiceCharge    TransactionType = "SRVCHG"
	TypeDeposit          TransactionType = "DEP"
	TypeATM              TransactionType = "ATM"
	TypePOS              TransactionType = "POS"
	TypeTransfer         TransactionType = "XFER"
	TypeCheck            TransactionType = "CHECK"
	TypePayment          TransactionType = "PAYMENT"
	TypeCash             TransactionType = "CASH"
	TypeDirectDeposit    TransactionType = "DIRECTDEP"
	TypeDirectDebit      TransactionType = "DIRECTDEBIT"
	TypeRepeatingPayment TransactionType = "REPEATPMT"
	TypeOther            TransactionType = "OTHER"
)

var knownTypes = map[TransactionType]struct{}{
	TypeCredit: {}, TypeDebit: {}, TypeInterest: {}, TypeDividend: {},
	TypeFee: {}, TypeServiceCharge: {}, TypeDeposit: {}, TypeATM: {},
	TypePOS: {}, TypeTransfer: {}, TypeCheck: {}, TypePayment: {},
	TypeCash: {}, TypeDirectDeposit: {}, TypeDirectDebit: {},
	TypeRepeatingPayment: {}, TypeOther: {},
}

// ParseTransactionType maps a raw statement type code to a TransactionType.
// Unrecognized codes map to TypeOther, never an error.
func ParseTransactionType(code string) TransactionType {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := knownTypes[t]; ok {
		return t
	}
	return TypeOther
}

// RawRecord is a single statement entry as produced by an external statement
// parser. The engine treats the parser as an opaque producer of these tuples.
type RawRecord struct {
	Type          string          `csv:"Type"`
	Date          time.Time       `csv:"-"`
	Amount        decimal.Decimal `csv:"Amount"`
	Name          string          `csv:"Name"`
	Memo          string          `csv:"Memo"`
	FitID         string          `csv:"FitId"`
	InstitutionID string          `csv:"InstitutionId"`
	AccountID     string          `csv:"AccountId"`
	Balance       decimal.Decimal `csv:"Balance"`
}

// Transaction is the canonical, post-cleaning form of a statement entry.
// Amounts are signed; negative means money leaving the account.
type Transaction struct {
	Type        TransactionType
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	AccountID   string
	Balance     decimal.Decimal
	FitID       string
}

// Equal reports structural equality over all fields except FitID, which is an
// external identifier used only for idempotent re-import.
func (t Transaction) Equal(other Transaction) bool {
	return t.Type == other.Type &&
		t.Date.Equal(other.Date) &&
		t.Amount.Equal(other.Amount) &&
		t.Description == other.Description &&
		t.AccountID == other.AccountID &&
		t.Balance.Equal(other.Balance)
}

// IsOutflow reports whether the transaction moves money out of the account.
func (t Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// WithDescription returns a copy of the transaction with the description replaced.
func (t Transaction) WithDescription(description string) Transaction {
	t.Description = description
	return t
}
