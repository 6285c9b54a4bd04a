package models

import "strings"

// Reserved category names. Transactions the user cannot or need not classify
// by hand land in one of these.
const (
	CategoryUnknown  = "UNKNOWN"
	CategoryTransfer = "TRANSFER"
)

// Category is a canonical spending category. ID is zero until the category has
// been persisted by the relational adapter; the flat-file adapter never assigns
// one. Name is always stored canonicalized.
type Category struct {
	ID   uint   `gorm:"primaryKey" yaml:"-"`
	Name string `gorm:"uniqueIndex;not null" yaml:"name"`
}

// NewCategory returns a Category with the given name canonicalized.
func NewCategory(name string) *Category {
	return &Category{Name: CanonicalizeName(name)}
}

// CanonicalizeName trims and upper-cases a category name. Two categories whose
// canonicalized names are equal are the same logical entity.
func CanonicalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// IsReserved reports whether the category is one of the reserved names.
func (c *Category) IsReserved() bool {
	return c.Name == CategoryUnknown || c.Name == CategoryTransfer
}

// DescriptionCategory is the persisted association between a canonical
// transaction description and its category. Rows are never mutated in place;
// re-categorizing a description writes a fresh association.
type DescriptionCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"not null;index"`
	CategoryID  uint   `gorm:"not null"`
	Category    Category
}

// CategorizedTransaction binds a Transaction to its resolved Category. It is a
// view composed at categorization time; only the description→category
// association behind it is persisted.
type CategorizedTransaction struct {
	Transaction Transaction
	Category    *Category
}
