package item

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// --- Item Domain Model ---

// Item is a catalog entry. ID and Created are assigned once on creation.
type Item struct {
	ID      uuid.UUID
	Name    string
	Price   decimal.Decimal
	Created time.Time
}

// IsZero reports whether i is the "not found" value returned by repositories.
func (i Item) IsZero() bool {
	return i.ID == uuid.Nil
}

// WithDetails returns a copy of i with name and price replaced.
func (i Item) WithDetails(name string, price decimal.Decimal) Item {
	i.Name = name
	i.Price = price
	return i
}

// --- Price rules ---

// PriceScale is the number of decimal places a price may carry.
const PriceScale = 2

// MaxPrice is the exclusive upper bound on a price. Together with PriceScale
// it keeps every value exact in NUMERIC(12,2), TEXT and Decimal128 columns.
var MaxPrice = decimal.New(1, 10)

// ValidatePrice reports why p cannot be stored unchanged, or nil.
func ValidatePrice(p decimal.Decimal) error {
	switch {
	case p.IsNegative():
		return ErrNegativePrice
	case !p.Equal(p.Truncate(PriceScale)):
		return ErrPriceScale
	case p.GreaterThanOrEqual(MaxPrice):
		return ErrPriceTooLarge
	}
	return nil
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name  string
	Price decimal.Decimal
}

type ListItemsInput struct {
	NameToMatch string
}

type UpdateItemInput struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}
