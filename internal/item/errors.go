package item

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrDuplicateID  = errors.New("item id already exists")

	ErrNegativePrice = errors.New("price must not be negative")
	ErrPriceScale    = errors.New("price must have at most 2 decimal places")
	ErrPriceTooLarge = errors.New("price must be less than 10000000000")
)
