package http

import (
	"errors"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"catalog-service/internal/item"
)

var registerOnce sync.Once

// registerValidators teaches gin's validator about blank strings and prices.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		v.RegisterStructValidation(validatePrice, createReq{}, updateReq{})
	})
}

// validatePrice checks the price with decimal arithmetic. Float comparisons
// lose tiny or huge values, so tag rules like gte are not used here.
func validatePrice(sl validator.StructLevel) {
	var price *decimal.Decimal
	switch r := sl.Current().Interface().(type) {
	case createReq:
		price = r.Price
	case updateReq:
		price = r.Price
	}
	if price == nil {
		return
	}

	err := item.ValidatePrice(*price)
	switch {
	case err == nil:
	case errors.Is(err, item.ErrNegativePrice):
		sl.ReportError(price, "Price", "Price", "nonnegative", "")
	case errors.Is(err, item.ErrPriceScale):
		sl.ReportError(price, "Price", "Price", "scale", strconv.Itoa(item.PriceScale))
	case errors.Is(err, item.ErrPriceTooLarge):
		sl.ReportError(price, "Price", "Price", "lt", item.MaxPrice.String())
	}
}
