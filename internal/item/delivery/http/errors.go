package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"catalog-service/internal/item"
	pkgErrors "catalog-service/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid item id")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errValidation  = pkgErrors.NewHTTPError(http.StatusBadRequest, "validation failed")
	errIDConflict  = pkgErrors.NewHTTPError(http.StatusConflict, "item id already exists")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Not-found is handled by the caller since it has no body.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrDuplicateID):
		return errIDConflict
	default:
		// Rendered as a generic 500.
		return err
	}
}

// bindError turns a binding failure into a 400 with per-field messages.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidBody
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[jsonField(fe.Field())] = fieldMessage(fe)
	}
	return errValidation.WithDetails(details)
}

func jsonField(name string) string {
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "nonnegative":
		return "must not be negative"
	case "scale":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
