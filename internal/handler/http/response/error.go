package response

import (
	"errors"
	"net/http"

	"github.com/nurihr/allowance-backend-go/internal/domain/allowance"
	"github.com/nurihr/allowance-backend-go/internal/domain/employee"
	"github.com/nurihr/allowance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, allowance.ErrPayoutNotFound):
		NotFound(w, "Payout record not found")
	case errors.Is(err, allowance.ErrPayoutExists):
		Conflict(w, "Payout already recorded for this period")
	case errors.Is(err, allowance.ErrInvalidPeriod):
		BadRequest(w, "Invalid calculation period", nil)
	case errors.Is(err, allowance.ErrRateLinkMissing):
		UnprocessableEntity(w, "Eligibility window has no rate linked")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
