package interfaces

import (
	"errors"
	"log"
	"net/http"

	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

func statusForError(err error) int {
	switch {
	case budgetErrors.IsNotFoundError(err):
		return http.StatusNotFound
	case budgetErrors.IsBudgetExceededError(err), budgetErrors.IsLimitExceededError(err):
		return http.StatusConflict
	case budgetErrors.IsValidationError(err),
		budgetErrors.IsInvalidInputError(err),
		budgetErrors.IsInvalidTierError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError translates service errors into HTTP responses. Business
// rejections keep their numeric context in a data object so the client can
// render a specific message instead of a generic failure.
func respondServiceError(
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
	w http.ResponseWriter,
	err error,
	fallback string,
) {
	var budgetExceeded *budgetErrors.BudgetExceededError
	if errors.As(err, &budgetExceeded) {
		respondJSON(w, http.StatusConflict, map[string]interface{}{
			"status":  "error",
			"message": budgetExceeded.Error(),
			"code":    http.StatusConflict,
			"data": map[string]interface{}{
				"attempted": budgetExceeded.Attempted,
				"ceiling":   budgetExceeded.Ceiling,
				"priority":  budgetExceeded.Tier,
				"label":     budgetExceeded.Label,
			},
		})
		return
	}

	var limitExceeded *budgetErrors.LimitExceededError
	if errors.As(err, &limitExceeded) {
		respondJSON(w, http.StatusConflict, map[string]interface{}{
			"status":  "error",
			"message": limitExceeded.Error(),
			"code":    http.StatusConflict,
			"data": map[string]interface{}{
				"requested": limitExceeded.Requested,
				"limit":     limitExceeded.Limit,
				"category":  limitExceeded.CategoryName,
			},
		})
		return
	}

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Println("Unexpected service error:", err)
		respondError(w, status, fallback)
		return
	}
	respondError(w, status, err.Error())
}
