package v1

import (
	"errors"
	"net/http"

	"github.com/simplebudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Report errors
var (
	errYearNotSetInQuery  = errors.New("the year query parameter must be set")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errUserNotSetInQuery  = errors.New("the user query parameter must be set")
	errMonthOutOfRange    = errors.New("the month must be between 1 and 12")
)
