package dto

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/VENUCODE/paint-ai/internal/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type HttpError struct {
	StatusCode int
	Body       ErrorResponse
}

func (e *HttpError) Error() string {
	return e.Body.Error
}

// MapErr turns a failure of the image pipeline into the route's response.
// Upstream failures keep the remote status and payload; everything else is
// reported with the error text as details.
func MapErr(err error, message string) HttpError {
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		return HttpError{
			StatusCode: upErr.StatusCode,
			Body:       ErrorResponse{Error: message, Details: upErr.Details()},
		}
	}

	var de *domain.DomainError
	if errors.As(err, &de) {
		return MapDomainErrToHttpErr(de, message)
	}

	return HttpError{
		StatusCode: http.StatusInternalServerError,
		Body:       ErrorResponse{Error: message, Details: err.Error()},
	}
}

func MapDomainErrToHttpErr(err *domain.DomainError, message string) HttpError {
	details := err.Message
	if err.Cause != nil {
		details = fmt.Sprintf("%s: %v", err.Message, err.Cause)
	}

	switch err.Code {
	case domain.ErrCodeUnauthorized:
		return HttpError{
			StatusCode: http.StatusUnauthorized,
			Body:       ErrorResponse{Error: message, Details: details},
		}
	default:
		return HttpError{
			StatusCode: http.StatusInternalServerError,
			Body:       ErrorResponse{Error: message, Details: details},
		}
	}

}

// BadRequest builds a 400 with no details, used for input rejected before
// the pipeline runs.
func BadRequest(message string) HttpError {
	return HttpError{StatusCode: http.StatusBadRequest, Body: ErrorResponse{Error: message}}
}
