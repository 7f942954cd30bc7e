package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "business-days-api/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response
// consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidParameters):
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidParameters, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeServiceUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, apperrors.CodeServiceUnavailable,
			"Unable to fetch holiday data. Please try again later.", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeInternalServerError,
			"an unexpected error occurred while calculating business days", err)
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
