package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN         = "unknown"
	TYPE_NOT_IMPLEMENTED = "not-implemented"
	TYPE_JSON_PARSE      = "json"
	TYPE_REQUEST_PREP    = "request-prep"
	TYPE_IO              = "io"
	TYPE_HTTP_STATUS     = "not-ok-http-status"
	TYPE_INVALID_DATA    = "invalid-data"
	TYPE_CANCELLED       = "cancelled"

	// MSG_DECODE is the message attached to every response
	// the store returned but the client could not decode.
	MSG_DECODE = "unable to decode response"
)

// ApiError is the single error type produced by the store client.
// Stage and Type locate where in the request lifecycle the failure
// happened; ErrorMessage and ErrorCode carry the store's error
// envelope when the server returned one.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// ErrorMessage and ErrorCode are decoded from the store's
	// {errorMessage, errorCode} envelope on non-2xx responses.
	ErrorMessage string
	ErrorCode    int
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.ErrorMessage != "" {
		err = e.ErrorMessage
	} else if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to the store failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Cancelled reports whether this error is the explicit result of a
// cancellation token, as opposed to a failed exchange.
func (e *ApiError) Cancelled() bool {
	return e.Type == TYPE_CANCELLED
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&store_errors.ApiError{}), &store_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}
