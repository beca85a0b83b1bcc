package errs

import (
	"errors"
	"fmt"
)

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ValidationError rejects a submission before anything leaves the client.
type ValidationError struct {
	ErrorMessage
}

// APIError is a non-2xx reply that carried no error field for the user.
type APIError struct {
	ErrorMessage
	Status     int
	StatusText string
}

// DecodeError means the reply body was not the JSON we expect.
type DecodeError struct {
	ErrorMessage
	Err error
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError means the request never produced a response.
type TransportError struct {
	ErrorMessage
	Err error
}

func (e *TransportError) Unwrap() error { return e.Err }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAPIError(status int, statusText string) *APIError {
	return &APIError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("API error: %s", statusText)},
		Status:       status,
		StatusText:   statusText,
	}
}

func NewDecodeError(err error) *DecodeError {
	return &DecodeError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("decode response: %v", err)},
		Err:          err,
	}
}

func NewTransportError(err error) *TransportError {
	return &TransportError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("send request: %v", err)},
		Err:          err,
	}
}

// IsUnreported reports whether err belongs to the class of failures the user
// only sees as the generic message.
func IsUnreported(err error) bool {
	var apiErr *APIError
	var decodeErr *DecodeError
	var transportErr *TransportError
	return errors.As(err, &apiErr) || errors.As(err, &decodeErr) || errors.As(err, &transportErr)
}
