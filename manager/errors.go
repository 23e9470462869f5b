package manager

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned for a search with nothing but whitespace.
	ErrEmptyQuery = errors.New("empty search query")
	// ErrNotFound is returned when geocoding yields no results.
	ErrNotFound = errors.New("not found")

	ErrLocationDenied      = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
)

// User facing messages.
const (
	msgEmptyQuery = "Please enter a city name."
	msgNotFound   = "City not found. Please try another city."
)

// NetworkError is a transport failure or a non-success HTTP status.
// Its message is the transport's own description.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a transport error.
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{Message: err.Error(), Err: err}
}

// NewStatusError reports a non-success response, e.g. "Failed to fetch weather data: 503 Service Unavailable".
func NewStatusError(what, status string) *NetworkError {
	return &NetworkError{Message: fmt.Sprintf("%s: %s", what, status)}
}

// Message converts err into the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyQuery):
		return msgEmptyQuery
	case errors.Is(err, ErrNotFound):
		return msgNotFound
	}

	return err.Error()
}
