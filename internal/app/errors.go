package app

import (
	"errors"
	"fmt"
)

// InvalidRequestError is returned when request params are invalid and no request was made.
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var e InvalidRequestError
	return errors.As(err, &e)
}

// TooManyRequestsError is returned when a request couldn't be issued within the client's rate limit.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by exceeding the rate limit
func IsTooManyRequestsError(err error) bool {
	var e TooManyRequestsError
	return errors.As(err, &e)
}

// RemoteRequestError is returned when the analytics backend responds with a non-success status.
type RemoteRequestError struct {
	Path   string
	Status int
}

// Error implements error interface
func (e *RemoteRequestError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("request failed: %d", e.Status)
	}
	return fmt.Sprintf("request %s failed: %d", e.Path, e.Status)
}

// IsRemoteRequestError checks if given error is caused by a non-success response
func IsRemoteRequestError(err error) bool {
	var e *RemoteRequestError
	return errors.As(err, &e)
}

// ParseError is returned when a response body doesn't match the expected payload shape.
type ParseError struct {
	Payload string
	Err     error
}

// Error implements error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Payload, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if given error is caused by a malformed payload
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

// StorageError is returned when the persistent store is unavailable or holds a corrupt value.
type StorageError struct {
	Op  string
	Key string
	Err error
}

// Error implements error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying store or codec error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError checks if given error is caused by the persistent store
func IsStorageError(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}
