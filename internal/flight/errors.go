package flight

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

// ErrFlightNotFound is returned when an id does not resolve against the last
// generated or fetched result set.
var ErrFlightNotFound = errors.New("flight not found")

// AppError carries an HTTP status and a stable error code alongside the
// user-facing message.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error) *AppError {
	return &AppError{Status: 400, Code: ErrorCodeValidation, Message: "invalid search parameters", Err: err}
}
