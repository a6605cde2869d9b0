package errors

import (
	"fmt"
	"net/http"
)

// AppError là custom error type cho application
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

// ErrInvalidPayload indicates a malformed or incomplete webhook payload
func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// ErrRecordNotFound indicates no knowledge-base record matched the email
func ErrRecordNotFound(email string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_RECORD_NOT_FOUND,
		Message:  "No record found for email",
	}.WithDetail("email", email)
}

// ErrAmbiguousRecord indicates more than one record matched the email
func ErrAmbiguousRecord(email string, count int) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_AMBIGUOUS_RECORD,
		Message:  "Multiple records found for email",
	}.WithDetail("email", email).
		WithDetail("matches", fmt.Sprintf("%d", count))
}

// ErrUpdateFailed indicates the knowledge-base patch did not apply
func ErrUpdateFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_UPDATE_FAILED,
		Message:  "Failed to update record",
	}
}

// ErrNotificationFailed indicates a messaging send failure; non-fatal
// to the request outcome
func ErrNotificationFailed(phone string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_NOTIFICATION_FAILED,
		Message:  "Failed to send notification",
	}.WithDetail("phone", phone)
}

// ErrExternalAPIFailed indicates a transport-level failure talking to
// an external collaborator
func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_EXTERNAL_API_FAILED,
		Message:  fmt.Sprintf("External API call failed: %s", service),
	}
}
