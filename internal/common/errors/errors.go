// Package errors provides standardized error handling for the intake flow.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDocument     ErrorCode = "INVALID_DOCUMENT"
	ErrCodeAttachmentRead      ErrorCode = "ATTACHMENT_READ_FAILED"
	ErrCodeSubmissionRejected  ErrorCode = "SUBMISSION_REJECTED"
	ErrCodeSubmissionFailed    ErrorCode = "SUBMISSION_FAILED"
	ErrCodeSubmissionInFlight  ErrorCode = "SUBMISSION_IN_FLIGHT"
	ErrCodeAlreadySubmitted    ErrorCode = "ALREADY_SUBMITTED"
	ErrCodeReceiptWriteFailed  ErrorCode = "RECEIPT_WRITE_FAILED"
	ErrCodeConfigurationError  ErrorCode = "CONFIGURATION_ERROR"
)

// GenericSubmissionMessage is surfaced when no server-provided message exists.
const GenericSubmissionMessage = "Registration failed. Please try again."

// StandardError represents a structured application error. Message is safe to
// show to the applicant; Details carries the underlying cause for logs only.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// AsStandardError unwraps err into a *StandardError if it is one.
func AsStandardError(err error) (*StandardError, bool) {
	var se *StandardError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// NewValidationFailedError creates a non-retryable field-validation error.
func NewValidationFailedError(errorCount int) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Application has validation errors",
		Details:   fmt.Sprintf("errorCount: %d", errorCount),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidDocumentError creates a non-retryable document-shape error.
func NewInvalidDocumentError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidDocument,
		Message:   "Application document does not match the expected shape",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAttachmentReadError creates a non-retryable attachment read error.
func NewAttachmentReadError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAttachmentRead,
		Message:   "Could not read attachment file",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionRejectedError creates an error for a non-success HTTP response.
// The message is the server-provided one, surfaced to the applicant verbatim.
func NewSubmissionRejectedError(message string, statusCode int) *StandardError {
	if message == "" {
		message = GenericSubmissionMessage
	}
	return &StandardError{
		Code:      ErrCodeSubmissionRejected,
		Message:   message,
		Details:   fmt.Sprintf("statusCode: %d", statusCode),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionFailedError creates an error for a transport-level failure.
// Raw error detail stays in Details and never reaches the applicant.
func NewSubmissionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionFailed,
		Message:   GenericSubmissionMessage,
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionInFlightError signals a submit attempt while one is running.
func NewSubmissionInFlightError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionInFlight,
		Message:   "A submission is already in progress",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySubmittedError signals a submit attempt after a terminal success.
func NewAlreadySubmittedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeAlreadySubmitted,
		Message:   "This application has already been submitted",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReceiptWriteFailedError creates a best-effort receipt failure error.
func NewReceiptWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReceiptWriteFailed,
		Message:   "Could not write the application receipt",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigurationError creates a non-retryable configuration error.
func NewConfigurationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigurationError,
		Message:   "Invalid configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
