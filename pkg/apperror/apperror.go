package apperror

import (
	"errors"
	"net/http"
)

// AppError is the single error type handlers forward to the response layer.
// Code is a stable machine-readable identifier, Status the HTTP status the
// terminal formatter maps it to.
type AppError struct {
	Code    string
	Message string
	Status  int
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

// Error codes
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeMissingFields        = "MISSING_FIELDS"
	CodeInvalidEmail         = "INVALID_EMAIL"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeTokenExpired         = "TOKEN_EXPIRED"
	CodeForbidden            = "FORBIDDEN"
	CodePatientNotFound      = "PATIENT_NOT_FOUND"
	CodeMedicineNotFound     = "MEDICINE_NOT_FOUND"
	CodeVisitNotFound        = "VISIT_NOT_FOUND"
	CodePrescriptionNotFound = "PRESCRIPTION_NOT_FOUND"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodePatientExists        = "PATIENT_EXISTS"
	CodeMedicineExists       = "MEDICINE_EXISTS"
	CodeDuplicateKey         = "DUPLICATE_KEY"
	CodeInternal             = "INTERNAL_ERROR"
)

func New(message, code string, status int) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

func BadRequest(message, code string) *AppError {
	return &AppError{Code: code, Message: message, Status: http.StatusBadRequest}
}

func Unauthorized(message, code string) *AppError {
	return &AppError{Code: code, Message: message, Status: http.StatusUnauthorized}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message, Status: http.StatusForbidden}
}

func NotFound(message, code string) *AppError {
	return &AppError{Code: code, Message: message, Status: http.StatusNotFound}
}

func Conflict(message, code string) *AppError {
	return &AppError{Code: code, Message: message, Status: http.StatusConflict}
}

func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Status: http.StatusInternalServerError}
}

// WithDetails attaches structured detail to the error and returns it.
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// As unwraps err into an *AppError when possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
