package response

import (
	"encoding/json"
	"net/http"

	"github.com/Dixit-Goti/hospital-management/pkg/apperror"
	"github.com/sirupsen/logrus"
)

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorCode string      `json:"errorCode,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// Err is the terminal error-formatting stage: every handler failure funnels
// through here. Errors that are not AppErrors are logged and returned as an
// opaque 500 so no internal detail leaks to the client.
func Err(w http.ResponseWriter, err error) {
	if appErr, ok := apperror.As(err); ok {
		JSON(w, appErr.Status, Response{
			Success:   false,
			Error:     appErr.Message,
			ErrorCode: appErr.Code,
			Details:   appErr.Details,
		})
		return
	}

	logrus.WithError(err).Error("unexpected error")
	JSON(w, http.StatusInternalServerError, Response{
		Success:   false,
		Error:     "Internal server error",
		ErrorCode: apperror.CodeInternal,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success:   false,
		Error:     "Validation failed",
		ErrorCode: apperror.CodeValidation,
		Details:   errors,
	})
}

func Unauthorized(w http.ResponseWriter, message, code string) {
	if message == "" {
		message = "Unauthorized"
	}
	JSON(w, http.StatusUnauthorized, Response{
		Success:   false,
		Error:     message,
		ErrorCode: code,
	})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Access denied: insufficient permissions"
	}
	JSON(w, http.StatusForbidden, Response{
		Success:   false,
		Error:     message,
		ErrorCode: apperror.CodeForbidden,
	})
}
