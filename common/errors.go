package common

import (
	"encoding/json"
	"management-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

// AppError is the single error shape that crosses a handler boundary. Every
// failure raised below the handlers is converted into exactly one of the
// constructors below before it reaches the client.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound reports an absent entity.
func NotFound(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// InvalidArgument reports malformed or conflicting input, e.g. a duplicate email.
func InvalidArgument(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// Unauthenticated reports missing credentials.
func Unauthenticated(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, message, err)
}

// PermissionDenied reports credentials that are present but invalid or insufficient.
func PermissionDenied(message string, err error) *AppError {
	return NewAppError(http.StatusForbidden, message, err)
}

// Internal reports an unexpected persistence or infrastructure failure.
func Internal(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
