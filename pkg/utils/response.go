package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brokermart/brokermart/pkg/apperr"
	"go.uber.org/zap"
)

// Response is the error body returned for every rejected request.
type Response struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

var kindStatus = map[apperr.Kind]int{
	apperr.KindValidation:    http.StatusBadRequest,
	apperr.KindAuthorization: http.StatusForbidden,
	apperr.KindNotFound:      http.StatusNotFound,
	apperr.KindConflict:      http.StatusConflict,
	apperr.KindUnavailable:   http.StatusServiceUnavailable,
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Response{Error: message})
}

// RespondWithAppError maps a service error onto the HTTP surface. Typed
// errors carry their own status and code; anything else is an opaque 500 so
// internal exception text never leaks to clients.
func RespondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status, ok := kindStatus[appErr.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		RespondWithJSON(w, status, Response{Error: appErr.Message, Code: appErr.Code})
		return
	}
	RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
