package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/models"
)

// Every error not listed here is answered with 400 and its own text.
var errorStatusMap = map[error]int{
	service.ErrUserNotFound:    http.StatusNotFound,
	service.ErrNothingToUpdate: http.StatusNotFound,

	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
}

var errorMessageMap = map[error]string{
	service.ErrUserNotFound:    app.MsgUserNotFound,
	service.ErrNothingToUpdate: app.MsgUserNotFound,
	ErrInvalidJSON:             app.MsgInvalidJSON,
	ErrInvalidUserID:           app.MsgInvalidUserID,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadRequest
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}

func levelFromStatus(status int) models.LogLevel {
	switch {
	case status >= 200 && status < 300:
		return models.LogLevelOK
	case status == http.StatusNotFound:
		return models.LogLevelNotFound
	default:
		return models.LogLevelBadRequest
	}
}
