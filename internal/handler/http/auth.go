package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		h.fail(w, r, malformedBody, err)
		return
	}
	data := dataBody(request.Redacted())

	response, err := h.services.UserService.Login(ctx, request)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}

	log.Debug().Int64("id", response.ID).Msg("user successfully logged in")

	h.audit(r, models.LogLevelOK, data, "", nil)
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ChangePasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		h.fail(w, r, malformedBody, err)
		return
	}
	data := dataBody(request.Redacted())

	if callerID, ok := utils.GetUserIDFromContext(ctx); ok {
		log.Debug().Int64("caller_id", callerID).Str("username", request.Username).Msg("password change requested")
	}

	changed, err := h.services.UserService.ChangePassword(ctx, request)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}

	if !changed {
		message := fmt.Sprintf(app.MsgPasswordNotChanged, request.Username)
		h.audit(r, models.LogLevelBadRequest, data, message, nil)
		utils.WriteMessage(w, message, http.StatusBadRequest)
		return
	}

	message := fmt.Sprintf(app.MsgPasswordChanged, request.Username)
	h.audit(r, models.LogLevelOK, data, message, nil)
	utils.WriteMessage(w, message, http.StatusOK)
}
