// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pagination, err := paginationFromQuery(r)
	if err != nil {
		query := r.URL.Query()
		h.fail(w, r, dataPagination(query.Get("pageNumber"), query.Get("pageSize")), err)
		return
	}
	data := dataPagination(pagination.PageNumber, pagination.PageSize)

	users, err := h.services.UserService.ListUsers(ctx, pagination)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}

	h.audit(r, models.LogLevelOK, data, "", nil)
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := userIDFromURL(r)
	if err != nil {
		h.fail(w, r, dataID(chi.URLParam(r, "id")), err)
		return
	}
	data := dataID(id)

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}

	h.audit(r, models.LogLevelOK, data, "", nil)
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		h.fail(w, r, dataID(chi.URLParam(r, "id")), err)
		return
	}

	var request models.UpdateUserRequest
	if err = decodeJSON(r, &request); err != nil {
		h.fail(w, r, dataIDBody(id, malformedBody), err)
		return
	}
	data := dataIDBody(id, request)

	user, err := h.services.UserService.UpdateUser(ctx, id, request)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user updated")

	message := fmt.Sprintf(app.MsgUserUpdated, user.ID)
	h.audit(r, models.LogLevelOK, data, message, nil)
	utils.WriteMessage(w, message, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		h.fail(w, r, malformedBody, err)
		return
	}
	data := dataBody(request.Redacted())

	user, err := h.services.UserService.CreateUser(ctx, request)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}

	if user.ID == 0 {
		h.audit(r, models.LogLevelBadRequest, data, app.MsgUserNotSaved, nil)
		utils.WriteMessage(w, app.MsgUserNotSaved, http.StatusBadRequest)
		return
	}

	h.audit(r, models.LogLevelOK, data, app.MsgUserSaved, nil)
	w.Header().Set("Location", fmt.Sprintf("/api/Users/%d", user.ID))
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := userIDFromURL(r)
	if err != nil {
		h.fail(w, r, dataID(chi.URLParam(r, "id")), err)
		return
	}
	data := dataID(id)

	deleted, err := h.services.UserService.DeleteUser(ctx, id)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}

	if !deleted {
		h.audit(r, models.LogLevelBadRequest, data, app.MsgUserNotDeleted, nil)
		utils.WriteMessage(w, app.MsgUserNotDeleted, http.StatusBadRequest)
		return
	}

	message := fmt.Sprintf(app.MsgUserDeleted, id)
	h.audit(r, models.LogLevelOK, data, message, nil)
	utils.WriteMessage(w, message, http.StatusOK)
}
