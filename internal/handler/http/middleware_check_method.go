// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 with a JSON message, so an unsupported
// method looks exactly like an unknown path. If the router does resolve the
// method for the path, the request is served normally.
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	notFound := routeNotFound()

	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

func routeNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, app.MsgRouteNotFound, http.StatusNotFound)
	}
}
