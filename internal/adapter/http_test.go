// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *httpUsersClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPUsersClient(srv.URL, 0, logger.Nop())
	require.NoError(t, err)
	return c.(*httpUsersClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://api.example.com/", want: "https://api.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/Users", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana", req.Username)

		writeJSON(t, w, http.StatusCreated, models.UserView{ID: 7, Username: "ana", Email: "ana@x.com"})
	})

	got, err := c.Register(context.Background(), models.RegisterRequest{Username: "ana", Email: "ana@x.com", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, models.UserView{ID: 7, Username: "ana", Email: "ana@x.com"}, got)
}

func TestRegister_BadRequestCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "validation error: username is already registered"})
	})

	_, err := c.Register(context.Background(), models.RegisterRequest{Username: "ana"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "username is already registered")
}

func TestLogin_StoresToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{ID: 7, Username: "ana", Token: "jwt-token"})
	})

	resp, err := c.Login(context.Background(), models.LoginRequest{Username: "ana", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "jwt-token", c.Token())
}

func TestLogin_FailureKeepsOldToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "invalid username or password"})
	})
	c.SetToken("old")

	_, err := c.Login(context.Background(), models.LoginRequest{Username: "ana", Password: "bad"})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "old", c.Token())
}

// ── Authenticated endpoints ─────────────────────────────────────────────────

func TestListUsers_SendsTokenAndPaging(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/Users", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("pageNumber"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))

		writeJSON(t, w, http.StatusOK, []models.UserView{{ID: 11}, {ID: 12}})
	})
	c.SetToken(" tok ")

	users, err := c.ListUsers(context.Background(), models.Pagination{PageNumber: 2, PageSize: 10})

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(11), users[0].ID)
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/Users/5", r.URL.Path)
			writeJSON(t, w, http.StatusOK, models.UserView{ID: 5, Username: "ana", IsDeleted: true})
		})

		user, err := c.GetUser(context.Background(), 5)

		require.NoError(t, err)
		assert.True(t, user.IsDeleted)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "User not found!"})
		})

		_, err := c.GetUser(context.Background(), 5)

		require.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "User not found!")
	})

	t.Run("unauthorized", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Unauthorized"})
		})

		_, err := c.GetUser(context.Background(), 5)

		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestMessageEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		wantMethod string
		wantPath   string
		call       func(c *httpUsersClient) (string, error)
	}{
		{
			name: "update", wantMethod: http.MethodPut, wantPath: "/api/Users/5",
			call: func(c *httpUsersClient) (string, error) {
				return c.UpdateUser(context.Background(), 5, models.UpdateUserRequest{Email: "new@x.com"})
			},
		},
		{
			name: "delete", wantMethod: http.MethodDelete, wantPath: "/api/Users/5",
			call: func(c *httpUsersClient) (string, error) {
				return c.DeleteUser(context.Background(), 5)
			},
		},
		{
			name: "change password", wantMethod: http.MethodPost, wantPath: "/api/UpdatePassword",
			call: func(c *httpUsersClient) (string, error) {
				return c.ChangePassword(context.Background(), models.ChangePasswordRequest{Username: "ana"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "done"})
			})
			c.SetToken("tok")

			msg, err := tt.call(c)

			require.NoError(t, err)
			assert.Equal(t, "done", msg)
		})
	}
}

func TestMapHTTPError_PlainBodyAndUnknownStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	})
	c.SetToken("tok")

	_, err := c.DeleteUser(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 504")
	assert.Contains(t, err.Error(), "Gateway Timeout")
}
