package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/models"
)

const testToken = "valid-token"

type testEnv struct {
	users  *mock.MockUserService
	auth   *mock.MockAuthService
	audit  *mock.MockAuditService
	router *chi.Mux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		users: mock.NewMockUserService(ctrl),
		auth:  mock.NewMockAuthService(ctrl),
		audit: mock.NewMockAuditService(ctrl),
	}

	h := NewHandler(&service.Services{
		UserService:  env.users,
		AuthService:  env.auth,
		AuditService: env.audit,
	}, 0, logger.Nop())
	env.router = h.Init()

	return env
}

// authorize makes testToken valid for the rest of the test.
func (e *testEnv) authorize() {
	e.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: 1, Username: "admin"}, nil).AnyTimes()
}

func (e *testEnv) expectAudit(level models.LogLevel, message string) {
	e.audit.EXPECT().Record(gomock.Any(), level, message, gomock.Any())
}

func (e *testEnv) do(t *testing.T, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
	return msg.Message
}

func newNopHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})
