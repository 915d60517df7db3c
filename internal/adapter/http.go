package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

type httpUsersClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPUsersClient constructs a [UsersClient] for the API served at
// address ("host:port" or a full URL). A zero timeout disables the limit.
func NewHTTPUsersClient(address string, timeout time.Duration, logger *logger.Logger) (UsersClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid API address: %w", err)
	}

	return &httpUsersClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUsersClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpUsersClient) Token() string {
	return h.token
}

func (h *httpUsersClient) Register(ctx context.Context, request models.RegisterRequest) (models.UserView, error) {
	var created models.UserView

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&created).
		Post("/api/Users")
	if err != nil {
		return models.UserView{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return created, nil
}

func (h *httpUsersClient) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var response models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/api/Login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(response.Token)
	h.logger.Debug().Int64("user_id", response.ID).Msg("logged in")

	return response, nil
}

func (h *httpUsersClient) ListUsers(ctx context.Context, pagination models.Pagination) ([]models.UserView, error) {
	users := make([]models.UserView, 0)

	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"pageNumber": strconv.Itoa(pagination.PageNumber),
			"pageSize":   strconv.Itoa(pagination.PageSize),
		}).
		SetResult(&users).
		Get("/api/Users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpUsersClient) GetUser(ctx context.Context, id int64) (models.UserView, error) {
	var user models.UserView

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&user).
		Get("/api/Users/{id}")
	if err != nil {
		return models.UserView{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return user, nil
}

func (h *httpUsersClient) UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (string, error) {
	var msg models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(request).
		SetResult(&msg).
		Put("/api/Users/{id}")
	if err != nil {
		return "", fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpUsersClient) DeleteUser(ctx context.Context, id int64) (string, error) {
	var msg models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&msg).
		Delete("/api/Users/{id}")
	if err != nil {
		return "", fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpUsersClient) ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (string, error) {
	var msg models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetBody(request).
		SetResult(&msg).
		Post("/api/UpdatePassword")
	if err != nil {
		return "", fmt.Errorf("change password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpUsersClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
