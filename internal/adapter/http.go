package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/langlens/account-service/models"
)

// HTTPClientConfig carries the connection parameters for the REST client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAccountClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAccountClient constructs an HTTP/REST implementation of
// [AccountClient] pointed at cfg.BaseURL.
func NewHTTPAccountClient(cfg HTTPClientConfig) AccountClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAccountClient{client: cli}
}

func (h *httpAccountClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAccountClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAccountClient) Register(ctx context.Context, name, email, password string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name, "email": email, "password": password}).
		SetResult(&auth).
		Post("/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpAccountClient) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&auth).
		Post("/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpAccountClient) ForgotPassword(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/forgotpassword")
	if err != nil {
		return fmt.Errorf("forgot-password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountClient) VerifyOTP(ctx context.Context, email, otp string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "otp": otp}).
		Post("/verify-otp")
	if err != nil {
		return fmt.Errorf("verify-otp request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountClient) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "otp": otp, "password": newPassword}).
		Post("/resetpassword")
	if err != nil {
		return fmt.Errorf("reset-password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}).
		Post("/user/change-password")
	if err != nil {
		return fmt.Errorf("change-password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountClient) ChangeEmail(ctx context.Context, newEmail, password string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"newEmail": newEmail, "password": password}).
		Post("/user/change-email")
	if err != nil {
		return fmt.Errorf("change-email request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountClient) DeleteAccount(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/user/delete")
	if err != nil {
		return fmt.Errorf("delete-account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	// The token is useless after deletion.
	h.SetToken("")
	return nil
}

func (h *httpAccountClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}
