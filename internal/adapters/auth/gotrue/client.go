package gotrue

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vetcare-portal/internal/platform/httpclient"
	"vetcare-portal/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("auth server not configured")
	ErrUnauthorized  = errors.New("auth server unauthorized")
	ErrUpstream      = errors.New("auth server upstream error")
)

// Config del servidor de auth del backend gestionado.
type Config struct {
	BaseURL string // p.ej. https://<proyecto>.example.co
	APIKey  string // api key pública del proyecto (header "apikey")
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

type userResponse struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	AppMetadata map[string]any `json:"app_metadata"`
}

// GetUser resuelve el usuario dueño del access token.
func (c *Client) GetUser(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}
	if c.apiKey != "" {
		headers["apikey"] = c.apiKey
	}

	var out userResponse
	err := c.http.DoJSON(ctx, http.MethodGet, "/auth/v1/user", headers, nil, &out)
	if err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return auth.Claims{}, ErrUnauthorized
		default:
			return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing id", ErrUpstream)
	}

	role, _ := out.AppMetadata["role"].(string)
	return auth.Claims{
		UserID: out.ID,
		Email:  strings.TrimSpace(out.Email),
		Role:   auth.ParseRole(role),
	}, nil
}
