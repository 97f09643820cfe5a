package ledgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
)

// TokenSource manages the authenticated session against the accounting API.
// The token is acquired lazily on first use, cached, and can be invalidated
// explicitly so the next call logs in again.
type TokenSource struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client

	mu    sync.Mutex
	token string
}

// NewTokenSource creates a TokenSource for the given accounting API credentials.
func NewTokenSource(baseURL, username, password string, httpClient *http.Client) *TokenSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TokenSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: httpClient,
	}
}

// Token returns the cached bearer token, logging in first if none is held.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" {
		return t.token, nil
	}

	token, err := t.login(ctx)
	if err != nil {
		return "", err
	}
	t.token = token
	return token, nil
}

// Invalidate clears the cached token. The next Token call performs a fresh login.
func (t *TokenSource) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = ""
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

func (t *TokenSource) login(ctx context.Context) (string, error) {
	body, err := json.Marshal(loginRequest{Username: t.username, Password: t.password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/api/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: login: %v", apperrors.ErrRemoteRequest, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: login returned %d: %s", apperrors.ErrRemoteRequest, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed loginResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: login response malformed: %v", apperrors.ErrRemoteRequest, err)
	}
	if parsed.Data.Token == "" {
		return "", fmt.Errorf("%w: login response carried no token", apperrors.ErrRemoteRequest)
	}

	return parsed.Data.Token, nil
}
