// Package ledgerapi is the HTTP adapter for the external accounting-entries
// service. It owns the session lifecycle (login, cached bearer token) and the
// entry creation call; it has no knowledge of purchase orders.
package ledgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Client calls the accounting-entries API with a bearer token from its
// TokenSource. A 401 invalidates the session and the call is retried once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenSource
}

// NewClient creates a ledger API client.
func NewClient(baseURL string, timeout time.Duration, tokens *TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// Ensure implementation matches interface
var _ portssvc.LedgerClient = (*Client)(nil)

type createEntryRequest struct {
	Description  string          `json:"description"`
	AccountID    int64           `json:"accountId"`
	MovementType string          `json:"movementType"`
	Amount       decimal.Decimal `json:"amount"`
	EntryDate    string          `json:"entryDate,omitempty"`
}

// CreateEntry posts one accounting entry. A non-success response yields an
// error wrapping apperrors.ErrLedgerPosting that carries the remote text.
func (c *Client) CreateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	payload := createEntryRequest{
		Description:  entry.Description,
		AccountID:    entry.AccountID,
		MovementType: string(entry.MovementType),
		Amount:       entry.Amount,
	}
	if !entry.EntryDate.IsZero() {
		payload.EntryDate = entry.EntryDate.Format("2006-01-02")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	status, respBody, err := c.post(ctx, body)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		// Session expired; refresh once and retry.
		c.tokens.Invalidate()
		status, respBody, err = c.post(ctx, body)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: status %d: %s", apperrors.ErrLedgerPosting, status, strings.TrimSpace(string(respBody)))
	}
	return nil
}

func (c *Client) post(ctx context.Context, body []byte) (int, []byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", apperrors.ErrLedgerPosting, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/accounting-entries", bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build ledger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", apperrors.ErrLedgerPosting, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, nil
}
