package ledgerapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ncabrera/purchasing_backend/internal/adapters/ledgerapi"
	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerServer simulates the accounting-entries API: a login endpoint
// issuing tokens and an entries endpoint that checks the bearer token.
type fakeLedgerServer struct {
	*httptest.Server

	tokenCounter   atomic.Int64
	loginCalls     atomic.Int64
	entryCalls     atomic.Int64
	rejectToken    func(token string) bool
	failEntryWith  int
	lastEntryBody  map[string]any
	validTokenBase string
}

func newFakeLedgerServer() *fakeLedgerServer {
	f := &fakeLedgerServer{validTokenBase: "token-"}
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.loginCalls.Add(1)
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "admin" || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		n := f.tokenCounter.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"token": f.validTokenBase + strconv.FormatInt(n, 10)},
		})
	})

	mux.HandleFunc("/api/v1/accounting-entries", func(w http.ResponseWriter, r *http.Request) {
		f.entryCalls.Add(1)
		token := r.Header.Get("Authorization")
		if f.rejectToken != nil && f.rejectToken(token) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if f.failEntryWith != 0 {
			http.Error(w, "account is closed", f.failEntryWith)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.lastEntryBody = body
		w.WriteHeader(http.StatusCreated)
	})

	f.Server = httptest.NewServer(mux)
	return f
}

func newTestClient(t *testing.T, srv *fakeLedgerServer) *ledgerapi.Client {
	t.Helper()
	tokens := ledgerapi.NewTokenSource(srv.URL, "admin", "secret", srv.Client())
	return ledgerapi.NewClient(srv.URL, 5*time.Second, tokens)
}

func sampleEntry() domain.LedgerEntry {
	return domain.LedgerEntry{
		Description:  "Compra de Papel bond al proveedor Suplidora Nacional (OC-20260829-0001)",
		AccountID:    1,
		MovementType: domain.Debit,
		Amount:       decimal.RequireFromString("2505.00"),
		EntryDate:    time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}
}

func TestClient_CreateEntry(t *testing.T) {
	srv := newFakeLedgerServer()
	defer srv.Close()
	client := newTestClient(t, srv)

	err := client.CreateEntry(context.Background(), sampleEntry())

	require.NoError(t, err)
	assert.EqualValues(t, 1, srv.loginCalls.Load())
	assert.EqualValues(t, 1, srv.entryCalls.Load())
	assert.Equal(t, "DB", srv.lastEntryBody["movementType"])
	assert.Equal(t, "2026-08-29", srv.lastEntryBody["entryDate"])
	assert.EqualValues(t, 1, srv.lastEntryBody["accountId"])
}

func TestClient_CreateEntry_ReusesToken(t *testing.T) {
	srv := newFakeLedgerServer()
	defer srv.Close()
	client := newTestClient(t, srv)

	require.NoError(t, client.CreateEntry(context.Background(), sampleEntry()))
	require.NoError(t, client.CreateEntry(context.Background(), sampleEntry()))

	// One login serves both entry calls.
	assert.EqualValues(t, 1, srv.loginCalls.Load())
	assert.EqualValues(t, 2, srv.entryCalls.Load())
}

func TestClient_CreateEntry_RetriesOnceAfter401(t *testing.T) {
	srv := newFakeLedgerServer()
	defer srv.Close()

	// The first issued token is treated as expired by the server.
	srv.rejectToken = func(token string) bool {
		return token == "Bearer "+srv.validTokenBase+"1"
	}

	client := newTestClient(t, srv)

	err := client.CreateEntry(context.Background(), sampleEntry())

	require.NoError(t, err)
	// login, rejected entry, re-login, accepted entry
	assert.EqualValues(t, 2, srv.loginCalls.Load())
	assert.EqualValues(t, 2, srv.entryCalls.Load())
}

func TestClient_CreateEntry_RemoteFailure(t *testing.T) {
	srv := newFakeLedgerServer()
	defer srv.Close()
	srv.failEntryWith = http.StatusUnprocessableEntity

	client := newTestClient(t, srv)

	err := client.CreateEntry(context.Background(), sampleEntry())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrLedgerPosting)
	assert.ErrorIs(t, err, apperrors.ErrRemoteRequest)
	assert.Contains(t, err.Error(), "account is closed")
}

func TestClient_CreateEntry_LoginFailure(t *testing.T) {
	srv := newFakeLedgerServer()
	defer srv.Close()

	tokens := ledgerapi.NewTokenSource(srv.URL, "admin", "wrong-password", srv.Client())
	client := ledgerapi.NewClient(srv.URL, 5*time.Second, tokens)

	err := client.CreateEntry(context.Background(), sampleEntry())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRemoteRequest)
	assert.EqualValues(t, 0, srv.entryCalls.Load())
}
