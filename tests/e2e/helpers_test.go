//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/resilience-backend/internal/adapter/postgres"
	assessorrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/assessor"
	catalogrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/catalog"
	entryrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/entry"
	sessionrepo "github.com/akarpov/resilience-backend/internal/adapter/postgres/session"
	"github.com/akarpov/resilience-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/akarpov/resilience-backend/internal/auth"
	"github.com/akarpov/resilience-backend/internal/config"
	"github.com/akarpov/resilience-backend/internal/service/assessment"
	authsvc "github.com/akarpov/resilience-backend/internal/service/auth"
	catalogsvc "github.com/akarpov/resilience-backend/internal/service/catalog"
	"github.com/akarpov/resilience-backend/internal/service/scoring"
	"github.com/akarpov/resilience-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Auth   *authsvc.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	sessions := sessionrepo.New(pool)
	entries := entryrepo.New(pool)
	catalog := catalogrepo.New(pool)
	assessors := assessorrepo.New(pool)

	jwtManager := authpkg.NewJWTManager("e2e-test-secret-key-0123456789", "resilience-e2e", time.Hour)

	assessmentSvc := assessment.NewService(logger, sessions, entries, catalog, txm)
	catalogSvc := catalogsvc.NewService(logger, catalog, txm)
	scoringSvc := scoring.NewService(logger, sessions, catalog, entries)
	authSvc := authsvc.NewService(logger, assessors, jwtManager)

	router := rest.NewRouter(rest.RouterDeps{
		Log:            logger,
		DB:             pool,
		Version:        "e2e",
		TokenValidator: jwtManager,
		CORS:           config.CORSConfig{AllowedOrigins: "*"},

		Auth:       authSvc,
		Catalog:    catalogSvc,
		Sessions:   assessmentSvc,
		Entries:    assessmentSvc,
		Scores:     scoringSvc,
		Assessment: assessmentSvc,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Auth:   authSvc,
	}
}

// registerAndLogin creates an assessor account and returns a bearer token.
func registerAndLogin(t *testing.T, ts *testServer) string {
	t.Helper()

	name := "e2e-" + uuid.NewString()[:8]
	password := "e2e-password-123"

	_, err := ts.Auth.Register(t.Context(), name, password)
	require.NoError(t, err)

	status, body := ts.postJSON(t, "/api/v1/auth/login", map[string]any{
		"name":     name,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in login response")
	return token
}

// postJSON sends a POST with an optional bearer token and decodes the
// JSON response body.
func (ts *testServer) postJSON(t *testing.T, path string, payload any, token string) (int, map[string]any) {
	t.Helper()
	return ts.doJSON(t, http.MethodPost, path, payload, token)
}

// putJSON sends a PUT with an optional bearer token.
func (ts *testServer) putJSON(t *testing.T, path string, payload any, token string) (int, map[string]any) {
	t.Helper()
	return ts.doJSON(t, http.MethodPut, path, payload, token)
}

func (ts *testServer) doJSON(t *testing.T, method, path string, payload any, token string) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(t.Context(), method, ts.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeObject(t, resp.Body)
}

// getJSONArray fetches a path expecting a JSON array response.
func (ts *testServer) getJSONArray(t *testing.T, path string) (int, []map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var arr []map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &arr), "body: %s", raw)
	}
	return resp.StatusCode, arr
}

// getJSON fetches a path expecting a JSON object response.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeObject(t, resp.Body)
}

func decodeObject(t *testing.T, r io.Reader) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(r)
	require.NoError(t, err)

	var body map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	}
	return body
}

// seedThemeWithTopics inserts a unique theme with topicCount topics and
// returns the topic IDs. The catalog is shared across tests, so assertions
// over it must be containment-based.
func seedThemeWithTopics(t *testing.T, ts *testServer, topicCount int) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	theme, topics := testhelper.SeedCatalog(t, ts.Pool, topicCount)
	ids := make([]uuid.UUID, 0, len(topics))
	for _, topic := range topics {
		ids = append(ids, topic.ID)
	}
	return theme.ID, ids
}
