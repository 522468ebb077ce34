package ihealth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

// newTokenServer fakes the identity endpoint, issuing token-1, token-2, ...
// and verifying the exchange request shape on every hit.
func newTokenServer(t *testing.T, exchanges *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := exchanges.Add(1)

		require.Equal(t, http.MethodPost, r.Method)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "exchange must carry Basic auth")
		require.Equal(t, "test-id", user)
		require.Equal(t, "test-secret", pass)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "grant_type=client_credentials")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": fmt.Sprintf("token-%d", n),
			"token_type":   "Bearer",
			"expires_in":   1800,
		})
	}))
}

func newTestAuthClient(tokenURL string) *AuthClient {
	return NewAuthClient(&Config{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		TokenURL:     tokenURL,
	}, zap.NewNop())
}

func TestTokenCachedWithinTTL(t *testing.T) {
	var exchanges atomic.Int32
	srv := newTokenServer(t, &exchanges)
	defer srv.Close()

	auth := newTestAuthClient(srv.URL)

	for i := 0; i < 5; i++ {
		token, err := auth.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-1", token)
	}
	assert.Equal(t, int32(1), exchanges.Load(), "repeated calls within the TTL must reuse the cached token")
}

func TestTokenTTLBoundary(t *testing.T) {
	var exchanges atomic.Int32
	srv := newTokenServer(t, &exchanges)
	defer srv.Close()

	auth := newTestAuthClient(srv.URL)
	base := time.Now()
	current := base
	auth.now = func() time.Time { return current }

	token, err := auth.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// One second before expiry the cached token is still served.
	current = base.Add(tokenTTL - time.Second)
	token, err = auth.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, int32(1), exchanges.Load())

	// One second past expiry forces a fresh exchange.
	current = base.Add(tokenTTL + time.Second)
	token, err = auth.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
	assert.Equal(t, int32(2), exchanges.Load())
}

func TestInvalidateForcesExchange(t *testing.T) {
	var exchanges atomic.Int32
	srv := newTokenServer(t, &exchanges)
	defer srv.Close()

	auth := newTestAuthClient(srv.URL)

	token, err := auth.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	auth.Invalidate()

	token, err = auth.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
	assert.Equal(t, int32(2), exchanges.Load())
}

func TestExchangeFailureCachesNothing(t *testing.T) {
	var exchanges atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges.Add(1)
		http.Error(w, "invalid_client", http.StatusUnauthorized)
	}))
	defer srv.Close()

	auth := newTestAuthClient(srv.URL)

	_, err := auth.Token(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindAuthentication))

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Message, "invalid_client")

	// A second call must attempt another exchange, proving no partial
	// state was cached by the failure.
	_, err = auth.Token(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), exchanges.Load())
}

func TestExchangeMissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer srv.Close()

	auth := newTestAuthClient(srv.URL)

	_, err := auth.Token(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindAuthentication))
	assert.Contains(t, err.Error(), "missing access_token")
}

func TestConcurrentCallsShareOneExchange(t *testing.T) {
	var exchanges atomic.Int32
	srv := newTokenServer(t, &exchanges)
	defer srv.Close()

	auth := newTestAuthClient(srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := auth.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "token-1", token)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), exchanges.Load())
}
