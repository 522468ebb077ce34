package ihealth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

// tokenTTL is how long an issued bearer token is trusted before a fresh
// exchange is forced. iHealth access tokens last 30 minutes.
const tokenTTL = 30 * time.Minute

// AuthClient owns the OAuth2 client-credentials exchange and the single
// cached bearer token for this process. The token value and its obtained-at
// timestamp live behind the mutex; the pipeline is the only caller of
// Invalidate.
type AuthClient struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *zap.Logger

	now func() time.Time // swapped out in tests

	mu         sync.Mutex
	token      string
	obtainedAt time.Time
}

// NewAuthClient creates an AuthClient for the given credentials and
// identity endpoint.
func NewAuthClient(cfg *Config, logger *zap.Logger) *AuthClient {
	return &AuthClient{
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
		now:          time.Now,
	}
}

// Token returns a currently valid bearer token, exchanging credentials with
// the identity endpoint only when the cached token has expired. The mutex
// covers the whole check-then-exchange sequence, so concurrent tool calls
// share one exchange per expiry cycle instead of racing.
func (a *AuthClient) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && a.now().Before(a.obtainedAt.Add(tokenTTL)) {
		return a.token, nil
	}

	token, err := a.exchange(ctx)
	if err != nil {
		return "", err
	}
	a.token = token
	a.obtainedAt = a.now()
	return token, nil
}

// Invalidate discards the cached token so the next Token call performs a
// fresh exchange. The request pipeline calls this when the API answers
// 401 or 403 before its single retry.
func (a *AuthClient) Invalidate() {
	a.mu.Lock()
	a.token = ""
	a.obtainedAt = time.Time{}
	a.mu.Unlock()
}

// exchange performs the client-credentials grant. Called with the mutex
// held; caches nothing itself so a failure leaves no partial state.
func (a *AuthClient) exchange(ctx context.Context) (string, error) {
	body := strings.NewReader("grant_type=client_credentials&scope=ihealth")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, body)
	if err != nil {
		return "", api.NewError(api.KindAuthentication, 0, "build token request: %v", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(a.clientID + ":" + a.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", api.NewError(api.KindAuthentication, 0, "token exchange: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", api.NewError(api.KindAuthentication, resp.StatusCode, "read token response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.Error("token exchange rejected", zap.Int("status", resp.StatusCode))
		return "", api.NewError(api.KindAuthentication, resp.StatusCode,
			"token exchange failed: %s", strings.TrimSpace(string(payload)))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(payload, &tok); err != nil {
		return "", api.NewError(api.KindAuthentication, resp.StatusCode, "decode token response: %v", err)
	}
	if tok.AccessToken == "" {
		return "", api.NewError(api.KindAuthentication, resp.StatusCode, "token response missing access_token")
	}

	a.logger.Info("obtained new auth token")
	return tok.AccessToken, nil
}
