package ihealth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

const (
	userAgent     = "F5iHealthMCPServer/1.0"
	defaultAccept = "application/vnd.f5.ihealth.api"
)

// Client is the authenticated gateway to the qkview-analyzer API. Every
// endpoint method is a one-line construction of an apiRequest handed to
// execute, which owns header construction, response classification and the
// single re-authentication retry. Tool handlers never touch HTTP directly.
type Client struct {
	baseURL    string
	auth       *AuthClient
	httpClient *http.Client
	logger     *zap.Logger
}

var _ api.Provider = (*Client)(nil)

// NewClient creates a Client and its owned AuthClient.
func NewClient(cfg *Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		auth:       NewAuthClient(cfg, logger),
		httpClient: &http.Client{Timeout: 120 * time.Second},
		logger:     logger,
	}
}

// execute runs a request through the authenticated pipeline. A 401 or 403
// invalidates the cached token and the request is retried once with a
// freshly exchanged one; a second auth rejection is surfaced as an
// authentication error with no further retries.
func (c *Client) execute(ctx context.Context, r *apiRequest) (*api.Result, error) {
	result, authRejected, err := c.attempt(ctx, r)
	if !authRejected {
		return result, err
	}

	c.logger.Warn("auth rejected, retrying with fresh token",
		zap.String("method", r.method), zap.String("path", r.path))
	c.auth.Invalidate()

	result, _, err = c.attempt(ctx, r)
	return result, err
}

// attempt performs one pass of the pipeline: obtain token, build, send,
// classify. authRejected is true only for a 401/403 response, never for a
// failed token exchange, so the retry fires solely on API auth rejection.
func (c *Client) attempt(ctx context.Context, r *apiRequest) (result *api.Result, authRejected bool, err error) {
	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, false, err
	}

	req, err := r.build(ctx, c.baseURL)
	if err != nil {
		return nil, false, api.NewError(api.KindClient, 0, "build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	accept := defaultAccept
	if r.format != "" {
		accept = r.format.MediaType()
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, api.NewError(api.KindUpstream, 0, "request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, api.NewError(api.KindUpstream, resp.StatusCode, "read response: %v", err)
	}

	return c.classify(resp, body)
}

// classify maps the response status onto the error taxonomy. 202 means the
// analysis is still running upstream and is reported as a success with a
// retry hint, matching API behavior for freshly uploaded QKViews.
func (c *Client) classify(resp *http.Response, body []byte) (*api.Result, bool, error) {
	status := resp.StatusCode
	contentType := resp.Header.Get("Content-Type")

	switch {
	case status == http.StatusAccepted:
		return &api.Result{
			Status:      status,
			ContentType: contentType,
			Body:        body,
			Data: map[string]any{
				"status":  "processing",
				"message": "Request accepted, processing in progress. Retry in 10 seconds.",
			},
		}, false, nil
	case status >= 200 && status < 300:
		result := &api.Result{Status: status, ContentType: contentType, Body: body}
		if strings.Contains(contentType, "json") {
			var data any
			if err := json.Unmarshal(body, &data); err == nil {
				result.Data = data
			}
		}
		return result, false, nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, true, api.NewError(api.KindAuthentication, status,
			"authorization rejected: %s", trimBody(body))
	case status == http.StatusNotFound:
		return nil, false, api.NewError(api.KindNotFound, status,
			"resource not found: %s", trimBody(body))
	case status >= 400 && status < 500:
		c.logger.Warn("api request rejected", zap.Int("status", status))
		return nil, false, api.NewError(api.KindClient, status,
			"request rejected: %s", trimBody(body))
	default:
		c.logger.Error("upstream failure", zap.Int("status", status))
		return nil, false, api.NewError(api.KindUpstream, status,
			"upstream failure: %s", trimBody(body))
	}
}

// trimBody keeps error messages diagnosable without dumping whole payloads.
func trimBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 512 {
		s = s[:512] + "..."
	}
	return s
}

// GetAPIInfo returns API version and operating parameters.
func (c *Client) GetAPIInfo(ctx context.Context) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: "/"})
}

// ListQKViews lists all QKView IDs in the account collection.
func (c *Client) ListQKViews(ctx context.Context) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: "/qkviews"})
}

// UploadQKView uploads a QKView file for analysis.
func (c *Client) UploadQKView(ctx context.Context, opts api.UploadOptions) (*api.Result, error) {
	content, err := io.ReadAll(opts.Content)
	if err != nil {
		return nil, api.NewError(api.KindClient, 0, "read upload content: %v", err)
	}

	fields := url.Values{}
	if opts.Description != "" {
		fields.Set("description", opts.Description)
	}
	if opts.VisibleInGUI != "" {
		fields.Set("visible_in_gui", opts.VisibleInGUI)
	}
	if opts.F5SupportCase != "" {
		fields.Set("f5_support_case", opts.F5SupportCase)
	}
	if opts.ShareWithCaseOwner != "" {
		fields.Set("share_with_case_owner", opts.ShareWithCaseOwner)
	}

	return c.execute(ctx, &apiRequest{
		method: http.MethodPost,
		path:   "/qkviews",
		upload: &uploadPayload{
			fieldName: "qkview",
			filename:  opts.Filename,
			content:   content,
			fields:    fields,
		},
	})
}

// DeleteQKView deletes a single QKView by ID.
func (c *Client) DeleteQKView(ctx context.Context, qkviewID string) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodDelete, path: qkviewPath(qkviewID)})
}

// DeleteAllQKViews deletes every QKView in the account.
func (c *Client) DeleteAllQKViews(ctx context.Context) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodDelete, path: "/qkviews"})
}

// GetQKViewMetadata returns metadata for a QKView.
func (c *Client) GetQKViewMetadata(ctx context.Context, qkviewID string) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: qkviewPath(qkviewID)})
}

// UpdateQKViewMetadata updates the mutable metadata fields of a QKView.
func (c *Client) UpdateQKViewMetadata(ctx context.Context, qkviewID string, update api.MetadataUpdate) (*api.Result, error) {
	form := url.Values{}
	if update.Description != "" {
		form.Set("description", update.Description)
	}
	if update.VisibleInGUI != "" {
		form.Set("visible_in_gui", update.VisibleInGUI)
	}
	if update.F5SupportCase != "" {
		form.Set("f5_support_case", update.F5SupportCase)
	}
	if update.NonF5Case != "" {
		form.Set("non_f5_case", update.NonF5Case)
	}
	return c.execute(ctx, &apiRequest{method: http.MethodPut, path: qkviewPath(qkviewID), form: form})
}

// GetDiagnostics returns diagnostics for a QKView, optionally filtered to
// hits or misses, in the requested response format.
func (c *Client) GetDiagnostics(ctx context.Context, qkviewID string, set api.DiagnosticSet, format api.Format) (*api.Result, error) {
	query := url.Values{}
	if set != api.DiagnosticSetAll {
		query.Set("set", string(set))
	}
	return c.execute(ctx, &apiRequest{
		method: http.MethodGet,
		path:   qkviewPath(qkviewID) + "/diagnostics",
		query:  query,
		format: format,
	})
}

// ListFiles lists the files contained in a QKView, referenced by hash.
func (c *Client) ListFiles(ctx context.Context, qkviewID string) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: qkviewPath(qkviewID) + "/files"})
}

// GetFile downloads a file from a QKView by hash. The hash "qkview"
// retrieves the originally uploaded file.
func (c *Client) GetFile(ctx context.Context, qkviewID, fileHash string) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{
		method: http.MethodGet,
		path:   qkviewPath(qkviewID) + "/files/" + url.PathEscape(fileHash),
		format: api.FormatBinary,
	})
}

// ListCommands lists the tmsh commands captured in a QKView.
func (c *Client) ListCommands(ctx context.Context, qkviewID string) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: qkviewPath(qkviewID) + "/commands"})
}

// GetCommandOutput returns the captured output of one tmsh command.
func (c *Client) GetCommandOutput(ctx context.Context, qkviewID, command string) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{
		method: http.MethodGet,
		path:   qkviewPath(qkviewID) + "/commands/" + url.PathEscape(command),
	})
}

// GetBigIPInfo returns BIG-IP system information for a QKView.
func (c *Client) GetBigIPInfo(ctx context.Context, qkviewID string) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: qkviewPath(qkviewID) + "/bigip"})
}

// GetBigIPSlotInfo returns BIG-IP information for one slot. Slot 0 is the
// whole appliance; chassis blades use their slot number.
func (c *Client) GetBigIPSlotInfo(ctx context.Context, qkviewID string, slot int) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: slotPath(qkviewID, slot)})
}

// GetHardwareInfo returns hardware details for one slot.
func (c *Client) GetHardwareInfo(ctx context.Context, qkviewID string, slot int) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: slotPath(qkviewID, slot) + "/hardware"})
}

// GetSoftwareInfo returns software version details for one slot.
func (c *Client) GetSoftwareInfo(ctx context.Context, qkviewID string, slot int) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: slotPath(qkviewID, slot) + "/software"})
}

// GetLicenseInfo returns licensing details for one slot.
func (c *Client) GetLicenseInfo(ctx context.Context, qkviewID string, slot int) (*api.Result, error) {
	return c.execute(ctx, &apiRequest{method: http.MethodGet, path: slotPath(qkviewID, slot) + "/license"})
}

// SearchLogs searches the log files in a QKView for a term.
func (c *Client) SearchLogs(ctx context.Context, qkviewID, term string) (*api.Result, error) {
	query := url.Values{}
	query.Set("search", term)
	return c.execute(ctx, &apiRequest{
		method: http.MethodGet,
		path:   qkviewPath(qkviewID) + "/logs",
		query:  query,
	})
}

// ValidateCredentials exercises the token exchange without touching any
// resource endpoint.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	_, err := c.auth.Token(ctx)
	return err
}

func qkviewPath(qkviewID string) string {
	return "/qkviews/" + url.PathEscape(qkviewID)
}

func slotPath(qkviewID string, slot int) string {
	return qkviewPath(qkviewID) + "/bigip/" + strconv.Itoa(slot)
}
