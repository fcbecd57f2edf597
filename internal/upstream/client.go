// Package upstream is the single point through which every call to the
// remote Fix4Home API passes. The client attaches the stored bearer token to
// each request, unwraps the standard response envelope, and classifies
// failures: authentication failures clear the session and notify
// subscribers, connectivity failures do not.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fix4home/admin-gateway/internal/api/metrics"
	"github.com/fix4home/admin-gateway/internal/core/domain"
	"github.com/fix4home/admin-gateway/internal/core/ports"
)

// envelope is the standard wrapper on every upstream response.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// multipartPayload carries a pre-encoded multipart body together with the
// content type produced by multipart.Writer. The transport never sets a
// fixed content type for these; the writer-generated value carries the
// boundary declaration.
type multipartPayload struct {
	body        io.Reader
	contentType string
}

// Client is the outbound HTTP client for the remote Fix4Home API.
//
// Requests are not retried, not queued, and carry no per-request timeout:
// each call fails or succeeds independently.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	mu          sync.Mutex
	invalidated []func(reason string)
}

// NewClient creates a Client for the given base URL (e.g.
// "http://localhost:8100/api/v1").
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// OnSessionInvalidated registers a hook fired whenever the upstream rejects
// the stored credential. The transport clears the session itself; hooks
// exist so other layers can react without the clearing being a hidden side
// effect.
func (c *Client) OnSessionInvalidated(fn func(reason string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, fn)
}

func (c *Client) notifyInvalidated(reason string) {
	c.mu.Lock()
	hooks := make([]func(string), len(c.invalidated))
	copy(hooks, c.invalidated)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn(reason)
	}
}

// Do performs one upstream call. body may be nil, a JSON-marshallable value,
// or a multipartPayload. On success the envelope's data field is decoded
// into out when out is non-nil.
func (c *Client) Do(ctx context.Context, store ports.CredentialStore, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case multipartPayload:
		reader = b.body
		contentType = b.contentType
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := store.Get(ports.KeyToken); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "unreachable").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("upstream unreachable")
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "unreachable").Inc()
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}

	outcome := "ok"
	defer func() {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil {
			return nil
		}
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			outcome = "error"
			return fmt.Errorf("decode response envelope: %w", err)
		}
		if len(env.Data) == 0 {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			outcome = "error"
			return fmt.Errorf("decode response data: %w", err)
		}
		return nil
	}

	// Best-effort envelope parse for the failure message.
	var env envelope
	_ = json.Unmarshal(raw, &env)

	if isAuthFailure(resp.StatusCode, env.Message) {
		outcome = "session_invalid"
		store.DeleteAll(ports.SessionKeys...)
		metrics.SessionInvalidationsTotal.Inc()
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("upstream rejected credential, session cleared")
		c.notifyInvalidated(env.Message)
		return domain.ErrSessionExpired
	}

	outcome = "error"
	return &domain.UpstreamError{Status: resp.StatusCode, Message: env.Message}
}

// isAuthFailure classifies a failure response as authentication-related:
// an explicit 401, or a 400 whose message text indicates an auth problem.
func isAuthFailure(status int, message string) bool {
	if status == http.StatusUnauthorized {
		return true
	}
	if status != http.StatusBadRequest {
		return false
	}
	msg := strings.ToLower(message)
	for _, marker := range []string{"token", "unauthorized", "unauthenticated", "authentication", "expired", "credential"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func (c *Client) get(ctx context.Context, store ports.CredentialStore, path string, query url.Values, out any) error {
	return c.Do(ctx, store, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, store ports.CredentialStore, path string, body, out any) error {
	return c.Do(ctx, store, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, store ports.CredentialStore, path string, body, out any) error {
	return c.Do(ctx, store, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, store ports.CredentialStore, path string, body, out any) error {
	return c.Do(ctx, store, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, store ports.CredentialStore, path string) error {
	return c.Do(ctx, store, http.MethodDelete, path, nil, nil, nil)
}
