// Package gateway is the API Gateway Client: the single choke point through
// which every backend request flows. It resolves endpoints against the
// configured base URL, attaches the bearer token read from durable storage on
// every call, maps failures to the canonical user-facing messages, and decodes
// heterogeneous response shapes into domain types.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
	"github.com/meetpoint/meetpoint-client/internal/core/ports"
	"github.com/meetpoint/meetpoint-client/internal/infrastructure/gateway/metrics"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

// Client implements ports.Gateway over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenStore
	log     zerolog.Logger
}

var _ ports.Gateway = (*Client)(nil)

// New creates a Client. baseURL is the API root (e.g. http://localhost:3000/api);
// a trailing slash is tolerated.
func New(baseURL string, tokens ports.TokenStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     log,
	}
}

// TokenStore exposes the credential store backing this client.
func (c *Client) TokenStore() ports.TokenStore {
	return c.tokens
}

// do issues one HTTP request and decodes the JSON response into out (skipped
// when out is nil). Every failure is returned as a *domain.APIError; nothing
// is retried. The token is re-read from the store on each call so a restart
// or an external clear is always honoured.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &domain.APIError{Status: 0, Message: domain.MsgUnexpectedError}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return &domain.APIError{Status: 0, Message: domain.MsgUnexpectedError}
	}
	req.Header.Set("Content-Type", "application/json")

	if token, err := c.tokens.Token(); err != nil {
		// Degrade to an anonymous request rather than failing the call.
		c.log.Warn().Err(err).Msg("token read failed, sending anonymous request")
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "0").Inc()
		c.log.Debug().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("request failed")
		return &domain.APIError{Status: 0, Message: domain.MsgConnectionError}
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.errorFromResponse(resp)
		c.log.Debug().
			Int("status", apiErr.Status).
			Str("method", method).
			Str("endpoint", endpoint).
			Str("message", apiErr.Message).
			Msg("request rejected")
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.APIError{Status: 0, Message: domain.MsgUnexpectedError}
	}
	return nil
}

// errorFromResponse builds the typed error for a non-2xx response. The body
// is tried as JSON ({"message": …} or {"error": …}), then as plain text, then
// dropped; the status code then selects or refines the user-facing message.
func (c *Client) errorFromResponse(resp *http.Response) *domain.APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	serverProvided := false

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	var details map[string]any
	if json.Unmarshal(raw, &envelope) == nil && (envelope.Message != "" || envelope.Error != "") {
		if envelope.Message != "" {
			msg = envelope.Message
		} else {
			msg = envelope.Error
		}
		serverProvided = true
		_ = json.Unmarshal(raw, &details)
	} else if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "{") {
		msg = text
		serverProvided = true
	}

	switch {
	case resp.StatusCode == http.StatusConflict:
		msg = refineConflict(msg)
	case resp.StatusCode == http.StatusBadRequest:
		if !serverProvided {
			msg = domain.MsgInvalidData
		}
	case resp.StatusCode == http.StatusUnauthorized:
		msg = domain.MsgWrongCredential
	case resp.StatusCode == http.StatusNotFound:
		msg = domain.MsgNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		msg = domain.MsgServerError
	}

	return &domain.APIError{Status: resp.StatusCode, Message: msg, Details: details}
}

// refineConflict selects a field-specific "already registered" message by
// substring inspection of the server's conflict message.
func refineConflict(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "email"):
		return domain.MsgEmailTaken
	case strings.Contains(lower, "cpf"):
		return domain.MsgCPFTaken
	case strings.Contains(lower, "cnpj"):
		return domain.MsgCNPJTaken
	default:
		return domain.MsgDuplicateData
	}
}
