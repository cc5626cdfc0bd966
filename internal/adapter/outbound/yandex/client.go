// Package yandex implements the outbound HTTP client for the Yandex Direct
// and Yandex Metrika APIs. One exported method per vendor entry point; every
// call is a single round trip with a call-scoped timeout and no retries.
package yandex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

const (
	directAPIURL     = "https://api.direct.yandex.com/json/v5"
	directAPIURLV501 = "https://api.direct.yandex.com/json/v501"
	directSandboxURL = "https://api-sandbox.direct.yandex.com/json/v5"
	metrikaAPIURL    = "https://api-metrika.yandex.net"
)

// Client issues requests against both Yandex APIs. It holds no mutable state
// beyond the injected http.Clients, so concurrent use needs no locking.
type Client struct {
	http    *http.Client
	reports *http.Client
	creds   domain.Credentials

	directBase     string
	directBaseV501 string
	metrikaBase    string

	tracer trace.Tracer
	logger *slog.Logger
}

// Option overrides client defaults, primarily for tests.
type Option func(*Client)

// WithDirectBaseURL points every Direct call (including v501 and reports) at
// the given base URL instead of the production/sandbox hosts.
func WithDirectBaseURL(base string) Option {
	return func(c *Client) {
		c.directBase = base
		c.directBaseV501 = base
	}
}

// WithMetrikaBaseURL points Metrika calls at the given base URL.
func WithMetrikaBaseURL(base string) Option {
	return func(c *Client) { c.metrikaBase = base }
}

// New creates a Client. httpClient carries the management-call timeout,
// reportClient the longer statistics-report timeout. If reportClient is nil
// the management client is used for reports as well.
func New(httpClient, reportClient *http.Client, creds domain.Credentials, logger *slog.Logger, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if reportClient == nil {
		reportClient = httpClient
	}
	c := &Client{
		http:        httpClient,
		reports:     reportClient,
		creds:       creds,
		metrikaBase: metrikaAPIURL,
		tracer:      otel.Tracer("yandex-mcp/yandex"),
		logger:      logger.With("component", "yandex_client"),
	}
	if creds.UseSandbox {
		c.directBase = directSandboxURL
		c.directBaseV501 = directSandboxURL
	} else {
		c.directBase = directAPIURL
		c.directBaseV501 = directAPIURLV501
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) directURL(useV501 bool) string {
	if useV501 {
		return c.directBaseV501
	}
	return c.directBase
}

// DirectRequest issues one {method, params} POST to a Direct API service and
// decodes the JSON response. A missing token fails before any network I/O.
func (c *Client) DirectRequest(ctx context.Context, service, method string, params map[string]any, useV501 bool) (map[string]any, error) {
	token := c.creds.DirectToken()
	if token == "" {
		return nil, &domain.ConfigError{Message: "Yandex Direct API token not configured. " +
			"Set YANDEX_DIRECT_TOKEN or YANDEX_TOKEN environment variable."}
	}

	payload, err := json.Marshal(map[string]any{"method": method, "params": params})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal direct request: %w", err)
	}

	ctx, span := c.tracer.Start(ctx, "direct."+service+"."+method,
		trace.WithAttributes(attribute.String("yandex.service", service), attribute.String("yandex.method", method)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.directURL(useV501)+"/"+service, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create direct request: %w", err)
	}
	c.setDirectHeaders(req, token)

	body, status, err := c.do(c.http, req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status < 200 || status > 299 {
		c.logger.Warn("Direct API returned non-success status",
			slog.String("service", service), slog.String("method", method), slog.Int("status", status))
		return nil, &domain.UpstreamError{Status: status, Body: body}
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode direct response: %w", err)
	}
	return result, nil
}

// DirectReport posts a TSV report definition to the reports sub-resource and
// returns the raw body and status code. 200 carries TSV data; 201/202 mean
// the report is still being generated and are the caller's to interpret.
func (c *Client) DirectReport(ctx context.Context, definition map[string]any) (string, int, error) {
	token := c.creds.DirectToken()
	if token == "" {
		return "", 0, &domain.ConfigError{Message: "Yandex Direct API token not configured. " +
			"Set YANDEX_DIRECT_TOKEN or YANDEX_TOKEN environment variable."}
	}

	payload, err := json.Marshal(map[string]any{"params": definition})
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal report definition: %w", err)
	}

	ctx, span := c.tracer.Start(ctx, "direct.reports")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.directURL(false)+"/reports", bytes.NewReader(payload))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create report request: %w", err)
	}
	c.setDirectHeaders(req, token)
	req.Header.Set("processingMode", "auto")
	req.Header.Set("returnMoneyInMicros", "false")
	req.Header.Set("skipReportHeader", "true")
	req.Header.Set("skipColumnHeader", "false")
	req.Header.Set("skipReportSummary", "true")

	body, status, err := c.do(c.reports, req)
	if err != nil {
		return "", 0, err
	}
	span.SetAttributes(attribute.Int("http.status_code", status))
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return string(body), status, nil
	default:
		return "", status, &domain.UpstreamError{Status: status, Body: body}
	}
}

// MetrikaRequest issues one REST call against the Metrika API. A 204 response
// is normalized to {"success": true}; an unsupported verb fails before any
// network I/O.
func (c *Client) MetrikaRequest(ctx context.Context, httpMethod, endpoint string, query url.Values, body any) (map[string]any, error) {
	token := c.creds.MetrikaToken()
	if token == "" {
		return nil, &domain.ConfigError{Message: "Yandex Metrika API token not configured. " +
			"Set YANDEX_METRIKA_TOKEN or YANDEX_TOKEN environment variable."}
	}

	switch httpMethod {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, &domain.ConfigError{Message: fmt.Sprintf("Unsupported HTTP method: %s", httpMethod)}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metrika request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	ctx, span := c.tracer.Start(ctx, "metrika."+httpMethod+" "+endpoint,
		trace.WithAttributes(attribute.String("http.method", httpMethod), attribute.String("yandex.endpoint", endpoint)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, httpMethod, c.metrikaBase+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrika request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Authorization", "OAuth "+token)
	req.Header.Set("Content-Type", "application/json")

	respBody, status, err := c.do(c.http, req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status == http.StatusNoContent {
		return map[string]any{"success": true}, nil
	}
	if status < 200 || status > 299 {
		c.logger.Warn("Metrika API returned non-success status",
			slog.String("endpoint", endpoint), slog.Int("status", status))
		return nil, &domain.UpstreamError{Status: status, Body: respBody}
	}
	if len(respBody) == 0 {
		return map[string]any{}, nil
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode metrika response: %w", err)
	}
	return result, nil
}

func (c *Client) setDirectHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", "ru")
	req.Header.Set("Content-Type", "application/json")
	if c.creds.ClientLogin != "" {
		req.Header.Set("Client-Login", c.creds.ClientLogin)
	}
}

// do executes the request, reads the full body and maps transport-level
// timeouts onto the domain timeout error. The connection is released on every
// exit path.
func (c *Client) do(client *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, 0, domain.ErrTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, domain.ErrTimeout
		}
		return nil, 0, fmt.Errorf("request execution failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}
