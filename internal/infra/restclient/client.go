// Package restclient is the JSON-over-HTTP plumbing shared by the assessment,
// advisory and geocoder clients. Transport failures become domain network
// errors; non-2xx responses become domain remote errors carrying the server's
// message.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	deliverycontext "jalsetu/internal/delivery/context"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/errors"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Client sends JSON requests to one base URL.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	headers    http.Header
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets a header on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// New creates a Client. timeout bounds every request.
func New(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", baseURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers: http.Header{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Do sends body (nil for none) as JSON to path with the given query and decodes
// a 2xx response into out (nil to discard).
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(domainerrors.ErrInternal.WithCause(err).WithDetails("encode " + op))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return errors.WithStack(domainerrors.ErrInternal.WithCause(err).WithDetails("build " + op))
	}
	for key, values := range c.headers {
		req.Header[key] = values
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Request failed",
			slog.String("op", op),
			slog.Duration("latency", time.Since(start)),
			slog.Any("error", err),
		)

		return errors.WithStack(domainerrors.NewNetworkError(err, op))
	}
	defer resp.Body.Close()

	logger.Debug("Request completed",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.WithStack(remoteError(resp, op))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return errors.WithStack(domainerrors.NewRemoteError("", op+": malformed response body: "+err.Error()))
	}

	return nil
}

// remoteError builds a RemoteError from the body's detail, message or error
// field, falling back to the status text.
func remoteError(resp *http.Response, op string) *domainerrors.BaseError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := messageFromBody(raw)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return domainerrors.NewRemoteError(message, op+": status "+strconv.Itoa(resp.StatusCode))
}

func messageFromBody(raw []byte) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "message", "error"} {
		field, ok := body[key]
		if !ok {
			continue
		}
		var text string
		if err := json.Unmarshal(field, &text); err == nil && strings.TrimSpace(text) != "" {
			return text
		}
	}

	return ""
}
