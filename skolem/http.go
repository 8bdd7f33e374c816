package skolem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxMintResponseSize bounds the minting service response body.
const maxMintResponseSize = 4 * 1024

// defaultMintTimeout is the per-request timeout when the caller does not
// supply an HTTP client.
const defaultMintTimeout = 10 * time.Second

// HTTPMinter requests skolem URIs from a remote minting service.
//
// The service contract is a GET on the configured endpoint with an
// optional "type" query parameter; a 2xx response body is the minted URI
// as plain text. Failures are fatal to the mapping call that triggered
// them: no retry is attempted here, retries are the caller's business.
type HTTPMinter struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// HTTPMinterOption configures an HTTPMinter.
type HTTPMinterOption func(*HTTPMinter)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) HTTPMinterOption {
	return func(m *HTTPMinter) {
		m.httpClient = c
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) HTTPMinterOption {
	return func(m *HTTPMinter) {
		m.logger = l
	}
}

// NewHTTPMinter creates a minter talking to the service at endpoint.
func NewHTTPMinter(endpoint string, opts ...HTTPMinterOption) *HTTPMinter {
	m := &HTTPMinter{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultMintTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mint performs a single synchronous request against the minting service.
func (m *HTTPMinter) Mint(ctx context.Context, typeHint string) (string, error) {
	endpoint := m.endpoint
	if typeHint != "" {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		endpoint += sep + "type=" + url.QueryEscape(typeHint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build mint request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("minting service unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMintResponseSize))
	if err != nil {
		return "", fmt.Errorf("read mint response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("minting service returned status %d", resp.StatusCode)
	}

	minted := strings.TrimSpace(string(body))
	if minted == "" {
		return "", fmt.Errorf("minting service returned an empty URI")
	}

	m.logger.Debug("minted identifier",
		slog.String("type_hint", typeHint),
		slog.String("uri", minted))

	return minted, nil
}
