package market

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"depositguard/internal/models"
)

// Client calls the open-data real-estate transaction registry. It performs a
// single request per Fetch; retries belong to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	service    string
	httpClient *http.Client
}

// NewClient returns a registry client with defaults applied.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = DefaultAPIKey
	}
	if cfg.Service == "" {
		cfg.Service = DefaultService
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		service:    cfg.Service,
		httpClient: cfg.HTTPClient,
	}
}

// Fetch retrieves one page of transactions. Any failure to obtain a usable
// document is reported as ErrUpstreamUnavailable; malformed rows inside a
// good document are skipped and counted.
func (c *Client) Fetch(ctx context.Context, q Query) (*Batch, error) {
	path := requestPath(c.service, q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(c.apiKey)+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("market registry request failed path=%s: %v", path, err)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Printf("market registry returned HTTP %d path=%s", resp.StatusCode, path)
		return nil, fmt.Errorf("%w: registry returned HTTP %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	doc, err := decodeDocument(resp.Body)
	if err != nil {
		log.Printf("market registry response unreadable path=%s: %v", path, err)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	if code, msg := doc.result(); code != "" && code != SuccessCode {
		log.Printf("market registry result code=%s message=%q path=%s", code, msg, path)
		return nil, fmt.Errorf("%w: result %s: %s", ErrUpstreamUnavailable, code, msg)
	}

	batch := &Batch{Transactions: make([]models.Transaction, 0, len(doc.Rows))}
	batch.TotalCount, _ = strconv.Atoi(strings.TrimSpace(doc.TotalCount))
	for _, row := range doc.Rows {
		tx, err := row.normalize()
		if err != nil {
			batch.Skipped++
			continue
		}
		batch.Transactions = append(batch.Transactions, tx)
	}

	log.Printf("market registry parsed=%d skipped=%d total=%d path=%s",
		len(batch.Transactions), batch.Skipped, batch.TotalCount, path)
	return batch, nil
}

// requestPath builds the path-style parameters after the API key:
// /xml/{service}/{start}/{end}[/{year}][/{code}|/{name}].
func requestPath(service string, q Query) string {
	start := q.Start
	if start < 1 {
		start = 1
	}
	end := q.End
	if end < start {
		end = start + DefaultPageSize - 1
	}

	parts := []string{"xml", service, strconv.Itoa(start), strconv.Itoa(end)}
	if q.Year != "" {
		parts = append(parts, q.Year)
	}
	if q.DistrictCode != "" {
		parts = append(parts, q.DistrictCode)
	} else if q.DistrictName != "" {
		parts = append(parts, q.DistrictName)
	}

	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/" + strings.Join(parts, "/")
}
