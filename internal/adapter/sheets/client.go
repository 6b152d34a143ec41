// Package sheets implements port.DataSource against the spreadsheet-backed
// JSON API that fronts the finance and performance workbooks.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"perf-bi/internal/config/configs"
	"perf-bi/internal/core/domain"
	"perf-bi/internal/core/port"
	"perf-bi/internal/metrics"
)

// maxBody caps the size of a dataset response.
const maxBody = 32 << 20

// HTTPClient is the subset of *http.Client used by Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns an *http.Client with the given per-request timeout.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// Client fetches datasets with GET {base}/{dataset}. Transport errors and
// 5xx/429 responses are retried with backoff; other non-2xx responses fail
// immediately.
type Client struct {
	httpc   HTTPClient
	base    *url.URL
	token   string
	backoff Backoff
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New builds a Client. m may be nil.
func New(cfg configs.Sheets, httpc HTTPClient, logger *slog.Logger, m *metrics.Metrics) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid sheets base url %q", cfg.BaseURL)
	}
	if httpc == nil {
		httpc = NewHTTPClient(cfg.Timeout)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpc:   httpc,
		base:    base,
		token:   cfg.Token,
		backoff: NewBackoff(cfg.Backoff, cfg.Retries),
		logger:  logger,
		metrics: m,
	}, nil
}

var _ port.DataSource = (*Client)(nil)

// Fetch implements port.DataSource. Failures are wrapped in
// port.ErrDataSource.
func (c *Client) Fetch(ctx context.Context, dataset string) ([]domain.Row, error) {
	start := time.Now()
	u := c.base.JoinPath(dataset)

	var body []byte
	err := c.backoff.Do(ctx, func(attempt int) error {
		b, err := c.get(ctx, u.String())
		if err != nil && attempt > 0 {
			c.logger.Debug("sheets fetch retry failed", slog.String("dataset", dataset), slog.Int("attempt", attempt), slog.Any("error", err))
		}
		body = b
		return err
	})
	if c.metrics != nil {
		c.metrics.FetchLatency.WithLabelValues(dataset).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.observe(dataset, "error")
		c.logger.Warn("sheets fetch failed", slog.String("dataset", dataset), slog.Any("error", err))
		return nil, fmt.Errorf("%w: fetch %s: %v", port.ErrDataSource, dataset, err)
	}

	rows, err := DecodeRows(body, dataset)
	if err != nil {
		c.observe(dataset, "invalid")
		return nil, fmt.Errorf("%w: decode %s: %v", port.ErrDataSource, dataset, err)
	}
	c.observe(dataset, "ok")
	return rows, nil
}

func (c *Client) observe(dataset, outcome string) {
	if c.metrics != nil {
		c.metrics.Fetches.WithLabelValues(dataset, outcome).Inc()
	}
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, permanent(err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err = fmt.Errorf("non-2xx: %d body=%s", resp.StatusCode, strings.TrimSpace(string(b)))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return nil, err
		}
		return nil, permanent(err)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBody))
}

// DecodeRows accepts the response shapes produced by the sheet API:
//
//	[ {...}, {...} ]                    rows as objects
//	{ "data": [ {...} ] }               wrapped rows
//	{ "<dataset>": [ {...} ] }          rows keyed by dataset name
//	{ "values": [ [hdr...], [...] ] }   raw Sheets values matrix
//	null                                missing dataset
//
// Every shape yields a non-nil slice.
func DecodeRows(body []byte, dataset string) ([]domain.Row, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []domain.Row{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	switch v := raw.(type) {
	case []any:
		return objectRows(v), nil
	case map[string]any:
		for _, key := range []string{"data", dataset, "rows"} {
			if inner, ok := v[key]; ok {
				if inner == nil {
					return []domain.Row{}, nil
				}
				if arr, ok := inner.([]any); ok {
					return objectRows(arr), nil
				}
			}
		}
		if values, ok := v["values"].([]any); ok {
			return matrixRows(values), nil
		}
		return []domain.Row{}, nil
	default:
		return nil, fmt.Errorf("unexpected payload type %T", raw)
	}
}

func objectRows(arr []any) []domain.Row {
	out := make([]domain.Row, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, domain.Row(m))
		}
	}
	return out
}

// matrixRows converts a header-first values matrix into rows. Short rows
// leave trailing columns absent, as the Sheets API trims empty cells.
func matrixRows(values []any) []domain.Row {
	if len(values) == 0 {
		return []domain.Row{}
	}
	hdr, _ := values[0].([]any)
	headers := make([]string, len(hdr))
	for i, h := range hdr {
		headers[i] = strings.TrimSpace(fmt.Sprint(h))
	}
	out := make([]domain.Row, 0, len(values)-1)
	for _, line := range values[1:] {
		cells, _ := line.([]any)
		row := make(domain.Row, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(cells) {
				continue
			}
			row[h] = cells[i]
		}
		out = append(out, row)
	}
	return out
}
