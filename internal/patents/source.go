package patents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Source delivers the raw publications of one patent office for a single
// publication day.
type Source interface {
	Office() string
	Fetch(ctx context.Context, targetDate string) ([]Record, error)
}

type OfficeClientConfig struct {
	Office             string
	APIKey             string
	BaseURL            string
	RateLimitPerMinute int
	HTTPClient         *http.Client
}

// OfficeClient fetches daily publication lists from an office bulk API.
type OfficeClient struct {
	cfg       OfficeClientConfig
	limiter   <-chan time.Time
	limiterMu sync.Mutex
}

func NewOfficeClient(cfg OfficeClientConfig) (*OfficeClient, error) {
	cfg.Office = strings.ToUpper(strings.TrimSpace(cfg.Office))
	if cfg.Office == "" {
		return nil, errors.New("patent office code not configured")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("patent office %s has no base URL", cfg.Office)
	}
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = DefaultRateLimitPerMinute
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	interval := time.Minute / time.Duration(cfg.RateLimitPerMinute)
	ticker := time.NewTicker(interval)
	return &OfficeClient{cfg: cfg, limiter: ticker.C}, nil
}

func (c *OfficeClient) Office() string { return c.cfg.Office }

type officeAPIResponse struct {
	Error        bool             `json:"error"`
	Count        int              `json:"count"`
	Publications []map[string]any `json:"publications"`
}

func (c *OfficeClient) Fetch(ctx context.Context, targetDate string) ([]Record, error) {
	if err := c.waitRateLimit(ctx); err != nil {
		return nil, err
	}
	resp, err := c.fetchWithRetry(ctx, targetDate)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(resp.Publications))
	for _, raw := range resp.Publications {
		rec := flattenPublication(c.cfg.Office, raw)
		if rec.PublicationNumber == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *OfficeClient) waitRateLimit(ctx context.Context) error {
	c.limiterMu.Lock()
	defer c.limiterMu.Unlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.limiter:
		return nil
	}
}

func (c *OfficeClient) fetchWithRetry(ctx context.Context, targetDate string) (officeAPIResponse, error) {
	var lastErr error
	timeoutRetried := false
	for attempt := 1; attempt <= 4; attempt++ {
		resp, code, retryAfter, err := c.fetchOnce(ctx, targetDate)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if code == http.StatusBadRequest || code == http.StatusForbidden {
			return officeAPIResponse{}, err
		}
		if code == http.StatusTooManyRequests {
			if attempt == 4 {
				break
			}
			sleep := retryAfter
			if sleep <= 0 {
				sleep = backoffDelay(attempt)
			}
			if err := sleepCtx(ctx, sleep); err != nil {
				return officeAPIResponse{}, err
			}
			continue
		}
		if code >= 500 || isTimeoutError(err) {
			if isTimeoutError(err) {
				if timeoutRetried {
					break
				}
				timeoutRetried = true
			}
			if attempt == 4 {
				break
			}
			if err := sleepCtx(ctx, backoffDelay(attempt)); err != nil {
				return officeAPIResponse{}, err
			}
			continue
		}
		return officeAPIResponse{}, err
	}
	return officeAPIResponse{}, lastErr
}

func (c *OfficeClient) fetchOnce(ctx context.Context, targetDate string) (officeAPIResponse, int, time.Duration, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/publications?" + url.Values{
		"date":   {targetDate},
		"office": {c.cfg.Office},
	}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return officeAPIResponse{}, 0, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("X-Api-Key", c.cfg.APIKey)
	}

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return officeAPIResponse{}, 0, 0, err
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<20))

	retryAfter := parseRetryAfter(res.Header.Get("Retry-After"))
	if res.StatusCode == http.StatusTooManyRequests {
		return officeAPIResponse{}, res.StatusCode, retryAfter, fmt.Errorf("status code: %d", res.StatusCode)
	}
	if res.StatusCode >= 400 {
		return officeAPIResponse{}, res.StatusCode, retryAfter, fmt.Errorf("status code: %d body=%s", res.StatusCode, string(b))
	}

	var parsed officeAPIResponse
	if err := json.Unmarshal(b, &parsed); err != nil {
		return officeAPIResponse{}, res.StatusCode, retryAfter, err
	}
	if parsed.Error {
		return officeAPIResponse{}, res.StatusCode, retryAfter, fmt.Errorf("office api error flag true body=%s", string(b))
	}
	return parsed, res.StatusCode, retryAfter, nil
}

func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt-1)) * time.Second
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func parseRetryAfter(v string) time.Duration {
	if strings.TrimSpace(v) == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err == nil {
		return time.Duration(secs) * time.Second
	}
	return 0
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func flattenPublication(office string, raw map[string]any) Record {
	rec := Record{
		Office:            office,
		PublicationNumber: strings.TrimSpace(str(raw["publication_number"])),
		Title:             strings.TrimSpace(str(raw["title"])),
		Abstract:          strings.TrimSpace(str(raw["abstract"])),
		PublicationDate:   strings.TrimSpace(str(raw["publication_date"])),
		Assignee:          strings.TrimSpace(str(raw["assignee"])),
		SourceURL:         strings.TrimSpace(str(raw["source_url"])),
	}
	if arr, ok := raw["applicants"].([]any); ok {
		for _, item := range arr {
			name := strings.TrimSpace(str(item))
			if name == "" {
				continue
			}
			rec.Applicants = append(rec.Applicants, name)
		}
	}
	return rec
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
