package planapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// maxRetries is how many additional attempts follow a transient failure.
const maxRetries = 3

// apiError carries the upstream HTTP status so the retry policy can tell
// transient failures (429, 5xx) from permanent ones.
type apiError struct {
	Status     int
	RetryAfter *time.Duration
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("planning api returned %v: %v", e.Status, e.Body)
}

func (e *apiError) retryable() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// doJSON issues one GET with the retry policy applied and decodes the
// response body into out. Non-retryable errors and exhausted retries
// propagate to the caller.
func (c *Client) doJSON(ctx context.Context, path string, query url.Values, out any) error {
	for attempt := 0; ; attempt++ {
		body, err := c.doOnce(ctx, path, query)
		if err == nil {
			return errors.Wrapf(json.Unmarshal(body, out), "GET %v", path)
		}

		var ae *apiError
		if !errors.As(err, &ae) || !ae.retryable() || attempt >= maxRetries {
			return err
		}

		delay := time.Duration(1<<uint(attempt+1)) * time.Second
		if ae.RetryAfter != nil {
			delay = *ae.RetryAfter
		}

		c.log.WithFields(map[string]any{
			"path":    path,
			"status":  ae.Status,
			"attempt": attempt + 1,
		}).Warnf("transient upstream failure, retrying in %v", delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (c *Client) doOnce(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "GET %v", path)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, errors.Wrapf(err, "GET %v", path)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "GET %v", path)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, &apiError{
				Status:     resp.StatusCode,
				RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
				Body:       strings.TrimSpace(string(body)),
			}
		}

		return body, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

func parseRetryAfter(header string) *time.Duration {
	if header == "" {
		return nil
	}

	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return nil
	}

	d := time.Duration(secs) * time.Second
	return &d
}
