package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"resource_catalog/internal/domain"
)

const userAgent = "rcsync/1.0"

// Config holds HTTP transport configuration.
type Config struct {
	Timeout           time.Duration
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	RequestsPerSecond float64
}

// Response is the outcome of a completed request. Non-200 statuses are
// reported here rather than as errors so callers can apply their own policy.
type Response struct {
	Status int
	Data   []byte
}

// ProgressFunc is called as a download advances. total is -1 when the
// server does not announce a length.
type ProgressFunc func(total, completed int64)

type HTTP struct {
	httpClient     *http.Client
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *HTTP {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &HTTP{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(limit, 1),
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "transport"),
	}
}

// Read fetches uri into memory.
func (t *HTTP) Read(ctx context.Context, uri string) (*Response, error) {
	var out *Response
	err := t.withRetry(ctx, uri, func() (int, error) {
		resp, err := t.get(ctx, uri)
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, fmt.Errorf("read body: %w", err)
		}
		out = &Response{Status: resp.StatusCode, Data: data}
		return resp.StatusCode, nil
	})
	if err != nil {
		return nil, &domain.TransportError{URL: uri, Err: err}
	}
	return out, nil
}

// Download streams uri into dest. The destination is only written for a
// 200 response and is removed again if the transfer fails.
func (t *HTTP) Download(ctx context.Context, uri, dest string, onProgress ProgressFunc) (*Response, error) {
	var out *Response
	err := t.withRetry(ctx, uri, func() (int, error) {
		resp, err := t.get(ctx, uri)
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()

		out = &Response{Status: resp.StatusCode}
		if resp.StatusCode != http.StatusOK {
			return resp.StatusCode, nil
		}

		if err := writeFile(dest, resp.Body, resp.ContentLength, onProgress); err != nil {
			_ = os.Remove(dest)
			return resp.StatusCode, err
		}
		return resp.StatusCode, nil
	})
	if err != nil {
		_ = os.Remove(dest)
		return nil, &domain.TransportError{URL: uri, Err: err}
	}
	return out, nil
}

func (t *HTTP) get(ctx context.Context, uri string) (*http.Response, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

var errServerStatus = errors.New("server error")

// withRetry retries network failures and 5xx responses with exponential backoff.
func (t *HTTP) withRetry(ctx context.Context, uri string, do func() (int, error)) error {
	var err error
	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		var status int
		status, err = do()
		if err == nil && status < http.StatusInternalServerError {
			return nil
		}
		if err == nil {
			err = fmt.Errorf("%w: status %d", errServerStatus, status)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if attempt == t.maxAttempts {
			break
		}

		backoff := t.calculateBackoff(attempt)
		t.logger.Warn("request failed, retrying",
			"url", uri,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	// The last 5xx is a valid response, not a transport failure.
	if errors.Is(err, errServerStatus) {
		return nil
	}
	return fmt.Errorf("after %d attempts: %w", t.maxAttempts, err)
}

func (t *HTTP) calculateBackoff(attempt int) time.Duration {
	backoff := t.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if t.maxBackoff > 0 && backoff > t.maxBackoff {
		backoff = t.maxBackoff
	}
	return backoff
}

func writeFile(dest string, body io.Reader, total int64, onProgress ProgressFunc) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create destination dir: %w", err)
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	if onProgress != nil {
		w = &progressWriter{w: f, total: total, onProgress: onProgress}
	}
	if _, err := io.Copy(w, body); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return f.Close()
}

type progressWriter struct {
	w          io.Writer
	total      int64
	completed  int64
	onProgress ProgressFunc
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.completed += int64(n)
	p.onProgress(p.total, p.completed)
	return n, err
}
