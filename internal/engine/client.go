package engine

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/internal/common"
)

// Config holds client parameters for the recognition engine.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// Client calls the hosted recognition engine over HTTP JSON. The engine
// is opaque: accuracy and output shape are its problem, retry/backoff
// and error classification are ours.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 500 * time.Millisecond
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// Recognize submits document bytes and returns the engine's loosely
// typed result. Transient failures are retried with exponential backoff
// up to MaxRetries; quota exhaustion and permanent rejections are not.
func (c *Client) Recognize(ctx context.Context, content []byte, filename string) (Output, error) {
	rid := uuid.New().String()
	body := map[string]any{
		"filename": filename,
		"content":  base64.StdEncoding.EncodeToString(content),
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/recognize"

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.cfg.RetryBase << (attempt - 1)
			c.log.Warn("engine.retry", "req_id", rid, "attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-ctx.Done():
				return Output{}, common.Transient("engine recognize", ctx.Err())
			case <-time.After(backoff):
			}
		}

		raw, status, err := c.post(ctx, rid, endpoint, body)
		switch {
		case err == nil:
			return decodeOutput(raw)
		case status == http.StatusTooManyRequests:
			c.log.Warn("engine.quota_exceeded", "req_id", rid)
			return Output{}, common.ErrQuotaExceeded
		case status >= 400 && status < 500:
			return Output{}, common.Permanent("engine recognize", err)
		default:
			// network error or 5xx
			lastErr = err
		}
	}
	return Output{}, common.Transient("engine recognize", lastErr)
}

func (c *Client) post(ctx context.Context, rid, url string, body any) ([]byte, int, error) {
	start := time.Now()
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, common.Permanent("encode engine request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	c.log.Info("engine.http.request", "req_id", rid, "url", url, "content_length", len(bs))

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("engine.http.send_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, 0, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("engine.http.body_close_error", "req_id", rid, "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	c.log.Info("engine.http.response", "req_id", rid, "status", resp.StatusCode,
		"bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}

func decodeOutput(raw []byte) (Output, error) {
	var out Output
	if err := json.Unmarshal(raw, &out); err != nil {
		return Output{}, common.Permanent("decode engine response", err)
	}
	if out.Fields == nil {
		out.Fields = map[string]any{}
	}
	out.Raw = raw
	return out, nil
}
