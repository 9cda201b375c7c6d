package transport

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mwittig/logger-winston/config"
)

// HTTPOptions configures an HTTP transport. Each event is shipped as one
// JSON body per request; delivery failures go to the diagnostic sink,
// never to the logging call site.
type HTTPOptions struct {
	Options `mapstructure:",squash"`

	URL     string            `mapstructure:"url" validate:"required,url"`
	Method  string            `mapstructure:"method" validate:"omitempty,oneof=POST PUT"`
	Headers map[string]string `mapstructure:"headers"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `mapstructure:"timeout" validate:"omitempty,min=1"`
}

type httpTransport struct {
	opts   HTTPOptions
	level  zerolog.Level
	client *http.Client
}

// NewHTTP constructs an HTTP transport posting JSON event lines to the
// configured endpoint.
func NewHTTP(cfg config.TransportConfig) (Transport, error) {
	opts := HTTPOptions{Method: http.MethodPost, Timeout: 5}
	if err := decodeOptions(cfg, &opts); err != nil {
		return nil, fmt.Errorf("http transport: %w", err)
	}

	return &httpTransport{
		opts:  opts,
		level: opts.MinLevel(),
		client: &http.Client{
			Timeout: time.Duration(opts.Timeout) * time.Second,
		},
	}, nil
}

func (t *httpTransport) Write(p []byte) (int, error) {
	req, err := http.NewRequest(t.opts.Method, t.opts.URL, bytes.NewReader(p))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range t.opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return 0, fmt.Errorf("endpoint %s responded %s", t.opts.URL, resp.Status)
	}
	return len(p), nil
}

func (t *httpTransport) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < t.level {
		return len(p), nil
	}
	return t.Write(p)
}

func (t *httpTransport) Name() string  { return t.opts.Name }
func (t *httpTransport) Kind() string  { return "Http" }
func (t *httpTransport) Label() string { return t.opts.Label }

func (t *httpTransport) Level() zerolog.Level { return t.level }
func (t *httpTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
