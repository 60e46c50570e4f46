package rates

import (
	"CurrencyConverter/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.frankfurter.dev"

var (
	ErrUnexpectedStatus = errors.New("fetcher: unexpected http status")
	ErrRateNotFound     = errors.New("fetcher: no rate in response")
)

type latestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Rates  map[string]float64 `json:"rates"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	limiter *rate.Limiter
}

type Option func(*Client)

// WithRateLimit caps outbound requests per second; zero or less disables the limit.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithTimeout sets an overall request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.HTTP = &http.Client{Timeout: d}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Currencies returns the supported codes in the order the API lists them.
func (c *Client) Currencies(ctx context.Context) ([]model.CurrencyCode, error) {
	resp, err := c.get(ctx, c.BaseURL+"/v1/currencies")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	keys, err := decodeObjectKeys(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetcher: decode currencies: %w", err)
	}
	codes := make([]model.CurrencyCode, 0, len(keys))
	for _, k := range keys {
		codes = append(codes, model.CurrencyCode(k))
	}
	return codes, nil
}

// Latest converts req.Amount and returns the converted value for req.To.
func (c *Client) Latest(ctx context.Context, req model.ConversionRequest) (float64, error) {
	q := url.Values{}
	q.Set("amount", model.FormatNumber(req.Amount))
	q.Set("from", string(req.From))
	q.Set("to", string(req.To))

	resp, err := c.get(ctx, c.BaseURL+"/v1/latest?"+q.Encode())
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var r latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return 0, fmt.Errorf("fetcher: decode rates: %w", err)
	}
	value, ok := r.Rates[string(req.To)]
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s", ErrRateNotFound, req.From, req.To)
	}
	return value, nil
}

func (c *Client) get(ctx context.Context, target string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("fetcher: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return resp, nil
}

// decodeObjectKeys reads a JSON object and returns its keys in document order.
func decodeObjectKeys(r io.Reader) ([]string, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return keys, nil
}
