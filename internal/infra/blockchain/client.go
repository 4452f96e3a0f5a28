package blockchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/coinherald/coinherald/internal/config"
	"github.com/coinherald/coinherald/internal/domain"
)

// ErrNoData marks a non-2xx answer from the provider. Callers treat it as
// "no data right now", not as a fault worth escalating.
var ErrNoData = errors.New("no data from provider")

// Client wraps the market-data provider's public HTTP API: /ticker, /tobtc,
// /charts/<name> and /balance. All calls are synchronous and context-bound.
type Client struct {
	cfg        config.BlockchainConfig
	httpClient *http.Client
}

func NewClient(cfg config.BlockchainConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Ticker fetches the current USD quote snapshot. A non-2xx status maps to
// ErrNoData.
func (c *Client) Ticker(ctx context.Context) (domain.TickerSnapshot, error) {
	resp, err := c.get(ctx, "ticker", nil)
	if err != nil {
		return domain.TickerSnapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.TickerSnapshot{}, fmt.Errorf("%w: %s", ErrNoData, resp.Status)
	}

	// The body is keyed by currency code; only USD is relayed.
	var data map[string]domain.TickerSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return domain.TickerSnapshot{}, fmt.Errorf("decoding ticker: %w", err)
	}
	snap, ok := data["USD"]
	if !ok {
		return domain.TickerSnapshot{}, fmt.Errorf("%w: no USD entry", ErrNoData)
	}
	return snap, nil
}

// ToBTC converts a fiat value to BTC through /tobtc. The endpoint answers
// with a bare numeric body, not JSON.
func (c *Client) ToBTC(ctx context.Context, value, currency string) (string, error) {
	q := url.Values{}
	q.Set("value", value)
	q.Set("currency", currency)

	resp, err := c.get(ctx, "tobtc", q)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrNoData, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading tobtc body: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}

// Chart fetches the named chart series for the given timespan.
func (c *Client) Chart(ctx context.Context, name, timespan string) (domain.ChartSeries, error) {
	q := url.Values{}
	q.Set("timespan", timespan)
	q.Set("format", "json")

	resp, err := c.get(ctx, "charts/"+name, q)
	if err != nil {
		return domain.ChartSeries{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ChartSeries{}, fmt.Errorf("%w: %s", ErrNoData, resp.Status)
	}
	var series domain.ChartSeries
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return domain.ChartSeries{}, fmt.Errorf("decoding chart %s: %w", name, err)
	}
	return series, nil
}

// Balance fetches balance data for a single address. The body is keyed by
// address.
func (c *Client) Balance(ctx context.Context, address string) (domain.AddressBalance, error) {
	q := url.Values{}
	q.Set("active", address)

	resp, err := c.get(ctx, "balance", q)
	if err != nil {
		return domain.AddressBalance{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.AddressBalance{}, fmt.Errorf("%w: %s", ErrNoData, resp.Status)
	}
	var data map[string]domain.AddressBalance
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return domain.AddressBalance{}, fmt.Errorf("decoding balance: %w", err)
	}
	bal, ok := data[address]
	if !ok {
		return domain.AddressBalance{}, fmt.Errorf("%w: address not in response", ErrNoData)
	}
	return bal, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (*http.Response, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path, _ = url.JoinPath(u.Path, strings.Split(path, "/")...)
	if q != nil {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "coinherald/1.0"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
