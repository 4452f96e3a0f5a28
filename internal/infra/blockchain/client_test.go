package blockchain

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coinherald/coinherald/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.BlockchainConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

func TestTicker_Success(t *testing.T) {
	body := `{"USD": {"15m": 478.68, "last": 478.68, "buy": 478.55, "sell": 478.68, "symbol": "$"}}`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ticker" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(body))
	})

	snap, err := c.Ticker(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Last != 478.68 || snap.Buy != 478.55 || snap.Symbol != "$" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestTicker_Non200IsNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Ticker(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestTicker_MissingUSDIsNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"EUR": {"last": 1.0, "symbol": "€"}}`))
	})

	_, err := c.Ticker(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestToBTC_TrimsPlainTextBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tobtc" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("value"); got != "100" {
			t.Errorf("value = %q, want 100", got)
		}
		if got := r.URL.Query().Get("currency"); got != "USD" {
			t.Errorf("currency = %q, want USD", got)
		}
		w.Write([]byte("0.00209633\n"))
	})

	got, err := c.ToBTC(context.Background(), "100", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0.00209633" {
		t.Fatalf("got %q", got)
	}
}

func TestChart_DecodesSeries(t *testing.T) {
	body := `{"name": "Market Price (USD)", "unit": "USD", "period": "day",
		"values": [{"x": 1410220800, "y": 478.68}, {"x": 1410307200, "y": 480.23}]}`
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/charts/market-price" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("timespan"); got != "5weeks" {
			t.Errorf("timespan = %q, want 5weeks", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		w.Write([]byte(body))
	})

	series, err := c.Chart(context.Background(), "market-price", "5weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Name != "Market Price (USD)" || series.Unit != "USD" || series.Period != "day" {
		t.Fatalf("unexpected series header: %+v", series)
	}
	if len(series.Values) != 2 || series.Values[1].Y != 480.23 {
		t.Fatalf("unexpected values: %+v", series.Values)
	}
}

func TestBalance_KeyedByAddress(t *testing.T) {
	const addr = "1ADDRESS"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("active"); got != addr {
			t.Errorf("active = %q, want %q", got, addr)
		}
		w.Write([]byte(`{"1ADDRESS": {"final_balance": 0.004, "n_tx": 2, "total_received": 0.004}}`))
	})

	bal, err := c.Balance(context.Background(), addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bal.FinalBalance != 0.004 || bal.NTx != 2 || bal.TotalReceived != 0.004 {
		t.Fatalf("unexpected balance: %+v", bal)
	}
}

func TestBalance_UnknownAddressIsNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.Balance(context.Background(), "1ADDRESS")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
