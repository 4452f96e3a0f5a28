package bot

import (
	"testing"
	"time"

	"github.com/coinherald/coinherald/internal/domain"
)

func TestTitleFromSnake(t *testing.T) {
	cases := map[string]string{
		"final_balance":  "Final balance",
		"total_received": "Total received",
		"n_tx":           "N tx",
		"last":           "Last",
		"":               "",
	}
	for in, want := range cases {
		if got := titleFromSnake(in); got != want {
			t.Errorf("titleFromSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := map[float64]string{
		957.36:    "957.36",
		6000050:   "6,000,050.00",
		239.339:   "239.34",
		1234567.5: "1,234,567.50",
	}
	for in, want := range cases {
		if got := formatUSD(in); got != want {
			t.Errorf("formatUSD(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestPresenceMessages_OrderAndSymbol(t *testing.T) {
	snap := domain.TickerSnapshot{M15: 478.68, Last: 478.68, Buy: 478.55, Sell: 478.68, Symbol: "$"}
	got := presenceMessages(snap)
	want := []string{"15m: $478.68", "Last: $478.68", "Buy: $478.55", "Sell: $478.68"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUTCFooter(t *testing.T) {
	at := time.Date(2014, 9, 8, 12, 0, 0, 0, time.UTC)
	if got := utcFooter(at); got != "Generated at 2014-09-08 12:00:00 UTC" {
		t.Fatalf("got %q", got)
	}
}

func TestCurrencyMatchers(t *testing.T) {
	cases := []struct {
		in    string
		value string
		code  string
		match bool
	}{
		{"100USD", "100", "USD", true},
		{"100 USD", "100", "USD", true},
		{"0.5-BTC", "0.5", "BTC", true},
		{"100EUR", "", "", false},
		{"USD without a number", "", "", false},
	}
	for _, tc := range cases {
		var found bool
		for _, p := range currencyMatchers {
			if m := p.re.FindStringSubmatch(tc.in); m != nil {
				found = true
				if m[1] != tc.value || m[2] != tc.code {
					t.Errorf("%q: extracted (%q, %q), want (%q, %q)", tc.in, m[1], m[2], tc.value, tc.code)
				}
				break
			}
		}
		if found != tc.match {
			t.Errorf("%q: match = %v, want %v", tc.in, found, tc.match)
		}
	}
}
