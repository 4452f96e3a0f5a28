package domain

import "strconv"

// Quote is a single labeled price from the ticker snapshot.
type Quote struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TickerSnapshot is one point-in-time set of USD quotes from the provider.
// It is transient: fetched fresh on every poll cycle and never persisted.
type TickerSnapshot struct {
	M15    float64 `json:"15m"`
	Last   float64 `json:"last"`
	Buy    float64 `json:"buy"`
	Sell   float64 `json:"sell"`
	Symbol string  `json:"symbol"`
}

// Quotes returns the labeled quotes in the provider's documented order,
// excluding the currency symbol. Labels are display-ready ("15m", "Last", ...).
func (s TickerSnapshot) Quotes() []Quote {
	return []Quote{
		{Label: "15m", Value: s.M15},
		{Label: "Last", Value: s.Last},
		{Label: "Buy", Value: s.Buy},
		{Label: "Sell", Value: s.Sell},
	}
}

// FormatValue renders a quote value the way the provider prints it: no
// trailing zeros, no exponent.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
