package bot

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/coinherald/coinherald/internal/domain"
	"github.com/dustin/go-humanize"
)

// titleFromSnake turns a provider field name like "final_balance" into a
// display label like "Final balance".
func titleFromSnake(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// formatUSD renders a dollar amount with thousands separators and two
// decimal places.
func formatUSD(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// presenceMessages derives the ordered presence strings from a snapshot:
// one per quote field, symbol prefixed, e.g. "Last: $478.68".
func presenceMessages(snap domain.TickerSnapshot) []string {
	quotes := snap.Quotes()
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, fmt.Sprintf("%s: %s%s", q.Label, snap.Symbol, domain.FormatValue(q.Value)))
	}
	return out
}

// utcFooter is the human-readable generation footer for data replies.
func utcFooter(t time.Time) string {
	return "Generated at " + t.UTC().Format("2006-01-02 15:04:05") + " UTC"
}
