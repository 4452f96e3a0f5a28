package bot

import (
	"context"

	"github.com/coinherald/coinherald/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Gateway is the outbound side of the messaging platform: plain messages,
// rich embeds, file attachments and the bot's presence string.
type Gateway interface {
	SendMessage(ctx context.Context, channelID, text string) error
	SendEmbed(ctx context.Context, channelID string, embed Embed) error
	SendFile(ctx context.Context, channelID, path string) error
	SetPresence(ctx context.Context, status string) error
}

// MarketData is the market-data provider: ticker snapshot, fiat conversion,
// chart series and address balances.
type MarketData interface {
	Ticker(ctx context.Context) (domain.TickerSnapshot, error)
	ToBTC(ctx context.Context, value, currency string) (string, error)
	Chart(ctx context.Context, name, timespan string) (domain.ChartSeries, error)
	Balance(ctx context.Context, address string) (domain.AddressBalance, error)
}

// PreferenceStore is the durable per-channel mute state plus server
// registration.
type PreferenceStore interface {
	IsIgnored(ctx context.Context, channelID string) (bool, error)
	SetIgnored(ctx context.Context, channelID string, ignored bool) error
	RegisterServer(ctx context.Context, server domain.Server) error
}

// Renderer turns a chart series into an image artifact on disk.
type Renderer interface {
	Render(series domain.ChartSeries) (string, error)
}

// Embed is a platform-neutral rich message.
type Embed struct {
	Title       string
	Description string
	Author      string
	Footer      string
	Fields      []EmbedField
}

type EmbedField struct {
	Name  string
	Value string
}

// Message is one inbound channel message event. FromSelf is set by the
// gateway adapter when the author is the bot's own identity.
type Message struct {
	ChannelID  string
	AuthorID   string
	AuthorName string
	Content    string
	FromSelf   bool
}
