package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultTimespan = "5weeks"

// providerName is shown as the embed author on data replies.
const providerName = "blockchain.info"

// chartCommands maps command names to provider chart slugs.
var chartCommands = []struct {
	name        string
	chart       string
	description string
}{
	{"marketvalue", "market-price", "Market value chart"},
	{"circulation", "total-bitcoins", "Bitcoins in circulation chart"},
	{"marketcap", "market-cap", "Market capitalization chart"},
	{"tradevolume", "trade-volume", "USD trade volume chart"},
}

// Commands holds the built-in handlers and their collaborators.
type Commands struct {
	market   MarketData
	renderer Renderer
	gw       Gateway
	prefs    PreferenceStore
	registry *Registry
	text     *TextCommands
	logger   *slog.Logger
	now      func() time.Time
}

// NewCommands builds the built-in handler set and registers it.
func NewCommands(market MarketData, renderer Renderer, gw Gateway, prefs PreferenceStore, registry *Registry, text *TextCommands, logger *slog.Logger) *Commands {
	c := &Commands{
		market:   market,
		renderer: renderer,
		gw:       gw,
		prefs:    prefs,
		registry: registry,
		text:     text,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}

	registry.Register("convert", "Convert USD to BTC", HandlerFunc(c.convertCommand))
	for _, cc := range chartCommands {
		registry.Register(cc.name, cc.description, c.chartHandler(cc.chart))
	}
	registry.Register("balance", "Balance of a BTC address", HandlerFunc(c.balance))
	registry.Register("commands", "List of commands", HandlerFunc(c.listCommands))
	registry.Register("ignore", "Mute this channel", HandlerFunc(c.ignore))
	registry.Register("unignore", "Unmute this channel", HandlerFunc(c.unignore))

	return c
}

// convertCommand is the registry entry point: its single argument carries
// both amount and code ("!convert 100USD"), parsed with the same patterns
// the router uses for bare messages.
func (c *Commands) convertCommand(ctx context.Context, channelID, arg string) error {
	for _, p := range currencyPatterns() {
		if m := p.re.FindStringSubmatch(arg); m != nil {
			return c.Convert(ctx, channelID, m[1], m[2])
		}
	}
	return c.gw.SendMessage(ctx, channelID, "Usage: !convert <amount><currency>, e.g. !convert 100USD")
}

// Convert answers a currency conversion for USD or BTC. Other codes get an
// explicit unsupported-currency reply.
func (c *Commands) Convert(ctx context.Context, channelID, amount, code string) error {
	switch strings.ToUpper(code) {
	case "USD":
		result, err := c.market.ToBTC(ctx, amount, code)
		if err != nil {
			return fmt.Errorf("tobtc %s %s: %w", amount, code, err)
		}
		return c.gw.SendEmbed(ctx, channelID, Embed{
			Author:      providerName,
			Description: fmt.Sprintf("%s %s -> %s BTC", amount, code, result),
		})
	case "BTC":
		amt, err := decimal.NewFromString(amount)
		if err != nil {
			return c.gw.SendMessage(ctx, channelID, fmt.Sprintf("%s is not a valid amount.", amount))
		}
		snap, err := c.market.Ticker(ctx)
		if err != nil {
			return fmt.Errorf("ticker for convert: %w", err)
		}
		usd := amt.Mul(decimal.NewFromFloat(snap.Last))
		return c.gw.SendEmbed(ctx, channelID, Embed{
			Author:      providerName,
			Description: fmt.Sprintf("%s BTC -> ~$%s USD", amount, formatUSD(usd.InexactFloat64())),
		})
	default:
		return c.gw.SendMessage(ctx, channelID,
			fmt.Sprintf("%s is not a supported currency. Only USD and BTC conversions are available.", code))
	}
}

// chartHandler builds the generic fetch-render-send handler for one chart.
func (c *Commands) chartHandler(chart string) HandlerFunc {
	return func(ctx context.Context, channelID, timespan string) error {
		if timespan == "" {
			timespan = defaultTimespan
		}
		series, err := c.market.Chart(ctx, chart, timespan)
		if err != nil {
			return fmt.Errorf("chart %s: %w", chart, err)
		}
		path, err := c.renderer.Render(series)
		if err != nil {
			return fmt.Errorf("render %s: %w", chart, err)
		}
		return c.gw.SendFile(ctx, channelID, path)
	}
}

func (c *Commands) balance(ctx context.Context, channelID, address string) error {
	if address == "" {
		return c.gw.SendMessage(ctx, channelID, "Usage: !balance <address>")
	}
	bal, err := c.market.Balance(ctx, address)
	if err != nil {
		return fmt.Errorf("balance %s: %w", address, err)
	}
	return c.gw.SendEmbed(ctx, channelID, Embed{
		Title:  address,
		Author: providerName,
		Fields: []EmbedField{
			{Name: titleFromSnake("final_balance"), Value: formatBTCAmount(bal.FinalBalance)},
			{Name: "Number of transactions", Value: strconv.FormatInt(bal.NTx, 10)},
			{Name: titleFromSnake("total_received"), Value: formatBTCAmount(bal.TotalReceived)},
		},
		Footer: utcFooter(c.now()),
	})
}

func formatBTCAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// listCommands renders the live registry plus the current text-command
// names. Both are read at call time, not snapshotted at construction.
func (c *Commands) listCommands(ctx context.Context, channelID, _ string) error {
	embed := Embed{Title: "Commands"}
	for _, e := range c.registry.Entries() {
		embed.Fields = append(embed.Fields, EmbedField{Name: e.Name, Value: e.Description})
	}
	for _, name := range c.text.Names() {
		embed.Fields = append(embed.Fields, EmbedField{Name: name, Value: "Text command"})
	}
	return c.gw.SendEmbed(ctx, channelID, embed)
}

// ignore and unignore are fire-and-forget mutations: a store failure is
// logged and swallowed so the router never sees it as a fetch error.
func (c *Commands) ignore(ctx context.Context, channelID, _ string) error {
	if err := c.prefs.SetIgnored(ctx, channelID, true); err != nil {
		c.logger.Warn("ignore failed", slog.String("channel_id", channelID), slog.String("err", err.Error()))
	}
	return nil
}

func (c *Commands) unignore(ctx context.Context, channelID, _ string) error {
	if err := c.prefs.SetIgnored(ctx, channelID, false); err != nil {
		c.logger.Warn("unignore failed", slog.String("channel_id", channelID), slog.String("err", err.Error()))
	}
	return nil
}
