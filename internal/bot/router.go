package bot

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// supportedCurrencies are the codes scanned for in bare (non-prefixed)
// messages, in match-priority order.
var supportedCurrencies = []string{"USD", "BTC"}

// fetchErrReply is the single user-visible reply for upstream failures
// inside a handler invocation.
const fetchErrReply = "Could not fetch data from blockchain.info. Try again later."

type currencyPattern struct {
	code string
	re   *regexp.Regexp
}

var currencyMatchers = buildCurrencyMatchers()

// buildCurrencyMatchers compiles one pattern per supported code:
// a number, an optional single non-alphanumeric separator, then the code.
func buildCurrencyMatchers() []currencyPattern {
	out := make([]currencyPattern, 0, len(supportedCurrencies))
	for _, code := range supportedCurrencies {
		out = append(out, currencyPattern{
			code: code,
			re:   regexp.MustCompile(`([\d.]+)[^A-Za-z0-9]?(` + code + `)`),
		})
	}
	return out
}

func currencyPatterns() []currencyPattern { return currencyMatchers }

// Router classifies inbound messages and drives them to handlers. It is
// safe for concurrent invocations from different channels: all mutable
// state lives behind the registry lock and the preference store.
type Router struct {
	registry *Registry
	text     *TextCommands
	commands *Commands
	prefs    PreferenceStore
	gw       Gateway
	prefix   string
	logger   *slog.Logger
	cmdRe    *regexp.Regexp
}

func NewRouter(prefix string, registry *Registry, text *TextCommands, commands *Commands, prefs PreferenceStore, gw Gateway, logger *slog.Logger) *Router {
	if prefix == "" {
		prefix = "!"
	}
	return &Router{
		registry: registry,
		text:     text,
		commands: commands,
		prefs:    prefs,
		gw:       gw,
		prefix:   prefix,
		logger:   logger,
		cmdRe:    regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `([A-Za-z]+) ?([A-Za-z0-9]*)`),
	}
}

// Route handles one inbound message event. It only ever side-effects
// through the gateway; nothing is returned to the platform layer.
func (r *Router) Route(ctx context.Context, msg Message) {
	// Self check comes first: the bot never reacts to its own output,
	// not even to an unignore.
	if msg.FromSelf {
		return
	}

	content := strings.TrimSpace(msg.Content)

	ignored, err := r.prefs.IsIgnored(ctx, msg.ChannelID)
	if err != nil {
		// An unreadable flag must not mute the channel.
		r.logger.Error("ignore lookup failed", slog.String("channel_id", msg.ChannelID), slog.String("err", err.Error()))
		ignored = false
	}
	if ignored {
		// The one recovery path out of the muted state.
		if strings.HasPrefix(content, r.prefix+"unignore") {
			r.runHandler(ctx, msg.ChannelID, "unignore", HandlerFunc(r.commands.unignore), "")
		}
		return
	}

	if strings.HasPrefix(content, r.prefix) {
		r.dispatch(ctx, msg.ChannelID, content)
		return
	}

	// Bare message: scan for "<number><code>" conversion requests.
	for _, p := range currencyMatchers {
		if m := p.re.FindStringSubmatch(content); m != nil {
			r.logger.Info("converting currency",
				slog.String("author", msg.AuthorName),
				slog.String("code", m[2]),
			)
			if err := r.commands.Convert(ctx, msg.ChannelID, m[1], m[2]); err != nil {
				r.reportHandlerError(ctx, msg.ChannelID, "convert", err)
			}
			return
		}
	}
	// Not every message is a command attempt; no match means no action.
}

// dispatch resolves a prefixed message: registry first, text commands
// second, unknown-command reply last.
func (r *Router) dispatch(ctx context.Context, channelID, content string) {
	m := r.cmdRe.FindStringSubmatch(content)
	if m == nil {
		return
	}
	name, arg := m[1], m[2]

	if h, ok := r.registry.Resolve(name); ok {
		r.runHandler(ctx, channelID, name, h, arg)
		return
	}

	if reply, ok := r.text.Lookup(name); ok {
		r.send(ctx, channelID, reply)
		return
	}

	r.send(ctx, channelID, fmt.Sprintf("%s is not a command. Use %scommands for list of all commands.", name, r.prefix))
}

func (r *Router) runHandler(ctx context.Context, channelID, name string, h Handler, arg string) {
	if err := h.Handle(ctx, channelID, arg); err != nil {
		r.reportHandlerError(ctx, channelID, name, err)
	}
}

// reportHandlerError contains a failed invocation: log it, answer the
// originating channel once, never propagate.
func (r *Router) reportHandlerError(ctx context.Context, channelID, name string, err error) {
	r.logger.Error("command failed",
		slog.String("command", name),
		slog.String("channel_id", channelID),
		slog.String("err", err.Error()),
	)
	r.send(ctx, channelID, fetchErrReply)
}

func (r *Router) send(ctx context.Context, channelID, text string) {
	if err := r.gw.SendMessage(ctx, channelID, text); err != nil {
		r.logger.Error("send failed", slog.String("channel_id", channelID), slog.String("err", err.Error()))
	}
}
