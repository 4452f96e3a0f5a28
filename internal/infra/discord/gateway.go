package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"
	"github.com/coinherald/coinherald/internal/bot"
	"github.com/coinherald/coinherald/internal/config"
	"github.com/coinherald/coinherald/internal/domain"
)

// Gateway adapts the platform SDK to the bot package's Gateway interface
// and feeds inbound events (messages, guild creates) to registered
// callbacks. All platform-specific types stay inside this package.
type Gateway struct {
	session *discordgo.Session
	logger  *slog.Logger
}

func New(cfg config.DiscordConfig, logger *slog.Logger) (*Gateway, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return &Gateway{session: session, logger: logger}, nil
}

// OnMessage registers the inbound message callback. FromSelf is resolved
// here, against the session identity, so the router never needs SDK state.
func (g *Gateway) OnMessage(fn func(ctx context.Context, msg bot.Message)) {
	g.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil {
			return
		}
		fromSelf := s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID
		fn(context.Background(), bot.Message{
			ChannelID:  m.ChannelID,
			AuthorID:   m.Author.ID,
			AuthorName: m.Author.Username,
			Content:    m.Content,
			FromSelf:   fromSelf,
		})
	})
}

// OnGuildCreate registers the server-membership callback. The SDK fires it
// once per guild after connecting, which doubles as the startup backfill.
// Only text channels are forwarded.
func (g *Gateway) OnGuildCreate(fn func(ctx context.Context, server domain.Server)) {
	g.session.AddHandler(func(_ *discordgo.Session, gc *discordgo.GuildCreate) {
		server := domain.Server{ID: gc.ID, Name: gc.Name}
		for _, ch := range gc.Channels {
			if ch.Type != discordgo.ChannelTypeGuildText {
				continue
			}
			server.Channels = append(server.Channels, domain.Channel{
				ID:       ch.ID,
				ServerID: gc.ID,
				Name:     ch.Name,
			})
		}
		fn(context.Background(), server)
	})
}

// Open connects the websocket session. Event callbacks must be registered
// before calling it.
func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	g.logger.Info("gateway connected")
	return nil
}

func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) SendMessage(_ context.Context, channelID, text string) error {
	_, err := g.session.ChannelMessageSend(channelID, text)
	return err
}

func (g *Gateway) SendEmbed(_ context.Context, channelID string, embed bot.Embed) error {
	_, err := g.session.ChannelMessageSendEmbed(channelID, toMessageEmbed(embed))
	return err
}

func (g *Gateway) SendFile(_ context.Context, channelID, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening attachment: %w", err)
	}
	defer f.Close()
	_, err = g.session.ChannelFileSend(channelID, filepath.Base(path), f)
	return err
}

func (g *Gateway) SetPresence(_ context.Context, status string) error {
	return g.session.UpdateGameStatus(0, status)
}

func toMessageEmbed(e bot.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
	}
	if e.Author != "" {
		out.Author = &discordgo.MessageEmbedAuthor{Name: e.Author}
	}
	if e.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:  f.Name,
			Value: f.Value,
		})
	}
	return out
}
