package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coinherald/coinherald/internal/domain"
	repopg "github.com/coinherald/coinherald/internal/repository/postgres"
)

// ErrUnknownChannel is returned for mutations on channels that were never
// registered. Callers downgrade it to a logged no-op.
var ErrUnknownChannel = errors.New("unknown channel")

// Repo is the narrow persistence contract the service needs.
type Repo interface {
	UpsertServer(ctx context.Context, id, name string) error
	UpsertChannel(ctx context.Context, ch domain.Channel) error
	IsIgnored(ctx context.Context, channelID string) (bool, error)
	SetIgnored(ctx context.Context, channelID string, ignored bool) error
}

// Service is the preference store: per-channel ignore flags plus
// server/channel registration.
type Service struct {
	repo   Repo
	logger *slog.Logger
}

func NewService(repo Repo, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// IsIgnored reports whether a channel is muted. Channels the store has never
// seen are treated as not ignored, so a missing row never suppresses traffic.
func (s *Service) IsIgnored(ctx context.Context, channelID string) (bool, error) {
	ignored, err := s.repo.IsIgnored(ctx, channelID)
	if errors.Is(err, repopg.ErrNotFound) {
		s.logger.Debug("prefs: channel not registered yet", slog.String("channel_id", channelID))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("prefs lookup: %w", err)
	}
	return ignored, nil
}

// SetIgnored flips the ignore flag for one channel.
func (s *Service) SetIgnored(ctx context.Context, channelID string, ignored bool) error {
	err := s.repo.SetIgnored(ctx, channelID, ignored)
	if errors.Is(err, repopg.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channelID)
	}
	if err != nil {
		return fmt.Errorf("prefs update: %w", err)
	}
	s.logger.Info("prefs: channel flag updated",
		slog.String("channel_id", channelID),
		slog.Bool("ignored", ignored),
	)
	return nil
}

// RegisterServer reconciles one server and its channels against the store:
// create-if-absent, existing ignored flags untouched. Called for every guild
// at startup and again on join events, so it must stay idempotent.
func (s *Service) RegisterServer(ctx context.Context, server domain.Server) error {
	if err := s.repo.UpsertServer(ctx, server.ID, server.Name); err != nil {
		return fmt.Errorf("register server %s: %w", server.ID, err)
	}
	for _, ch := range server.Channels {
		ch.ServerID = server.ID
		if err := s.repo.UpsertChannel(ctx, ch); err != nil {
			s.logger.Error("prefs: channel registration failed",
				slog.String("channel_id", ch.ID),
				slog.String("server_id", server.ID),
				slog.String("err", err.Error()),
			)
			continue
		}
	}
	s.logger.Debug("prefs: server reconciled",
		slog.String("server_id", server.ID),
		slog.Int("channels", len(server.Channels)),
	)
	return nil
}
