package postgres

import (
	"context"
	"errors"

	"github.com/coinherald/coinherald/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound marks a lookup for a channel the bot has never observed.
var ErrNotFound = errors.New("not found")

// PrefsRepo persists servers and channels with their ignored flags.
type PrefsRepo struct {
	db *pgxpool.Pool
}

func NewPrefsRepo(db *pgxpool.Pool) *PrefsRepo {
	return &PrefsRepo{db: db}
}

// UpsertServer registers a server if absent. Existing rows are left as-is.
func (r *PrefsRepo) UpsertServer(ctx context.Context, id, name string) error {
	const query = `
	INSERT INTO servers (id, name)
	VALUES ($1, $2)
	ON CONFLICT (id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, id, name)
	return err
}

// UpsertChannel registers a channel if absent with ignored=false. The
// conflict clause deliberately does not touch ignored: reconciling on
// startup must never reset a previously stored flag.
func (r *PrefsRepo) UpsertChannel(ctx context.Context, ch domain.Channel) error {
	const query = `
	INSERT INTO channels (id, server_id, name, ignored)
	VALUES ($1, $2, $3, FALSE)
	ON CONFLICT (id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, ch.ID, ch.ServerID, ch.Name)
	return err
}

// IsIgnored reports the stored ignored flag for a channel.
func (r *PrefsRepo) IsIgnored(ctx context.Context, channelID string) (bool, error) {
	const query = `SELECT ignored FROM channels WHERE id = $1`
	var ignored bool
	err := r.db.QueryRow(ctx, query, channelID).Scan(&ignored)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return ignored, nil
}

// SetIgnored flips the ignored flag for one channel. A single UPDATE keeps
// the mutation atomic per row.
func (r *PrefsRepo) SetIgnored(ctx context.Context, channelID string, ignored bool) error {
	const query = `UPDATE channels SET ignored = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, channelID, ignored)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
