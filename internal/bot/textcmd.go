package bot

import (
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// TextCommands is the static text-command table: an external yaml file
// mapping command names to literal replies. The file is re-read on every
// lookup so edits are visible without a restart; a missing or broken file
// simply means zero text commands.
type TextCommands struct {
	path   string
	logger *slog.Logger
}

func NewTextCommands(path string, logger *slog.Logger) *TextCommands {
	return &TextCommands{path: path, logger: logger}
}

// Lookup resolves a name to its stored reply.
func (t *TextCommands) Lookup(name string) (string, bool) {
	reply, ok := t.load()[name]
	return reply, ok
}

// Names returns the currently loaded command names, sorted for a stable
// help listing.
func (t *TextCommands) Names() []string {
	table := t.load()
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *TextCommands) load() map[string]string {
	if t.path == "" {
		return nil
	}
	raw, err := os.ReadFile(t.path)
	if err != nil {
		if !os.IsNotExist(err) {
			t.logger.Warn("text commands unreadable", slog.String("path", t.path), slog.String("err", err.Error()))
		}
		return nil
	}
	table := make(map[string]string)
	if err := yaml.Unmarshal(raw, &table); err != nil {
		t.logger.Warn("text commands malformed", slog.String("path", t.path), slog.String("err", err.Error()))
		return nil
	}
	return table
}
