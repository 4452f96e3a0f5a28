package bot

import (
	"context"
	"sync"
)

// Handler is one bot command: channel context in, single-token argument in,
// zero or more gateway sends out.
type Handler interface {
	Handle(ctx context.Context, channelID, arg string) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, channelID, arg string) error

func (f HandlerFunc) Handle(ctx context.Context, channelID, arg string) error {
	return f(ctx, channelID, arg)
}

// Entry is one (name, description) pair for the help listing.
type Entry struct {
	Name        string
	Description string
}

// Registry maps case-sensitive command names to handlers. Insertion order
// defines the help listing order; re-registering a name replaces the handler
// in place. Reads vastly outnumber writes, hence the RWMutex.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]registryEntry
}

type registryEntry struct {
	description string
	handler     Handler
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register adds or replaces a command.
func (r *Registry) Register(name, description string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = registryEntry{description: description, handler: h}
}

// Resolve looks up a handler by exact name.
func (r *Registry) Resolve(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.handler, true
}

// Entries returns the registered commands in insertion order, reflecting
// live registry state at call time.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Entry{Name: name, Description: r.entries[name].description})
	}
	return out
}
