package bot_test

import (
	"context"
	"testing"

	"github.com/coinherald/coinherald/internal/bot"
)

func noopHandler(tag string, calls *[]string) bot.Handler {
	return bot.HandlerFunc(func(context.Context, string, string) error {
		*calls = append(*calls, tag)
		return nil
	})
}

func TestRegistry_ResolveAndNotFound(t *testing.T) {
	var calls []string
	r := bot.NewRegistry()
	r.Register("ping", "Ping", noopHandler("ping", &calls))

	h, ok := r.Resolve("ping")
	if !ok {
		t.Fatal("expected ping to resolve")
	}
	h.Handle(context.Background(), "chan1", "")
	if len(calls) != 1 || calls[0] != "ping" {
		t.Fatalf("handler not invoked: %v", calls)
	}

	if _, ok := r.Resolve("Ping"); ok {
		t.Fatal("names must be case-sensitive")
	}
	if _, ok := r.Resolve("pong"); ok {
		t.Fatal("unregistered name must not resolve")
	}
}

func TestRegistry_ReRegisterReplacesInPlace(t *testing.T) {
	var calls []string
	r := bot.NewRegistry()
	r.Register("a", "first", noopHandler("a1", &calls))
	r.Register("b", "second", noopHandler("b", &calls))
	r.Register("a", "replaced", noopHandler("a2", &calls))

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "a" || entries[0].Description != "replaced" {
		t.Fatalf("replacement lost position or description: %+v", entries[0])
	}
	if entries[1].Name != "b" {
		t.Fatalf("order changed: %+v", entries)
	}

	h, _ := r.Resolve("a")
	h.Handle(context.Background(), "chan1", "")
	if calls[len(calls)-1] != "a2" {
		t.Fatal("old handler still registered")
	}
}

func TestRegistry_EntriesKeepInsertionOrder(t *testing.T) {
	var calls []string
	r := bot.NewRegistry()
	names := []string{"zeta", "alpha", "mid"}
	for _, n := range names {
		r.Register(n, n, noopHandler(n, &calls))
	}

	entries := r.Entries()
	for i, n := range names {
		if entries[i].Name != n {
			t.Fatalf("entry %d = %q, want %q", i, entries[i].Name, n)
		}
	}
}
