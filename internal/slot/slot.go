// Package slot provides named durable storage slots, each holding one JSON
// value. The whole application state lives in a single slot; every save
// rewrites it in full.
package slot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// ErrNotFound is returned by Load when no value has been saved under a key.
var ErrNotFound = errors.New("slot not found")

type Store interface {
	// Load returns the raw bytes last saved under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save writes data under key. A completed Save is immediately visible
	// to the next Load.
	Save(ctx context.Context, key string, data []byte) error
}

// LoadJSON reads and unmarshals the value under key. An absent slot, a read
// error, or undecodable content all fall back to def: a damaged slot must
// never take the application down, so failures are logged and swallowed.
func LoadJSON[T any](ctx context.Context, s Store, key string, def T) T {
	data, err := s.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("slot load failed, using default", "key", key, "error", err)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("slot content undecodable, using default", "key", key, "error", err)
		return def
	}
	return v
}

// SaveJSON marshals v and writes it under key. Callers on the UI path treat
// the returned error as best-effort: log it, do not retry.
func SaveJSON[T any](ctx context.Context, s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Save(ctx, key, data)
}
