package storage

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

// Store gives typed JSON access to a Backend. Reads degrade to the caller's
// fallback and writes silently no-op when the medium misbehaves: a corrupted
// or unreachable store must never take the caller down with it.
type Store struct {
	backend Backend
	logger  zerolog.Logger
}

func NewStore(backend Backend, logger zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger.With().Str("component", "kv").Logger(),
	}
}

// Read unmarshals the value stored under key into out. If the backend is
// unreachable, the key is absent, or the stored value fails to parse, out is
// left untouched so the caller keeps whatever fallback it preset.
func (s *Store) Read(ctx context.Context, key string, out interface{}) {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("store unreachable, using fallback")
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("malformed stored value, using fallback")
	}
}

// Write serializes value and stores it whole under key, last writer wins.
// Backend failures are logged and swallowed.
func (s *Store) Write(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to marshal value")
		return
	}
	if err := s.backend.Set(ctx, key, string(raw)); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("store unreachable, write dropped")
	}
}

// Exists reports whether the key has ever been written. Backend failures read
// as absent, which keeps the seeder from overwriting data it cannot see.
func (s *Store) Exists(ctx context.Context, key string) bool {
	ok, err := s.backend.Exists(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("store unreachable on exists check")
		return false
	}
	return ok
}

// Delete removes the key. Failures are logged and swallowed.
func (s *Store) Delete(ctx context.Context, key string) {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("store unreachable, delete dropped")
	}
}
