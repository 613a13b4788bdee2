package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(NewMemoryBackend(), zerolog.Nop())
}

func TestStoreReadWriteRoundTrip(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	store.Write(ctx, "test-key", record{Name: "alpha", Count: 3})

	var got record
	store.Read(ctx, "test-key", &got)

	assert.Equal(t, "alpha", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestStoreReadKeepsFallbackWhenAbsent(t *testing.T) {
	store := newTestStore()

	got := []string{"fallback"}
	store.Read(context.Background(), "never-written", &got)

	assert.Equal(t, []string{"fallback"}, got)
}

func TestStoreReadKeepsFallbackWhenMalformed(t *testing.T) {
	backend := NewMemoryBackend()
	store := NewStore(backend, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "bad-key", "{not json"))

	got := []string{"fallback"}
	store.Read(ctx, "bad-key", &got)

	assert.Equal(t, []string{"fallback"}, got)
}

func TestStoreExistsDistinguishesEmptyFromAbsent(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	assert.False(t, store.Exists(ctx, "collection"))

	store.Write(ctx, "collection", []string{})
	assert.True(t, store.Exists(ctx, "collection"))

	var got []string
	store.Read(ctx, "collection", &got)
	assert.Empty(t, got)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	store.Write(ctx, "key", "value")
	require.True(t, store.Exists(ctx, "key"))

	store.Delete(ctx, "key")
	assert.False(t, store.Exists(ctx, "key"))
}

type brokenBackend struct{}

func (brokenBackend) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("backend down")
}

func (brokenBackend) Set(context.Context, string, string) error {
	return errors.New("backend down")
}

func (brokenBackend) Delete(context.Context, string) error {
	return errors.New("backend down")
}

func (brokenBackend) Exists(context.Context, string) (bool, error) {
	return false, errors.New("backend down")
}

func TestStoreDegradesWhenBackendUnreachable(t *testing.T) {
	store := NewStore(brokenBackend{}, zerolog.Nop())
	ctx := context.Background()

	got := []string{"fallback"}
	store.Read(ctx, "key", &got)
	assert.Equal(t, []string{"fallback"}, got)

	// Writes and deletes must not panic or surface the failure.
	store.Write(ctx, "key", "value")
	store.Delete(ctx, "key")

	assert.False(t, store.Exists(ctx, "key"))
}
