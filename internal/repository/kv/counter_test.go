package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingReferenceSequence(t *testing.T) {
	repo := NewBookingReferenceRepository(newTestStore(), 13000)
	ctx := context.Background()

	first, err := repo.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CP-13000", first)

	second, err := repo.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CP-13001", second)
}

func TestBookingReferenceDefaultStart(t *testing.T) {
	repo := NewBookingReferenceRepository(newTestStore(), 0)

	reference, err := repo.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CP-13000", reference)
}

func TestBookingReferenceSurvivesRestart(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	first := NewBookingReferenceRepository(store, 13000)
	_, err := first.Next(ctx)
	require.NoError(t, err)
	_, err = first.Next(ctx)
	require.NoError(t, err)

	// A fresh repository over the same store picks up where the last one left off.
	second := NewBookingReferenceRepository(store, 13000)
	reference, err := second.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "CP-13002", reference)
}
