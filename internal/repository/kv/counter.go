package kv

import (
	"context"
	"fmt"
	"sync"

	"github.com/careproclinic/patient-api/internal/storage"
)

// BookingReferenceRepository assigns booking codes from a counter persisted
// in the same store, so references keep increasing across restarts whenever
// the backing medium survives.
type BookingReferenceRepository struct {
	mu    sync.Mutex
	store *storage.Store
	start int64
}

func NewBookingReferenceRepository(store *storage.Store, start int64) *BookingReferenceRepository {
	if start <= 0 {
		start = 13000
	}
	return &BookingReferenceRepository{store: store, start: start}
}

func (r *BookingReferenceRepository) Next(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.start
	r.store.Read(ctx, bookingSequenceKey, &current)

	reference := fmt.Sprintf("CP-%d", current)
	r.store.Write(ctx, bookingSequenceKey, current+1)
	return reference, nil
}
