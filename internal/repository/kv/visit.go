package kv

import (
	"context"
	"strings"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/storage"
)

type VisitHistoryRepository struct {
	store  *storage.Store
	seeder *Seeder
}

func NewVisitHistoryRepository(store *storage.Store, seeder *Seeder) *VisitHistoryRepository {
	return &VisitHistoryRepository{store: store, seeder: seeder}
}

// ListByEmail filters the seeded history by patient email, case-insensitive.
func (r *VisitHistoryRepository) ListByEmail(ctx context.Context, email string) ([]model.VisitHistory, error) {
	r.seeder.Ensure(ctx)

	all := []model.VisitHistory{}
	r.store.Read(ctx, visitHistoryKey, &all)

	normalized := strings.ToLower(strings.TrimSpace(email))
	visits := []model.VisitHistory{}
	for _, v := range all {
		if strings.ToLower(v.Email) == normalized {
			visits = append(visits, v)
		}
	}
	return visits, nil
}
