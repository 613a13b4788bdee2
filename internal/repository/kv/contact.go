package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/storage"
	"github.com/careproclinic/patient-api/pkg/errors"
)

type ContactRepository struct {
	store  *storage.Store
	seeder *Seeder
}

func NewContactRepository(store *storage.Store, seeder *Seeder) *ContactRepository {
	return &ContactRepository{store: store, seeder: seeder}
}

func (r *ContactRepository) List(ctx context.Context) ([]model.ContactRequest, error) {
	r.seeder.Ensure(ctx)
	contacts := []model.ContactRequest{}
	r.store.Read(ctx, contactRequestsKey, &contacts)
	return contacts, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *model.ContactRequest) error {
	existing, _ := r.List(ctx)

	contact.ID = uuid.NewString()
	contact.CreatedAt = time.Now().UTC()
	contact.Status = model.ContactStatusNew

	r.store.Write(ctx, contactRequestsKey, append([]model.ContactRequest{*contact}, existing...))
	return nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status model.ContactStatus) error {
	contacts, _ := r.List(ctx)

	found := false
	for i := range contacts {
		if contacts[i].ID == id {
			contacts[i].Status = status
			found = true
		}
	}
	if !found {
		return errors.NotFound("contact request", nil)
	}

	r.store.Write(ctx, contactRequestsKey, contacts)
	return nil
}
