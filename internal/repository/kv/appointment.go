package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/storage"
	"github.com/careproclinic/patient-api/pkg/errors"
)

type AppointmentRepository struct {
	store  *storage.Store
	seeder *Seeder
}

func NewAppointmentRepository(store *storage.Store, seeder *Seeder) *AppointmentRepository {
	return &AppointmentRepository{store: store, seeder: seeder}
}

// List returns the full collection in stored order, newest first.
func (r *AppointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	r.seeder.Ensure(ctx)
	appointments := []model.Appointment{}
	r.store.Read(ctx, appointmentsKey, &appointments)
	return appointments, nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	appointments, _ := r.List(ctx)
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, errors.NotFound("appointment", nil)
}

// Create assigns identity and creation time, forces the pending status, and
// prepends the record. ReferenceID and MeetingLink come in from the caller.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	existing, _ := r.List(ctx)

	appointment.ID = uuid.NewString()
	appointment.CreatedAt = time.Now().UTC()
	appointment.Status = model.BookingStatusPending

	r.store.Write(ctx, appointmentsKey, append([]model.Appointment{*appointment}, existing...))
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	appointments, _ := r.List(ctx)

	found := false
	for i := range appointments {
		if appointments[i].ID == id {
			appointments[i].Status = status
			found = true
		}
	}
	if !found {
		return errors.NotFound("appointment", nil)
	}

	r.store.Write(ctx, appointmentsKey, appointments)
	return nil
}

// Reschedule overwrites date and slot and resets the record to pending,
// whatever its prior status. Policy on cancelled records lives in the
// booking service.
func (r *AppointmentRepository) Reschedule(ctx context.Context, id, date, timeSlot string) error {
	appointments, _ := r.List(ctx)

	found := false
	for i := range appointments {
		if appointments[i].ID == id {
			appointments[i].Date = date
			appointments[i].TimeSlot = timeSlot
			appointments[i].Status = model.BookingStatusPending
			found = true
		}
	}
	if !found {
		return errors.NotFound("appointment", nil)
	}

	r.store.Write(ctx, appointmentsKey, appointments)
	return nil
}
