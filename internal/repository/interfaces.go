package repository

import (
	"context"

	"github.com/careproclinic/patient-api/internal/model"
)

type AppointmentRepository interface {
	List(ctx context.Context) ([]model.Appointment, error)
	Get(ctx context.Context, id string) (*model.Appointment, error)
	Create(ctx context.Context, appointment *model.Appointment) error
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error
	Reschedule(ctx context.Context, id, date, timeSlot string) error
}

type ContactRepository interface {
	List(ctx context.Context) ([]model.ContactRequest, error)
	Create(ctx context.Context, contact *model.ContactRequest) error
	UpdateStatus(ctx context.Context, id string, status model.ContactStatus) error
}

type VisitHistoryRepository interface {
	ListByEmail(ctx context.Context, email string) ([]model.VisitHistory, error)
}

type PortalUserRepository interface {
	List(ctx context.Context) ([]model.PortalUser, error)
	FindByEmail(ctx context.Context, email string) (*model.PortalUser, error)
	Create(ctx context.Context, user *model.PortalUser) error
}

type SessionRepository interface {
	Get(ctx context.Context) (*model.PortalSession, error)
	Set(ctx context.Context, session model.PortalSession) error
	Clear(ctx context.Context) error
}

// BookingReferenceRepository hands out human-facing booking codes from a
// persisted monotonic counter.
type BookingReferenceRepository interface {
	Next(ctx context.Context) (string, error)
}
