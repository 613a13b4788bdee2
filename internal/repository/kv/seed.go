package kv

import (
	"context"
	"time"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/internal/storage"
)

// Demo portal accounts. Passwords are stored as-is; the password verifier
// treats non-bcrypt values as legacy plain text.
var demoPortalUsers = []model.PortalUser{
	{
		Name:     "Alex Carter",
		Email:    "patient@carepro.com",
		Password: "patient123",
	},
	{
		Name:     "Olivia Harper",
		Email:    "olivia@carepro.com",
		Password: "patient123",
	},
}

var seedAppointments = []model.Appointment{
	{
		ID:                "seed-appointment-1",
		ReferenceID:       "CP-12001",
		Name:              "Alex Carter",
		Email:             "patient@carepro.com",
		Phone:             "+1 415 555 0123",
		Service:           "Heart Care",
		PreferredDoctor:   "Dr. Emily Carter",
		Date:              "2026-02-24",
		TimeSlot:          "10:30 AM",
		Message:           "Follow-up for blood pressure plan.",
		VisitType:         model.VisitTypeVideo,
		MeetingLink:       "https://meet.careproclinic.com/cp-12001",
		InsuranceProvider: "Aetna",
		InsurancePlan:     "PPO Basic",
		CoverageGuidance:  "Estimated coverage: 70-80% after deductible.",
		Status:            model.BookingStatusConfirmed,
		CreatedAt:         time.Date(2026, 2, 15, 9, 30, 0, 0, time.UTC),
	},
}

var seedVisitHistory = []model.VisitHistory{
	{
		ID:      "seed-history-1",
		Email:   "patient@carepro.com",
		Date:    "2026-01-18",
		Service: "General Consultation",
		Doctor:  "Dr. Michael Owens",
		Summary: "Routine wellness review and lipid screening recommendation.",
	},
	{
		ID:      "seed-history-2",
		Email:   "patient@carepro.com",
		Date:    "2025-12-03",
		Service: "Preventive Screening",
		Doctor:  "Dr. Michael Owens",
		Summary: "Screening panel completed. Follow-up in 6 months.",
	},
}

var seedContacts = []model.ContactRequest{
	{
		ID:        "seed-contact-1",
		Name:      "James Foster",
		Email:     "james@example.com",
		Subject:   "Insurance confirmation",
		Message:   "Please confirm if my UnitedHealthcare plan is accepted.",
		Status:    model.ContactStatusNew,
		CreatedAt: time.Date(2026, 2, 16, 11, 0, 0, 0, time.UTC),
	},
}

// Seeder populates the default demo datasets on first use so the portal has
// content without a backend. A collection is seeded only when its key has
// never been written; an existing empty collection stays empty.
type Seeder struct {
	store *storage.Store
}

func NewSeeder(store *storage.Store) *Seeder {
	return &Seeder{store: store}
}

func (s *Seeder) Ensure(ctx context.Context) {
	if !s.store.Exists(ctx, appointmentsKey) {
		s.store.Write(ctx, appointmentsKey, seedAppointments)
	}
	if !s.store.Exists(ctx, visitHistoryKey) {
		s.store.Write(ctx, visitHistoryKey, seedVisitHistory)
	}
	if !s.store.Exists(ctx, contactRequestsKey) {
		s.store.Write(ctx, contactRequestsKey, seedContacts)
	}
	if !s.store.Exists(ctx, portalUsersKey) {
		s.store.Write(ctx, portalUsersKey, demoPortalUsers)
	}
}
