package model

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type VisitType string

const (
	VisitTypeInPerson VisitType = "in-person"
	VisitTypeVideo    VisitType = "video"
)

// Appointment is a booking request as stored, newest first in its collection.
// ReferenceID is the human-facing booking code, distinct from ID.
type Appointment struct {
	ID                string        `json:"id"`
	ReferenceID       string        `json:"reference_id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Service           string        `json:"service"`
	PreferredDoctor   string        `json:"preferred_doctor"`
	Date              string        `json:"date"`
	TimeSlot          string        `json:"time_slot"`
	Message           string        `json:"message"`
	VisitType         VisitType     `json:"visit_type"`
	MeetingLink       string        `json:"meeting_link,omitempty"`
	InsuranceProvider string        `json:"insurance_provider,omitempty"`
	InsurancePlan     string        `json:"insurance_plan,omitempty"`
	CoverageGuidance  string        `json:"coverage_guidance,omitempty"`
	Status            BookingStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
}

type CreateAppointmentRequest struct {
	Name              string    `json:"name" binding:"required,min=2"`
	Email             string    `json:"email" binding:"required,email"`
	Phone             string    `json:"phone" binding:"required,min=8"`
	VisitType         VisitType `json:"visit_type" binding:"required,oneof=in-person video"`
	Service           string    `json:"service" binding:"required"`
	PreferredDoctor   string    `json:"preferred_doctor"`
	InsuranceProvider string    `json:"insurance_provider"`
	InsurancePlan     string    `json:"insurance_plan"`
	Date              string    `json:"date" binding:"required"`
	TimeSlot          string    `json:"time_slot" binding:"required"`
	Message           string    `json:"message" binding:"max=350"`
}

type RescheduleAppointmentRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
