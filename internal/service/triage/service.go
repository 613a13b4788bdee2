// Package triage maps a symptom group to the clinic department most likely
// to handle it. It is a fixed decision table with a coarse confidence label,
// not an inference engine.
package triage

import (
	"context"

	"github.com/careproclinic/patient-api/internal/model"
	"github.com/careproclinic/patient-api/pkg/errors"
)

type rule struct {
	Symptom    string
	Service    string
	Department string
}

var rules = []rule{
	{Symptom: "Chest pain or palpitations", Service: "Heart Care", Department: "Cardiology"},
	{Symptom: "Headache or dizziness", Service: "Neurology Consult", Department: "Neurology"},
	{Symptom: "Child fever or wellness concern", Service: "Child Wellness", Department: "Pediatrics"},
	{Symptom: "Cough or breathing issue", Service: "General Consultation", Department: "Primary Care"},
	{Symptom: "Joint or muscle pain", Service: "General Consultation", Department: "Primary Care"},
	{Symptom: "Routine annual checkup", Service: "Preventive Screening", Department: "Wellness"},
}

const longDuration = "More than 1 week"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Symptoms lists the selectable symptom groups in rule order.
func (s *Service) Symptoms() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Symptom
	}
	return out
}

// Evaluate resolves the symptom against the rule table. An unrecognized
// symptom falls through to the routine-checkup rule. Confidence: severe wins
// outright, a long-running complaint upgrades the default.
func (s *Service) Evaluate(_ context.Context, req *model.TriageRequest) (*model.TriageSuggestion, error) {
	if req.Symptom == "" {
		return nil, errors.BadRequest("symptom is required", nil)
	}

	matched := rules[len(rules)-1]
	for _, r := range rules {
		if r.Symptom == req.Symptom {
			matched = r
			break
		}
	}

	confidence := "Medium"
	switch {
	case req.Severity == model.TriageSeveritySevere:
		confidence = "High"
	case req.Duration == longDuration:
		confidence = "Medium-High"
	}

	return &model.TriageSuggestion{
		Service:    matched.Service,
		Department: matched.Department,
		Confidence: confidence,
	}, nil
}
