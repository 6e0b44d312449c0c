package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/oakmed/admitdesk/internal/patients"
)

type PatientAdmittedV1 struct {
	EventID    string    `json:"event_id"`
	PatientID  string    `json:"patient_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

type BillGeneratedV1 struct {
	EventID     string    `json:"event_id"`
	PatientID   string    `json:"patient_id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	AmountCents int64     `json:"amount_cents"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewPatientAdmitted snapshots a record into an admission event.
func NewPatientAdmitted(p *patients.Patient) PatientAdmittedV1 {
	return PatientAdmittedV1{
		EventID:    uuid.NewString(),
		PatientID:  p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Kind:       p.Kind.String(),
		OccurredAt: time.Now().UTC(),
	}
}

// NewBillGenerated snapshots a record and its computed amount into a
// bill-generated event.
func NewBillGenerated(p *patients.Patient, amountCents int64) BillGeneratedV1 {
	return BillGeneratedV1{
		EventID:     uuid.NewString(),
		PatientID:   p.ID,
		Name:        p.Name,
		Kind:        p.Kind.String(),
		AmountCents: amountCents,
		OccurredAt:  time.Now().UTC(),
	}
}
