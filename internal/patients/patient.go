package patients

import (
	"github.com/google/uuid"
)

// Kind identifies the care-type variant of a patient record. The set is
// closed: records are only built through the three constructors below.
type Kind string

const (
	KindInPatient  Kind = "InPatient"
	KindOutPatient Kind = "OutPatient"
	KindEmergency  Kind = "Emergency"
)

func (k Kind) String() string {
	return string(k)
}

// Patient is one admitted person. ID and Kind are fixed at construction;
// the variant fields are only meaningful for the matching kind. Name and
// Email are display strings and may be empty.
type Patient struct {
	ID    string
	Name  string
	Email string
	Kind  Kind

	// InPatient only
	DaysAdmitted  int
	RoomRateCents int64

	// Emergency only
	Critical bool
}

// NewID returns an opaque patient identifier, unique within the session.
func NewID() string {
	return uuid.NewString()
}

// NewInPatient builds an inpatient record. Callers are expected to pass
// non-negative days and rate; the input layer guarantees this.
func NewInPatient(id string, daysAdmitted int, roomRateCents int64) *Patient {
	return &Patient{
		ID:            id,
		Kind:          KindInPatient,
		DaysAdmitted:  daysAdmitted,
		RoomRateCents: roomRateCents,
	}
}

// NewOutPatient builds an outpatient record.
func NewOutPatient(id string) *Patient {
	return &Patient{
		ID:   id,
		Kind: KindOutPatient,
	}
}

// NewEmergency builds an emergency record.
func NewEmergency(id string, critical bool) *Patient {
	return &Patient{
		ID:       id,
		Kind:     KindEmergency,
		Critical: critical,
	}
}
