package patients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetVariant(t *testing.T) {
	in := NewInPatient("p-1", 3, 100000)
	assert.Equal(t, KindInPatient, in.Kind)
	assert.Equal(t, 3, in.DaysAdmitted)
	assert.Equal(t, int64(100000), in.RoomRateCents)

	out := NewOutPatient("p-2")
	assert.Equal(t, KindOutPatient, out.Kind)

	em := NewEmergency("p-3", true)
	assert.Equal(t, KindEmergency, em.Kind)
	assert.True(t, em.Critical)
}

func TestConstructorsTolerateEmptyContactInfo(t *testing.T) {
	p := NewOutPatient("p-4")
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Email)

	p.Name = ""
	p.Email = ""
	assert.Equal(t, KindOutPatient, p.Kind)
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "id reused: %s", id)
		seen[id] = true
	}
}
