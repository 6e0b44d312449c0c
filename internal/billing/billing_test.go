package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakmed/admitdesk/internal/patients"
)

func TestInPatientAmount(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		rateCents int64
		want      int64
	}{
		{"three days at $1000", 3, 100000, 410000},
		{"single day default rate", 1, 100000, 170000},
		{"zero days still pays base", 0, 100000, 50000},
		{"cheap room", 2, 2550, 95100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := patients.NewInPatient(patients.NewID(), tt.days, tt.rateCents)
			got := StrategyFor(p)(p)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmergencyAmount(t *testing.T) {
	critical := patients.NewEmergency(patients.NewID(), true)
	stable := patients.NewEmergency(patients.NewID(), false)

	assert.Equal(t, int64(230000), StrategyFor(critical)(critical))
	assert.Equal(t, int64(80000), StrategyFor(stable)(stable))
}

func TestOutPatientAmountIgnoresOtherFields(t *testing.T) {
	p := patients.NewOutPatient(patients.NewID())
	p.Name = "Ann"
	p.Email = "ann@example.com"
	// stray variant fields must not change the flat rate
	p.DaysAdmitted = 99
	p.RoomRateCents = 999999
	p.Critical = true

	assert.Equal(t, int64(30000), StrategyFor(p)(p))
}

func TestStrategyIsDeterministic(t *testing.T) {
	p := patients.NewInPatient(patients.NewID(), 5, 123450)
	s := StrategyFor(p)
	assert.Equal(t, s(p), s(p))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$4100.00", FormatCents(410000))
	assert.Equal(t, "$300.00", FormatCents(30000))
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$12.34", FormatCents(1234))
}
