package billing

import (
	"fmt"

	"github.com/oakmed/admitdesk/internal/patients"
)

// All charges are carried in cents.
const (
	baseTreatmentCents  int64 = 50000  // flat treatment charge for admitted patients
	dailyTreatmentCents int64 = 20000  // per-day treatment charge
	consultationCents   int64 = 30000  // outpatient flat consultation
	emergencyFeeCents   int64 = 80000  // fixed emergency consultation
	criticalCareCents   int64 = 150000 // surcharge for critical cases
)

// Strategy prices a patient record. Strategies are pure: the amount depends
// only on the record's fields, so pricing the same record twice gives the
// same result.
type Strategy func(*patients.Patient) int64

// StrategyFor selects the pricing function for the record's variant.
func StrategyFor(p *patients.Patient) Strategy {
	switch p.Kind {
	case patients.KindInPatient:
		return inPatientAmount
	case patients.KindEmergency:
		return emergencyAmount
	default:
		// Kind is a closed set; anything else was constructed as an outpatient.
		return outPatientAmount
	}
}

func inPatientAmount(p *patients.Patient) int64 {
	days := int64(p.DaysAdmitted)
	return days*p.RoomRateCents + baseTreatmentCents + days*dailyTreatmentCents
}

func emergencyAmount(p *patients.Patient) int64 {
	if p.Critical {
		return emergencyFeeCents + criticalCareCents
	}
	return emergencyFeeCents
}

func outPatientAmount(_ *patients.Patient) int64 {
	return consultationCents
}

// FormatCents renders a cent amount as dollars, e.g. $4100.00.
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
