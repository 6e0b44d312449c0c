package notify

import (
	"fmt"
	"io"

	"github.com/oakmed/admitdesk/internal/billing"
	"github.com/oakmed/admitdesk/internal/events"
	"github.com/oakmed/admitdesk/pkg/logging"
)

// Service prints the fixed operator notifications for admission and billing
// events and mirrors each one through the structured logger.
type Service struct {
	out    io.Writer
	logger *logging.Logger
}

// NewService creates a notification service writing to out.
func NewService(out io.Writer, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{out: out, logger: logger}
}

// Register attaches the service's subscribers to the bus in the fixed order:
// ward desk then records for admissions, cashier then ledger for bills.
func (s *Service) Register(bus *events.Bus) {
	bus.SubscribeAdmission(s.WardDeskAdmission)
	bus.SubscribeAdmission(s.RecordsAdmission)
	bus.SubscribeBill(s.CashierBill)
	bus.SubscribeBill(s.LedgerBill)
}

// WardDeskAdmission tells the ward desk to prepare for the new arrival.
func (s *Service) WardDeskAdmission(evt events.PatientAdmittedV1) {
	fmt.Fprintf(s.out, ">> Ward desk: preparing bed for %s [%s]\n", evt.Name, evt.Kind)
	s.logger.Info("admission notified", "subscriber", "ward_desk", "patient_id", evt.PatientID, "kind", evt.Kind)
}

// RecordsAdmission opens a chart for the new arrival.
func (s *Service) RecordsAdmission(evt events.PatientAdmittedV1) {
	fmt.Fprintf(s.out, ">> Records: chart opened for %s [%s]\n", evt.Name, evt.Kind)
	s.logger.Info("admission notified", "subscriber", "records", "patient_id", evt.PatientID, "kind", evt.Kind)
}

// CashierBill announces the bill at the cashier window.
func (s *Service) CashierBill(evt events.BillGeneratedV1) {
	fmt.Fprintf(s.out, ">> Cashier: bill ready for %s [%s] - %s\n", evt.Name, evt.Kind, billing.FormatCents(evt.AmountCents))
	s.logger.Info("bill notified", "subscriber", "cashier", "patient_id", evt.PatientID, "amount_cents", evt.AmountCents)
}

// LedgerBill posts the charge to the day's ledger.
func (s *Service) LedgerBill(evt events.BillGeneratedV1) {
	fmt.Fprintf(s.out, ">> Ledger: posted %s for %s\n", billing.FormatCents(evt.AmountCents), evt.Name)
	s.logger.Info("bill notified", "subscriber", "ledger", "patient_id", evt.PatientID, "amount_cents", evt.AmountCents)
}
