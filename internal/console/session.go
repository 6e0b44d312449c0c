package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oakmed/admitdesk/internal/billing"
	"github.com/oakmed/admitdesk/internal/config"
	"github.com/oakmed/admitdesk/internal/events"
	"github.com/oakmed/admitdesk/internal/patients"
	"github.com/oakmed/admitdesk/pkg/logging"
)

const receiptRule = "----------------------------------------"

// Session drives the interactive admission menu. Input and output are
// explicit streams so tests can script a whole session in memory.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	bus    *events.Bus
	cfg    *config.Config
	logger *logging.Logger
}

// New creates a session reading operator input from in and printing to out.
func New(in io.Reader, out io.Writer, bus *events.Bus, cfg *config.Config, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default()
	}
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		bus:    bus,
		cfg:    cfg,
		logger: logger,
	}
}

// Run shows the menu until the operator exits. The end of the input stream
// counts as an exit, so scripted runs terminate cleanly too. Unrecognized
// menu choices redisplay the menu without comment.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "=== Welcome to %s ===\n", s.cfg.HospitalName)
	for {
		fmt.Fprintln(s.out, "1) Admit Patient")
		fmt.Fprintln(s.out, "2) Exit")
		fmt.Fprint(s.out, "Select option: ")

		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}
		switch strings.TrimSpace(line) {
		case "1":
			s.admit()
		case "2":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// admit runs one admission: gather fields, build the record, broadcast the
// admission, price it, broadcast the bill, print the receipt. The record is
// not retained afterwards. If input ends mid-admission the flow is abandoned
// without a record or receipt; the next menu iteration then exits.
func (s *Session) admit() {
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	email, ok := s.prompt("Email: ")
	if !ok {
		return
	}
	choice, ok := s.prompt("Patient type (1-InPatient 2-OutPatient 3-Emergency): ")
	if !ok {
		return
	}

	id := patients.NewID()
	var p *patients.Patient
	switch strings.TrimSpace(choice) {
	case "1":
		daysRaw, ok := s.prompt("Days admitted: ")
		if !ok {
			return
		}
		rateRaw, ok := s.prompt("Room rate per day: ")
		if !ok {
			return
		}
		p = patients.NewInPatient(id, parseDays(daysRaw), parseRoomRateCents(rateRaw))
	case "3":
		critRaw, ok := s.prompt("Is critical? (y/n): ")
		if !ok {
			return
		}
		p = patients.NewEmergency(id, parseYes(critRaw))
	default:
		// anything unrecognized admits as an outpatient
		p = patients.NewOutPatient(id)
	}
	p.Name = name
	p.Email = email

	s.bus.NotifyAdmission(events.NewPatientAdmitted(p))

	amount := billing.StrategyFor(p)(p)
	s.bus.NotifyBill(events.NewBillGenerated(p, amount))

	fmt.Fprintln(s.out, receiptRule)
	fmt.Fprintf(s.out, "Patient: %s (%s)\n", p.Name, p.Kind)
	fmt.Fprintf(s.out, "Amount Due: %s\n", billing.FormatCents(amount))
	fmt.Fprintln(s.out, receiptRule)

	s.logger.Info("patient admitted",
		"patient_id", p.ID,
		"kind", p.Kind.String(),
		"amount_cents", amount,
	)
}
