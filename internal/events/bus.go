package events

// AdmissionFunc receives admission events.
type AdmissionFunc func(PatientAdmittedV1)

// BillFunc receives bill-generated events.
type BillFunc func(BillGeneratedV1)

// Bus fans events out to subscribers synchronously, in registration order,
// on the caller's goroutine. There is no isolation between subscribers: a
// panic propagates to the notifier. Subscribers are registered once at
// startup and only iterated afterwards; Bus is not safe for concurrent
// mutation.
type Bus struct {
	admission []AdmissionFunc
	bill      []BillFunc
}

func NewBus() *Bus {
	return &Bus{}
}

// SubscribeAdmission appends fn to the admission list. No de-duplication,
// no priority.
func (b *Bus) SubscribeAdmission(fn AdmissionFunc) {
	b.admission = append(b.admission, fn)
}

// SubscribeBill appends fn to the bill-generated list.
func (b *Bus) SubscribeBill(fn BillFunc) {
	b.bill = append(b.bill, fn)
}

// NotifyAdmission invokes every admission subscriber with evt. With zero
// subscribers it is a no-op.
func (b *Bus) NotifyAdmission(evt PatientAdmittedV1) {
	for _, fn := range b.admission {
		fn(evt)
	}
}

// NotifyBill invokes every bill subscriber with evt.
func (b *Bus) NotifyBill(evt BillGeneratedV1) {
	for _, fn := range b.bill {
		fn(evt)
	}
}
