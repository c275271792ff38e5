// AngelaMos | 2026
// wizard.go

package booking

import (
	"fmt"
	"strings"
	"time"
)

type Step int

const (
	StepSchedule Step = iota + 1
	StepDetails
	StepContact
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepSchedule:
		return "schedule"
	case StepDetails:
		return "details"
	case StepContact:
		return "contact"
	case StepPayment:
		return "payment"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

type ScheduleForm struct {
	Date      *time.Time
	SlotTime  string
	Duration  int
	EventType string
}

type DetailsForm struct {
	Description         string
	Location            string
	IsRemote            bool
	SpecialRequirements string
	GuestCount          int
}

type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Role    string
}

type PaymentForm struct {
	Method string
}

// Form is everything collected across the four steps.
type Form struct {
	Schedule ScheduleForm
	Details  DetailsForm
	Contact  ContactForm
	Payment  PaymentForm
}

// Wizard walks Schedule -> Details -> Contact -> Payment. Moving forward
// requires the current step to be complete; moving back never does.
type Wizard struct {
	step Step
	Form Form
}

func NewWizard() *Wizard {
	return &Wizard{step: StepSchedule}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) CanAdvance() bool {
	return w.Missing(w.step) == nil
}

// Missing names the empty required fields of step s.
func (w *Wizard) Missing(s Step) []string {
	var missing []string
	add := func(ok bool, field string) {
		if !ok {
			missing = append(missing, field)
		}
	}

	f := w.Form
	switch s {
	case StepSchedule:
		add(f.Schedule.Date != nil, "date")
		add(notBlank(f.Schedule.SlotTime), "timeSlot")
		add(f.Schedule.Duration > 0, "duration")
		add(notBlank(f.Schedule.EventType), "eventType")
	case StepDetails:
		add(notBlank(f.Details.Description), "description")
		add(f.Details.IsRemote || notBlank(f.Details.Location), "location")
	case StepContact:
		add(notBlank(f.Contact.Name), "name")
		add(notBlank(f.Contact.Email), "email")
		add(notBlank(f.Contact.Phone), "phone")
	case StepPayment:
		add(notBlank(f.Payment.Method), "paymentMethod")
	default:
		missing = append(missing, s.String())
	}

	return missing
}

// Next advances one step. On the last step it only reports completeness.
func (w *Wizard) Next() error {
	if missing := w.Missing(w.step); missing != nil {
		return &IncompleteStepError{Step: w.step, Fields: missing}
	}
	if w.step < StepPayment {
		w.step++
	}
	return nil
}

func (w *Wizard) Back() {
	if w.step > StepSchedule {
		w.step--
	}
}

// Complete drives the wizard from its current step through payment.
func (w *Wizard) Complete() error {
	for {
		last := w.step == StepPayment
		if err := w.Next(); err != nil {
			return err
		}
		if last {
			return nil
		}
	}
}

type IncompleteStepError struct {
	Step   Step
	Fields []string
}

func (e *IncompleteStepError) Error() string {
	return fmt.Sprintf(
		"%s step incomplete: missing %s",
		e.Step,
		strings.Join(e.Fields, ", "),
	)
}

func (e *IncompleteStepError) Unwrap() error {
	return ErrIncompleteStep
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
