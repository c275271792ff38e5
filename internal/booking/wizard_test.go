// AngelaMos | 2026
// wizard_test.go

package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeForm() Form {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return Form{
		Schedule: ScheduleForm{
			Date:      &day,
			SlotTime:  "19:00",
			Duration:  2,
			EventType: EventClub,
		},
		Details: DetailsForm{Description: "Headline set", IsRemote: true},
		Contact: ContactForm{
			Name:  "Ada Obi",
			Email: "ada@example.com",
			Phone: "+2348000000",
		},
		Payment: PaymentForm{Method: "card"},
	}
}

func TestWizard_ForwardNeedsCompleteStep(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepSchedule, w.Step())
	assert.False(t, w.CanAdvance())

	err := w.Next()
	var incomplete *IncompleteStepError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, StepSchedule, incomplete.Step)
	assert.Equal(t, []string{"date", "timeSlot", "duration", "eventType"}, incomplete.Fields)
	assert.ErrorIs(t, err, ErrIncompleteStep)
	assert.Equal(t, StepSchedule, w.Step())

	w.Form.Schedule = completeForm().Schedule
	require.NoError(t, w.Next())
	assert.Equal(t, StepDetails, w.Step())
}

func TestWizard_BackIsAlwaysAllowed(t *testing.T) {
	w := NewWizard()
	w.Form = completeForm()

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	assert.Equal(t, StepContact, w.Step())

	w.Form.Contact = ContactForm{}
	w.Back()
	assert.Equal(t, StepDetails, w.Step())
	w.Back()
	w.Back()
	assert.Equal(t, StepSchedule, w.Step())
}

func TestWizard_LocationOptionalWhenRemote(t *testing.T) {
	w := NewWizard()
	w.Form = completeForm()

	assert.Empty(t, w.Missing(StepDetails))

	w.Form.Details.IsRemote = false
	assert.Equal(t, []string{"location"}, w.Missing(StepDetails))

	w.Form.Details.Location = "Lagos, NG"
	assert.Empty(t, w.Missing(StepDetails))
}

func TestWizard_Complete(t *testing.T) {
	w := NewWizard()
	w.Form = completeForm()
	require.NoError(t, w.Complete())
	assert.Equal(t, StepPayment, w.Step())

	w = NewWizard()
	w.Form = completeForm()
	w.Form.Contact.Phone = "  "

	err := w.Complete()
	var incomplete *IncompleteStepError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, StepContact, incomplete.Step)
	assert.Equal(t, []string{"phone"}, incomplete.Fields)
	assert.Equal(t, "contact step incomplete: missing phone", err.Error())
}
