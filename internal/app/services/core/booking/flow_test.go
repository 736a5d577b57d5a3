package booking

import (
	"medibook-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyFlow(t *testing.T) {
	t.Run("Switching Flow Resets Selections", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		state.SelectedDoctor = &models.Doctor{ID: "D1"}
		state.SelectedClinic = &models.Clinic{ID: "C1"}
		state.SelectedDate = "2030-03-10"
		state.SelectedSlot = &models.TimeSlot{ID: "S1"}
		state.BookingDetails = &models.BookingDetails{PatientType: models.PatientTypeSelf}

		err := ApplyFlow(state, models.BookingFlowClinic)
		assert.NoError(t, err)
		assert.Equal(t, models.BookingFlowClinic, state.BookingFlow)
		assert.Equal(t, models.StepClinic, state.CurrentStep, "clinic flow starts at clinic")
		assert.Nil(t, state.SelectedDoctor)
		assert.Nil(t, state.SelectedClinic)
		assert.Empty(t, state.SelectedDate)
		assert.Nil(t, state.SelectedSlot)
		assert.Nil(t, state.BookingDetails)
	})

	t.Run("Unknown Flow Rejected", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		err := ApplyFlow(state, models.BookingFlow("walk-in"))
		assert.Error(t, err)
	})
}

func TestStepValidity(t *testing.T) {
	// Every step reachable by navigation must belong to the active flow's
	// fixed sequence.
	for _, flow := range []models.BookingFlow{models.BookingFlowDoctor, models.BookingFlowClinic} {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		assert.NoError(t, ApplyFlow(state, flow))

		for {
			assert.True(t, flow.ContainsStep(state.CurrentStep),
				"step %q must belong to flow %q", state.CurrentStep, flow)
			if err := Advance(state); err != nil {
				break
			}
		}
		for {
			assert.True(t, flow.ContainsStep(state.CurrentStep),
				"step %q must belong to flow %q", state.CurrentStep, flow)
			if err := Retreat(state); err != nil {
				break
			}
		}
	}
}

func TestAdvance(t *testing.T) {
	t.Run("Doctor Flow Order", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())

		expected := []models.BookingStep{models.StepClinic, models.StepDate, models.StepDetails, models.StepReview, models.StepPayment}
		for _, step := range expected {
			assert.NoError(t, Advance(state))
			assert.Equal(t, step, state.CurrentStep)
		}
	})

	t.Run("Confirmation Not Reachable By Navigation", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		state.CurrentStep = models.StepPayment
		err := Advance(state)
		assert.Error(t, err, "stepping into confirmation must go through payment")
		assert.Equal(t, models.StepPayment, state.CurrentStep)
	})
}

func TestRetreat(t *testing.T) {
	t.Run("GoBack From Date In Clinic Flow Lands On Clinic", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		assert.NoError(t, ApplyFlow(state, models.BookingFlowClinic))
		state.CurrentStep = models.StepDate

		assert.NoError(t, Retreat(state))
		assert.Equal(t, models.StepClinic, state.CurrentStep, "override skips the clinic-doctor sub-step")
	})

	t.Run("GoBack From Date In Doctor Flow Uses Generic Previous", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		state.CurrentStep = models.StepDate

		assert.NoError(t, Retreat(state))
		assert.Equal(t, models.StepClinic, state.CurrentStep)
	})

	t.Run("GoBack From First Step Fails", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		assert.Error(t, Retreat(state))
	})

	t.Run("GoBack From Confirmation Fails", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		state.CurrentStep = models.StepConfirmation
		assert.Error(t, Retreat(state))
	})
}

func TestMissingPrerequisites(t *testing.T) {
	t.Run("Empty State Lists Everything In Priority Order", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		missing := MissingPrerequisites(state)
		assert.Equal(t, []models.BookingStep{models.StepDoctor, models.StepClinic, models.StepDate, models.StepDetails}, missing)
		assert.Equal(t, models.StepDoctor, FirstMissingStep(state))
	})

	t.Run("Clinic Flow Names The Doctor Sub-Step", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		assert.NoError(t, ApplyFlow(state, models.BookingFlowClinic))
		missing := MissingPrerequisites(state)
		assert.Equal(t, models.StepClinicDoctor, missing[0])
	})

	t.Run("Date Without Slot Still Counts As Missing", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		state.SelectedDoctor = &models.Doctor{ID: "D1"}
		state.SelectedClinic = &models.Clinic{ID: "C1"}
		state.SelectedDate = "2030-03-10"
		state.BookingDetails = &models.BookingDetails{PatientType: models.PatientTypeSelf}

		missing := MissingPrerequisites(state)
		assert.Equal(t, []models.BookingStep{models.StepDate}, missing)
	})

	t.Run("Complete State Has No Missing Steps", func(t *testing.T) {
		state := models.NewBookingState("sess-1", "user-1", time.Now())
		state.SelectedDoctor = &models.Doctor{ID: "D1"}
		state.SelectedClinic = &models.Clinic{ID: "C1"}
		state.SelectedDate = "2030-03-10"
		state.SelectedSlot = &models.TimeSlot{ID: "S1"}
		state.BookingDetails = &models.BookingDetails{PatientType: models.PatientTypeSelf}

		assert.Empty(t, MissingPrerequisites(state))
		assert.Equal(t, models.BookingStep(""), FirstMissingStep(state))
	})
}
