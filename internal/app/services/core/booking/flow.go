package booking

import (
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"
)

// The transition logic below is pure: it inspects and rewrites a BookingState
// and never touches the network or the session store. The usecase wraps it
// with persistence.

// ApplyFlow switches the step ordering and wipes every selection. Selections
// made under one ordering are not valid inputs to the other.
func ApplyFlow(state *models.BookingState, flow models.BookingFlow) error {
	if !flow.Valid() {
		return exceptions.ErrInvalidBookingFlow(fmt.Errorf("unknown flow %q", flow))
	}
	state.BookingFlow = flow
	state.CurrentStep = flow.InitialStep()
	state.SelectedDoctor = nil
	state.SelectedClinic = nil
	state.SelectedDate = ""
	state.SelectedSlot = nil
	state.TimeSlots = nil
	state.BookingDetails = nil
	return nil
}

// ClearScheduleSelections drops the date, slot and fetched grid. Called
// whenever the doctor or clinic changes: schedule data derived from the old
// parent entity is stale the moment the parent changes.
func ClearScheduleSelections(state *models.BookingState) {
	state.SelectedDate = ""
	state.SelectedSlot = nil
	state.TimeSlots = nil
}

func stepIndex(flow models.BookingFlow, step models.BookingStep) int {
	for i, s := range flow.Steps() {
		if s == step {
			return i
		}
	}
	return -1
}

// Advance moves one position forward in the flow's step order. The move into
// confirmation is not navigable: that step is reached only through a
// successful payment or quota-covered booking.
func Advance(state *models.BookingState) error {
	steps := state.BookingFlow.Steps()
	idx := stepIndex(state.BookingFlow, state.CurrentStep)
	if idx < 0 || idx == len(steps)-1 {
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("cannot advance from %q", state.CurrentStep))
	}
	if steps[idx+1] == models.StepConfirmation {
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("confirmation is not reachable by navigation"))
	}
	state.CurrentStep = steps[idx+1]
	return nil
}

// Retreat moves one position back. Going back from the date step in the
// clinic flow lands on clinic rather than the generic previous entry, so the
// user re-picks the clinic instead of the clinic's doctor list.
func Retreat(state *models.BookingState) error {
	if state.BookingFlow == models.BookingFlowClinic && state.CurrentStep == models.StepDate {
		state.CurrentStep = models.StepClinic
		return nil
	}

	steps := state.BookingFlow.Steps()
	idx := stepIndex(state.BookingFlow, state.CurrentStep)
	if idx <= 0 {
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("cannot go back from %q", state.CurrentStep))
	}
	if state.CurrentStep == models.StepConfirmation {
		return exceptions.ErrInvalidStepTransition(fmt.Errorf("confirmed bookings cannot be navigated backwards"))
	}
	state.CurrentStep = steps[idx-1]
	return nil
}

// MissingPrerequisites lists the steps that still need input before a review
// can be rendered, in fixed priority order: doctor, clinic, date/slot,
// details. Steps are named in the active flow's vocabulary.
func MissingPrerequisites(state *models.BookingState) []models.BookingStep {
	doctorStep := models.StepDoctor
	if state.BookingFlow == models.BookingFlowClinic {
		doctorStep = models.StepClinicDoctor
	}

	var missing []models.BookingStep
	if state.SelectedDoctor == nil {
		missing = append(missing, doctorStep)
	}
	if state.SelectedClinic == nil {
		missing = append(missing, models.StepClinic)
	}
	if state.SelectedDate == "" || state.SelectedSlot == nil {
		missing = append(missing, models.StepDate)
	}
	if state.BookingDetails == nil {
		missing = append(missing, models.StepDetails)
	}
	return missing
}

// FirstMissingStep is the jump target offered alongside the prerequisites
// checklist.
func FirstMissingStep(state *models.BookingState) models.BookingStep {
	missing := MissingPrerequisites(state)
	if len(missing) == 0 {
		return ""
	}
	return missing[0]
}
