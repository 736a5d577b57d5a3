package models

import "time"

// RescheduleState is the session state for moving an existing appointment to a
// new date/slot/clinic. The current triple is captured at session start so an
// identical target can be rejected before any network call.
type RescheduleState struct {
	SessionID     string `json:"sessionId"`
	UserID        string `json:"userId"`
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`

	CurrentClinicID string `json:"currentClinicId"`
	CurrentDate     string `json:"currentDate"`
	CurrentSlotID   string `json:"currentSlotId"`

	Clinics        []Clinic  `json:"clinics,omitempty"`
	SelectedClinic *Clinic   `json:"selectedClinic,omitempty"`
	SelectedDate   string    `json:"selectedDate,omitempty"`
	SelectedSlot   *TimeSlot `json:"selectedSlot,omitempty"`
	TimeSlots      *SlotGrid `json:"timeSlots,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TargetDiffers reports whether the selected (date, slot, clinic) triple
// differs from the appointment's current one.
func (s *RescheduleState) TargetDiffers() bool {
	if s.SelectedClinic == nil || s.SelectedSlot == nil || s.SelectedDate == "" {
		return false
	}
	return s.SelectedClinic.ID != s.CurrentClinicID ||
		s.SelectedDate != s.CurrentDate ||
		s.SelectedSlot.ID != s.CurrentSlotID
}
