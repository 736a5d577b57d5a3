package models

import "time"

// BookingFlow selects the step ordering of the booking wizard: starting from a
// doctor or starting from a clinic.
type BookingFlow string

const (
	BookingFlowDoctor BookingFlow = "doctor"
	BookingFlowClinic BookingFlow = "clinic"
)

type BookingStep string

const (
	StepSelection    BookingStep = "selection"
	StepDoctor       BookingStep = "doctor"
	StepClinic       BookingStep = "clinic"
	StepClinicDoctor BookingStep = "clinic-doctor"
	StepDate         BookingStep = "date"
	StepSlot         BookingStep = "slot"
	StepDetails      BookingStep = "details"
	StepReview       BookingStep = "review"
	StepPayment      BookingStep = "payment"
	StepConfirmation BookingStep = "confirmation"
)

var (
	doctorFlowSteps = []BookingStep{StepDoctor, StepClinic, StepDate, StepDetails, StepReview, StepPayment, StepConfirmation}
	clinicFlowSteps = []BookingStep{StepClinic, StepClinicDoctor, StepDate, StepDetails, StepReview, StepPayment, StepConfirmation}
)

// Steps returns the fixed step order for the flow.
func (f BookingFlow) Steps() []BookingStep {
	switch f {
	case BookingFlowClinic:
		return clinicFlowSteps
	default:
		return doctorFlowSteps
	}
}

// Valid reports whether f is a known flow.
func (f BookingFlow) Valid() bool {
	return f == BookingFlowDoctor || f == BookingFlowClinic
}

// InitialStep is the first step of the flow's order.
func (f BookingFlow) InitialStep() BookingStep {
	return f.Steps()[0]
}

// ContainsStep reports whether step belongs to the flow's fixed order.
func (f BookingFlow) ContainsStep(step BookingStep) bool {
	for _, s := range f.Steps() {
		if s == step {
			return true
		}
	}
	return false
}

type PatientType string

const (
	PatientTypeSelf   PatientType = "self"
	PatientTypeFamily PatientType = "family"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// Doctor and Clinic are read-only references fetched from the directory service.
type Doctor struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Specialty       string `json:"specialty,omitempty"`
	ConsultationFee int64  `json:"consultationFee"`
}

type Clinic struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// TimeSlot is derived per doctor+clinic+date fetch, never persisted.
type TimeSlot struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MaxBookings int    `json:"maxBookings"`
	BookedCount int    `json:"bookedCount"`
	Available   bool   `json:"available"`
}

// SlotGrid carries a fetched slot list together with the date it was fetched
// for, so a late-resolving fetch can be rejected when the user has moved on.
type SlotGrid struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

type BookingDetails struct {
	PatientType   PatientType `json:"patientType"`
	PatientName   string      `json:"patientName,omitempty"`
	PatientAge    int         `json:"patientAge,omitempty"`
	PatientGender string      `json:"patientGender,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

// BookingState is the single source of truth for one booking session. It is
// mutated exclusively through named actions applied by the booking flow.
type BookingState struct {
	SessionID      string          `json:"sessionId"`
	UserID         string          `json:"userId"`
	BookingFlow    BookingFlow     `json:"bookingFlow"`
	CurrentStep    BookingStep     `json:"currentStep"`
	SelectedDoctor *Doctor         `json:"selectedDoctor,omitempty"`
	SelectedClinic *Clinic         `json:"selectedClinic,omitempty"`
	SelectedDate   string          `json:"selectedDate,omitempty"`
	SelectedSlot   *TimeSlot       `json:"selectedSlot,omitempty"`
	TimeSlots      *SlotGrid       `json:"timeSlots,omitempty"`
	BookingDetails *BookingDetails `json:"bookingDetails,omitempty"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus,omitempty"`
	Processing     bool            `json:"processing"`
	AppointmentID  string          `json:"appointmentId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// NewBookingState creates the default state for a fresh session: doctor flow,
// positioned on its first step.
func NewBookingState(sessionID, userID string, now time.Time) *BookingState {
	return &BookingState{
		SessionID:   sessionID,
		UserID:      userID,
		BookingFlow: BookingFlowDoctor,
		CurrentStep: StepDoctor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
