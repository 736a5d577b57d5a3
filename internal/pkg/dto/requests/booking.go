package requests

type CreateBookingSession struct {
	Flow string `json:"flow,omitempty" validate:"omitempty,booking_flow"`
}

type SetBookingFlow struct {
	Flow string `json:"flow" validate:"required,booking_flow"`
}

type SelectDoctor struct {
	DoctorID string `json:"doctorId" validate:"required"`
}

type SelectClinic struct {
	ClinicID string `json:"clinicId" validate:"required"`
}

type SelectDate struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SelectSlot struct {
	SlotID string `json:"slotId" validate:"required"`
}

type BookingDetails struct {
	PatientType   string `json:"patientType" validate:"required,patient_type"`
	PatientName   string `json:"patientName,omitempty" validate:"required_if=PatientType family"`
	PatientAge    int    `json:"patientAge,omitempty" validate:"required_if=PatientType family,omitempty,gt=0"`
	PatientGender string `json:"patientGender,omitempty" validate:"required_if=PatientType family"`
	Notes         string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type Payment struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type PaymentRequest struct {
	ReferenceID   string `json:"referenceId"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	CustomerName  string `json:"customerName,omitempty"`
	Description   string `json:"description,omitempty"`
}
