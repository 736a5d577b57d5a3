package responses

import "medibook-service/internal/app/models"

// BookingReview is the summary shown before payment. When prerequisites are
// missing, MissingSteps is populated and the pricing fields are zeroed; the
// client jumps to FirstMissingStep instead of rendering the summary.
type BookingReview struct {
	Doctor          *models.Doctor         `json:"doctor,omitempty"`
	Clinic          *models.Clinic         `json:"clinic,omitempty"`
	Date            string                 `json:"date,omitempty"`
	Slot            *models.TimeSlot       `json:"slot,omitempty"`
	Details         *models.BookingDetails `json:"details,omitempty"`
	ConsultationFee int64                  `json:"consultationFee"`
	Discount        int64                  `json:"discount"`
	PayableAmount   int64                  `json:"payableAmount"`
	CoveredByQuota  bool                   `json:"coveredByQuota"`
	QuotaRemaining  *int                   `json:"quotaRemaining,omitempty"`

	MissingSteps     []models.BookingStep `json:"missingSteps,omitempty"`
	FirstMissingStep models.BookingStep   `json:"firstMissingStep,omitempty"`
}

// BookableDates is the calendar response for a doctor+clinic+month query.
type BookableDates struct {
	DoctorID string   `json:"doctorId"`
	ClinicID string   `json:"clinicId"`
	Dates    []string `json:"dates"`
}

type SlotsForDate struct {
	DoctorID string            `json:"doctorId"`
	ClinicID string            `json:"clinicId"`
	Date     string            `json:"date"`
	Slots    []models.TimeSlot `json:"slots"`
}

type PaymentResult struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId,omitempty"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}
