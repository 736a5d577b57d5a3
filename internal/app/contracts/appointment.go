package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/upstream_dto"
)

type BookAppointmentInput struct {
	UserID        string `json:"userId"`
	DoctorID      string `json:"doctorId"`
	ClinicID      string `json:"clinicId"`
	Date          string `json:"date"`
	SlotID        string `json:"slotId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	PatientType   string `json:"patientType"`
	PatientName   string `json:"patientName,omitempty"`
	PatientAge    int    `json:"patientAge,omitempty"`
	PatientGender string `json:"patientGender,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type RescheduleAppointmentInput struct {
	AppointmentID string `json:"appointmentId"`
	ClinicID      string `json:"clinicId"`
	Date          string `json:"date"`
	SlotID        string `json:"slotId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

// SlotRange identifies a time window within a date for conflict checks.
type SlotRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AppointmentClient talks to the appointment backend that owns appointment data.
type AppointmentClient interface {
	GetAvailableSlotsForDate(ctx context.Context, doctorID, clinicID, date string) ([]upstream_dto.RawSlot, error)
	GetMonthlySlots(ctx context.Context, doctorID, clinicID string, month, year int) ([]upstream_dto.RawDateEntry, error)
	CheckUserBookingForSlot(ctx context.Context, userID, doctorID, clinicID, date string, slotRange SlotRange) (bool, error)
	BookAppointment(ctx context.Context, input BookAppointmentInput) (*upstream_dto.AppointmentRecord, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*upstream_dto.AppointmentRecord, error)
	RescheduleAppointment(ctx context.Context, input RescheduleAppointmentInput) (*upstream_dto.AppointmentRecord, error)
}
