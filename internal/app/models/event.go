package models

import "time"

type BookingEventType string

const (
	EventBookingConfirmed      BookingEventType = "booking.confirmed"
	EventAppointmentRebooked   BookingEventType = "booking.rescheduled"
	EventSubscriptionUsed      BookingEventType = "subscription.usage_decremented"
	EventBookingPaymentFailure BookingEventType = "booking.payment_failed"
)

// BookingEvent is the fire-and-forget message published after booking outcomes.
type BookingEvent struct {
	Type          BookingEventType `json:"type"`
	SessionID     string           `json:"sessionId"`
	UserID        string           `json:"userId"`
	AppointmentID string           `json:"appointmentId,omitempty"`
	DoctorID      string           `json:"doctorId,omitempty"`
	ClinicID      string           `json:"clinicId,omitempty"`
	Date          string           `json:"date,omitempty"`
	SlotID        string           `json:"slotId,omitempty"`
	OccurredAt    time.Time        `json:"occurredAt"`
}
