package requests

type CreateRescheduleSession struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}
