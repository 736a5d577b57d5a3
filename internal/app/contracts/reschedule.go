package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/upstream_dto"
)

// RescheduleConfirmFunc finalizes a reschedule once the new target passed all
// guards. Supplied by the caller at construction; the reschedule flow has no
// payment step of its own.
type RescheduleConfirmFunc func(ctx context.Context, appointmentID, date string, slot models.TimeSlot, clinic models.Clinic) (*upstream_dto.AppointmentRecord, error)

type RescheduleUsecase interface {
	StartSession(ctx context.Context, userID string, request *requests.CreateRescheduleSession) (*models.RescheduleState, error)
	GetState(ctx context.Context, userID, sessionID string) (*models.RescheduleState, error)
	SelectClinic(ctx context.Context, userID, sessionID string, request *requests.SelectClinic) (*models.RescheduleState, error)
	SelectDate(ctx context.Context, userID, sessionID string, request *requests.SelectDate) (*models.RescheduleState, error)
	SelectSlot(ctx context.Context, userID, sessionID string, request *requests.SelectSlot) (*models.RescheduleState, error)
	Submit(ctx context.Context, userID, sessionID string) (*models.RescheduleState, error)
}
