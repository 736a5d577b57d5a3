package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	StartSession(ctx context.Context, userID string, request *requests.CreateBookingSession) (*models.BookingState, error)
	GetState(ctx context.Context, userID, sessionID string) (*models.BookingState, error)
	SetFlow(ctx context.Context, userID, sessionID string, request *requests.SetBookingFlow) (*models.BookingState, error)
	SelectDoctor(ctx context.Context, userID, sessionID string, request *requests.SelectDoctor) (*models.BookingState, error)
	SelectClinic(ctx context.Context, userID, sessionID string, request *requests.SelectClinic) (*models.BookingState, error)
	SelectDate(ctx context.Context, userID, sessionID string, request *requests.SelectDate) (*models.BookingState, error)
	SelectSlot(ctx context.Context, userID, sessionID string, request *requests.SelectSlot) (*models.BookingState, error)
	SetDetails(ctx context.Context, userID, sessionID string, request *requests.BookingDetails) (*models.BookingState, error)
	Review(ctx context.Context, userID, sessionID string) (*responses.BookingReview, error)
	Pay(ctx context.Context, userID, sessionID string, request *requests.Payment) (*models.BookingState, error)
	GoBack(ctx context.Context, userID, sessionID string) (*models.BookingState, error)
	GoNext(ctx context.Context, userID, sessionID string) (*models.BookingState, error)
	Reset(ctx context.Context, userID, sessionID string) (*models.BookingState, error)
}
