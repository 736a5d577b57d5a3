package subscriptions

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

const appointmentService = "appointment"

type subscriptionUsecase struct {
	SubscriptionClient contracts.SubscriptionClient
	EventPublisher     contracts.EventPublisher
	Log                *zap.Logger
}

var (
	subscriptionUsecaseInstance contracts.SubscriptionUsecase
	onceSubscriptionUsecase     sync.Once
)

func NewSubscriptionUsecase(
	subscriptionClient contracts.SubscriptionClient,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.SubscriptionUsecase {
	onceSubscriptionUsecase.Do(func() {
		instance := &subscriptionUsecase{
			SubscriptionClient: subscriptionClient,
			EventPublisher:     eventPublisher,
			Log:                logger,
		}
		subscriptionUsecaseInstance = instance
	})
	return subscriptionUsecaseInstance
}

// CheckQuota degrades to not-eligible when the subscription service cannot be
// reached; a missing discount is recoverable, a blocked booking is not.
func (uc *subscriptionUsecase) CheckQuota(ctx context.Context, userID string) (contracts.QuotaResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.CheckQuota called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	payload, err := uc.SubscriptionClient.GetActiveSubscription(ctx, userID)
	if err != nil {
		uc.Log.Warn("subscriptionUsecase.CheckQuota error fetching subscription, treating as not eligible",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return contracts.QuotaResult{}, nil
	}

	result := Evaluate(payload)
	uc.Log.Info("subscriptionUsecase.CheckQuota evaluated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("eligible", result.Eligible),
	)
	return result, nil
}

// RecordUsage decrements the quota fire-and-forget. The booking is already
// confirmed by the time this runs; a failed decrement is logged, never
// surfaced.
func (uc *subscriptionUsecase) RecordUsage(ctx context.Context, userID, appointmentID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	go func() {
		usageCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()

		err := uc.SubscriptionClient.UseService(usageCtx, contracts.UseServiceInput{
			UserID:        userID,
			Service:       appointmentService,
			AppointmentID: appointmentID,
			Action:        "use",
			Count:         1,
		})
		if err != nil {
			uc.Log.Error("subscriptionUsecase.RecordUsage error decrementing usage",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.Error(err),
			)
			return
		}

		event := models.BookingEvent{
			Type:          models.EventSubscriptionUsed,
			UserID:        userID,
			AppointmentID: appointmentID,
			OccurredAt:    time.Now(),
		}
		if err := uc.EventPublisher.Publish(usageCtx, event); err != nil {
			uc.Log.Error("subscriptionUsecase.RecordUsage error publishing usage event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}

		uc.Log.Info("subscriptionUsecase.RecordUsage usage decremented",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
	}()
}
