package contracts

import (
	"context"

	"github.com/goccy/go-json"
)

// QuotaResult is the normalized view of an arbitrarily-shaped subscription
// payload. Remaining is nil when the payload carries no remaining-count field.
type QuotaResult struct {
	Eligible  bool `json:"eligible"`
	Remaining *int `json:"remaining,omitempty"`
}

type UseServiceInput struct {
	UserID        string `json:"userId"`
	Service       string `json:"service"`
	AppointmentID string `json:"appointmentId"`
	Action        string `json:"action"`
	Count         int    `json:"count"`
}

// SubscriptionClient reads subscription entitlements. GetActiveSubscription
// returns the raw payload untouched; the shape differs per deployment and is
// normalized by the quota evaluator.
type SubscriptionClient interface {
	GetActiveSubscription(ctx context.Context, userID string) (json.RawMessage, error)
	UseService(ctx context.Context, input UseServiceInput) error
}

// SubscriptionUsecase evaluates quota eligibility and applies usage decrements.
type SubscriptionUsecase interface {
	CheckQuota(ctx context.Context, userID string) (QuotaResult, error)
	RecordUsage(ctx context.Context, userID, appointmentID string)
}
