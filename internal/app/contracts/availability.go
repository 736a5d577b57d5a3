package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"time"
)

// AvailabilityUsecase resolves bookable dates and normalized slots against the
// appointment backend. "now" is an explicit parameter so the past-slot policy
// stays deterministic under test.
type AvailabilityUsecase interface {
	GetBookableDates(ctx context.Context, doctorID, clinicID string, month, year int) ([]string, error)
	GetSlotsForDate(ctx context.Context, doctorID, clinicID, date string, now time.Time) ([]models.TimeSlot, error)
}
