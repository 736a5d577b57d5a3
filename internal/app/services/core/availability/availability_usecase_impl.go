package availability

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AppointmentClient contracts.AppointmentClient
	Log               *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	appointmentClient contracts.AppointmentClient,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		instance := &availabilityUsecase{
			AppointmentClient: appointmentClient,
			Log:               logger,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

// GetBookableDates unions the requested month with the one after it, so the
// calendar can always show the next few weeks regardless of where in the month
// the user stands. A failed fetch degrades to an empty set; the caller surfaces
// "no availability" instead of an error page.
func (uc *availabilityUsecase) GetBookableDates(ctx context.Context, doctorID, clinicID string, month, year int) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetBookableDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	nextMonth, nextYear := month+1, year
	if nextMonth > 12 {
		nextMonth, nextYear = 1, year+1
	}

	seen := make(map[string]bool)
	for _, window := range []struct{ month, year int }{{month, year}, {nextMonth, nextYear}} {
		entries, err := uc.AppointmentClient.GetMonthlySlots(ctx, doctorID, clinicID, window.month, window.year)
		if err != nil {
			uc.Log.Warn("availabilityUsecase.GetBookableDates error fetching monthly slots, degrading to empty set",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("month", window.month),
				zap.Int("year", window.year),
				zap.Error(err),
			)
			return []string{}, nil
		}
		for _, date := range BookableDates(entries) {
			seen[date] = true
		}
	}

	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	uc.Log.Info("availabilityUsecase.GetBookableDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDateCountKey, len(dates)),
	)
	return dates, nil
}

func (uc *availabilityUsecase) GetSlotsForDate(ctx context.Context, doctorID, clinicID, date string, now time.Time) ([]models.TimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetSlotsForDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingDateKey, date),
	)

	// Slot fetches are meaningless without a clinic; the caller must send the
	// user back to clinic selection instead of guessing one.
	if clinicID == "" {
		err := exceptions.ErrClinicNotSelected(fmt.Errorf("slot fetch without clinic id"))
		uc.Log.Error("availabilityUsecase.GetSlotsForDate missing clinic id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	rawSlots, err := uc.AppointmentClient.GetAvailableSlotsForDate(ctx, doctorID, clinicID, date)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetSlotsForDate error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	slots := NormalizeSlots(rawSlots, date, now)

	uc.Log.Info("availabilityUsecase.GetSlotsForDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return slots, nil
}
