package conflicts

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// IsPastSelection reports whether the date, or the date's clock time, is
// already behind now. The date comparison is date-only (time zeroed); a clock
// time at or before now on today's date counts as past. Unparseable inputs are
// treated as not-past: ambiguous input must never block a selection.
func IsPastSelection(date, timeStr string, now time.Time) bool {
	parsed, err := time.ParseInLocation(constvars.DateOnlyFormat, date, now.Location())
	if err != nil {
		return false
	}

	day := utils.TruncateToDay(parsed)
	today := utils.TruncateToDay(now)
	if day.Before(today) {
		return true
	}
	if day.After(today) {
		return false
	}

	clock, ok := utils.ParseClock(timeStr)
	if !ok {
		return false
	}
	return !today.Add(clock).After(now)
}

// Guard is the final gate before a slot selection advances to details entry.
type Guard struct {
	AppointmentClient contracts.AppointmentClient
	Log               *zap.Logger
}

var (
	guardInstance *Guard
	onceGuard     sync.Once
)

func NewGuard(appointmentClient contracts.AppointmentClient, logger *zap.Logger) *Guard {
	onceGuard.Do(func() {
		guardInstance = &Guard{
			AppointmentClient: appointmentClient,
			Log:               logger,
		}
	})
	return guardInstance
}

// HasExistingBooking asks the appointment service whether the user already
// holds a booking in the same doctor/clinic/date/time window. A service error
// blocks the selection: double-booking is the costlier failure, so this check
// fails closed, unlike the time parsing above.
func (g *Guard) HasExistingBooking(ctx context.Context, userID, doctorID, clinicID, date string, slotRange contracts.SlotRange) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("conflicts.Guard.HasExistingBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingDateKey, date),
	)

	hasBooking, err := g.AppointmentClient.CheckUserBookingForSlot(ctx, userID, doctorID, clinicID, date, slotRange)
	if err != nil {
		g.Log.Error("conflicts.Guard.HasExistingBooking conflict check failed, blocking selection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrConflictCheckUnavailable(err)
	}

	return hasBooking, nil
}
