package reschedule

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/conflicts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The reschedule flow shares the availability and conflict machinery with the
// booking flow but carries no payment step: submission runs the guards, then
// hands off to the confirm callback supplied at construction.
type rescheduleUsecase struct {
	RedisRepository     contracts.RedisRepository
	DirectoryClient     contracts.DirectoryClient
	AppointmentClient   contracts.AppointmentClient
	AvailabilityUsecase contracts.AvailabilityUsecase
	ConflictGuard       *conflicts.Guard
	Confirm             contracts.RescheduleConfirmFunc
	EventPublisher      contracts.EventPublisher
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger

	now func() time.Time
}

var (
	rescheduleUsecaseInstance contracts.RescheduleUsecase
	onceRescheduleUsecase     sync.Once
)

func NewRescheduleUsecase(
	redisRepository contracts.RedisRepository,
	directoryClient contracts.DirectoryClient,
	appointmentClient contracts.AppointmentClient,
	availabilityUsecase contracts.AvailabilityUsecase,
	conflictGuard *conflicts.Guard,
	confirm contracts.RescheduleConfirmFunc,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RescheduleUsecase {
	onceRescheduleUsecase.Do(func() {
		instance := &rescheduleUsecase{
			RedisRepository:     redisRepository,
			DirectoryClient:     directoryClient,
			AppointmentClient:   appointmentClient,
			AvailabilityUsecase: availabilityUsecase,
			ConflictGuard:       conflictGuard,
			Confirm:             confirm,
			EventPublisher:      eventPublisher,
			InternalConfig:      internalConfig,
			Log:                 logger,
			now:                 time.Now,
		}
		rescheduleUsecaseInstance = instance
	})
	return rescheduleUsecaseInstance
}

func (uc *rescheduleUsecase) sessionTTL() time.Duration {
	minutes := uc.InternalConfig.App.BookingSessionTTLInMinutes
	if minutes <= 0 {
		minutes = constvars.BookingSessionTTLInMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func (uc *rescheduleUsecase) loadState(ctx context.Context, userID, sessionID string) (*models.RescheduleState, error) {
	data, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RescheduleSessionKeyFormat, sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrBookingSessionNotFound(fmt.Errorf("no reschedule session under id %s", sessionID))
	}

	state := new(models.RescheduleState)
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if state.UserID != userID {
		return nil, exceptions.ErrBookingSessionNotFound(fmt.Errorf("reschedule session %s does not belong to caller", sessionID))
	}
	return state, nil
}

func (uc *rescheduleUsecase) saveState(ctx context.Context, state *models.RescheduleState) error {
	state.UpdatedAt = uc.now()
	return uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RescheduleSessionKeyFormat, state.SessionID), state, uc.sessionTTL())
}

func (uc *rescheduleUsecase) StartSession(ctx context.Context, userID string, request *requests.CreateRescheduleSession) (*models.RescheduleState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rescheduleUsecase.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	record, err := uc.AppointmentClient.GetAppointmentByID(ctx, request.AppointmentID)
	if err != nil {
		uc.Log.Error("rescheduleUsecase.StartSession error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if record.UserID != userID {
		return nil, exceptions.ErrBookingSessionNotFound(fmt.Errorf("appointment %s does not belong to caller", request.AppointmentID))
	}

	clinics, err := uc.DirectoryClient.GetClinicsByDoctor(ctx, record.DoctorID)
	if err != nil {
		uc.Log.Error("rescheduleUsecase.StartSession error fetching doctor clinics",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	state := &models.RescheduleState{
		SessionID:       uuid.NewString(),
		UserID:          userID,
		AppointmentID:   record.ID,
		DoctorID:        record.DoctorID,
		CurrentClinicID: record.ClinicID,
		CurrentDate:     record.Date,
		CurrentSlotID:   record.SlotID,
		Clinics:         clinics,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// The current clinic is pre-selected; the list stays offered when the
	// doctor practices at more than one.
	for i := range clinics {
		if clinics[i].ID == record.ClinicID {
			state.SelectedClinic = &clinics[i]
			break
		}
	}
	if state.SelectedClinic == nil {
		state.SelectedClinic = &models.Clinic{ID: record.ClinicID}
	}

	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}

	uc.Log.Info("rescheduleUsecase.StartSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, state.SessionID),
	)
	return state, nil
}

func (uc *rescheduleUsecase) GetState(ctx context.Context, userID, sessionID string) (*models.RescheduleState, error) {
	return uc.loadState(ctx, userID, sessionID)
}

func (uc *rescheduleUsecase) SelectClinic(ctx context.Context, userID, sessionID string, request *requests.SelectClinic) (*models.RescheduleState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rescheduleUsecase.SelectClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	var clinic *models.Clinic
	for i := range state.Clinics {
		if state.Clinics[i].ID == request.ClinicID {
			clinic = &state.Clinics[i]
			break
		}
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotSelected(fmt.Errorf("clinic %s is not offered by this doctor", request.ClinicID))
	}

	state.SelectedClinic = clinic
	state.SelectedDate = ""
	state.SelectedSlot = nil
	state.TimeSlots = nil

	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *rescheduleUsecase) SelectDate(ctx context.Context, userID, sessionID string, request *requests.SelectDate) (*models.RescheduleState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rescheduleUsecase.SelectDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.SelectedClinic == nil {
		return nil, exceptions.ErrClinicNotSelected(fmt.Errorf("date selected before clinic"))
	}

	now := uc.now()
	if conflicts.IsPastSelection(request.Date, "", now) {
		return nil, exceptions.ErrSlotInPast(fmt.Errorf("date %s is in the past", request.Date))
	}

	state.SelectedDate = request.Date
	state.SelectedSlot = nil
	state.TimeSlots = nil
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}

	slots, err := uc.AvailabilityUsecase.GetSlotsForDate(ctx, state.DoctorID, state.SelectedClinic.ID, request.Date, now)
	if err != nil {
		return nil, err
	}

	state, err = uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.SelectedDate != request.Date {
		uc.Log.Warn("rescheduleUsecase.SelectDate discarding late slot fetch for superseded date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, request.Date),
		)
		return state, nil
	}

	state.TimeSlots = &models.SlotGrid{Date: request.Date, Slots: slots}
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *rescheduleUsecase) SelectSlot(ctx context.Context, userID, sessionID string, request *requests.SelectSlot) (*models.RescheduleState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rescheduleUsecase.SelectSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.SelectedDate == "" {
		return nil, exceptions.ErrDateNotSelected(fmt.Errorf("slot selected before date"))
	}
	if state.TimeSlots == nil || state.TimeSlots.Date != state.SelectedDate {
		return nil, exceptions.ErrStaleSlotGrid(fmt.Errorf("slot grid missing or fetched for another date"))
	}

	var slot *models.TimeSlot
	for i := range state.TimeSlots.Slots {
		if state.TimeSlots.Slots[i].ID == request.SlotID {
			slot = &state.TimeSlots.Slots[i]
			break
		}
	}
	if slot == nil || !slot.Available {
		return nil, exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s not available on %s", request.SlotID, state.SelectedDate))
	}
	if conflicts.IsPastSelection(state.SelectedDate, slot.StartTime, uc.now()) {
		return nil, exceptions.ErrSlotInPast(fmt.Errorf("slot %s starts in the past", request.SlotID))
	}

	selected := *slot
	state.SelectedSlot = &selected

	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *rescheduleUsecase) Submit(ctx context.Context, userID, sessionID string) (*models.RescheduleState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rescheduleUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.SelectedDate == "" {
		return nil, exceptions.ErrDateNotSelected(fmt.Errorf("submit before date selection"))
	}
	if state.SelectedSlot == nil {
		return nil, exceptions.ErrSlotNotSelected(fmt.Errorf("submit before slot selection"))
	}

	// An identical target is rejected here, before any network call.
	if !state.TargetDiffers() {
		return nil, exceptions.ErrRescheduleIdenticalTarget(fmt.Errorf("target equals current appointment"))
	}

	now := uc.now()
	if conflicts.IsPastSelection(state.SelectedDate, state.SelectedSlot.StartTime, now) {
		return nil, exceptions.ErrSlotInPast(fmt.Errorf("target slot starts in the past"))
	}

	hasBooking, err := uc.ConflictGuard.HasExistingBooking(ctx, userID, state.DoctorID, state.SelectedClinic.ID, state.SelectedDate, contracts.SlotRange{
		StartTime: state.SelectedSlot.StartTime,
		EndTime:   state.SelectedSlot.EndTime,
	})
	if err != nil {
		return nil, err
	}
	if hasBooking {
		return nil, exceptions.ErrSlotAlreadyBooked(fmt.Errorf("user already booked the target window"))
	}

	record, err := uc.Confirm(ctx, state.AppointmentID, state.SelectedDate, *state.SelectedSlot, *state.SelectedClinic)
	if err != nil {
		uc.Log.Error("rescheduleUsecase.Submit confirm callback failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	event := models.BookingEvent{
		Type:          models.EventAppointmentRebooked,
		SessionID:     state.SessionID,
		UserID:        state.UserID,
		AppointmentID: record.ID,
		DoctorID:      state.DoctorID,
		ClinicID:      state.SelectedClinic.ID,
		Date:          state.SelectedDate,
		SlotID:        state.SelectedSlot.ID,
		OccurredAt:    now,
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("rescheduleUsecase.Submit error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	state.CurrentClinicID = state.SelectedClinic.ID
	state.CurrentDate = state.SelectedDate
	state.CurrentSlotID = state.SelectedSlot.ID

	if err := uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RescheduleSessionKeyFormat, sessionID)); err != nil {
		uc.Log.Error("rescheduleUsecase.Submit error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("rescheduleUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, record.ID),
	)
	return state, nil
}
