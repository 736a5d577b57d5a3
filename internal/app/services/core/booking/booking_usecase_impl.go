package booking

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/conflicts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	RedisRepository       contracts.RedisRepository
	DirectoryClient       contracts.DirectoryClient
	AvailabilityUsecase   contracts.AvailabilityUsecase
	ConflictGuard         *conflicts.Guard
	AppointmentClient     contracts.AppointmentClient
	SubscriptionUsecase   contracts.SubscriptionUsecase
	PaymentGateway        contracts.PaymentGatewayService
	LockService           contracts.LockerService
	TransactionRepository contracts.TransactionRepository
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger

	now func() time.Time
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	redisRepository contracts.RedisRepository,
	directoryClient contracts.DirectoryClient,
	availabilityUsecase contracts.AvailabilityUsecase,
	conflictGuard *conflicts.Guard,
	appointmentClient contracts.AppointmentClient,
	subscriptionUsecase contracts.SubscriptionUsecase,
	paymentGateway contracts.PaymentGatewayService,
	lockService contracts.LockerService,
	transactionRepository contracts.TransactionRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			RedisRepository:       redisRepository,
			DirectoryClient:       directoryClient,
			AvailabilityUsecase:   availabilityUsecase,
			ConflictGuard:         conflictGuard,
			AppointmentClient:     appointmentClient,
			SubscriptionUsecase:   subscriptionUsecase,
			PaymentGateway:        paymentGateway,
			LockService:           lockService,
			TransactionRepository: transactionRepository,
			EventPublisher:        eventPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
			now:                   time.Now,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) sessionTTL() time.Duration {
	minutes := uc.InternalConfig.App.BookingSessionTTLInMinutes
	if minutes <= 0 {
		minutes = constvars.BookingSessionTTLInMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func (uc *bookingUsecase) loadState(ctx context.Context, userID, sessionID string) (*models.BookingState, error) {
	data, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.BookingSessionKeyFormat, sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrBookingSessionNotFound(fmt.Errorf("no session under id %s", sessionID))
	}

	state := new(models.BookingState)
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if state.UserID != userID {
		return nil, exceptions.ErrBookingSessionNotFound(fmt.Errorf("session %s does not belong to caller", sessionID))
	}
	return state, nil
}

func (uc *bookingUsecase) saveState(ctx context.Context, state *models.BookingState) error {
	state.UpdatedAt = uc.now()
	return uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.BookingSessionKeyFormat, state.SessionID), state, uc.sessionTTL())
}

func (uc *bookingUsecase) StartSession(ctx context.Context, userID string, request *requests.CreateBookingSession) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	state := models.NewBookingState(uuid.NewString(), userID, uc.now())
	if request.Flow != "" {
		if err := ApplyFlow(state, models.BookingFlow(request.Flow)); err != nil {
			return nil, err
		}
	}

	if err := uc.saveState(ctx, state); err != nil {
		uc.Log.Error("bookingUsecase.StartSession error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.StartSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, state.SessionID),
		zap.String(constvars.LoggingFlowKey, string(state.BookingFlow)),
	)
	return state, nil
}

func (uc *bookingUsecase) GetState(ctx context.Context, userID, sessionID string) (*models.BookingState, error) {
	return uc.loadState(ctx, userID, sessionID)
}

func (uc *bookingUsecase) SetFlow(ctx context.Context, userID, sessionID string, request *requests.SetBookingFlow) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SetFlow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingFlowKey, request.Flow),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ApplyFlow(state, models.BookingFlow(request.Flow)); err != nil {
		return nil, err
	}
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *bookingUsecase) SelectDoctor(ctx context.Context, userID, sessionID string, request *requests.SelectDoctor) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SelectDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DirectoryClient.GetDoctorByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("bookingUsecase.SelectDoctor error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	state.SelectedDoctor = doctor
	ClearScheduleSelections(state)

	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *bookingUsecase) SelectClinic(ctx context.Context, userID, sessionID string, request *requests.SelectClinic) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SelectClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	clinic, err := uc.findClinic(ctx, state, request.ClinicID)
	if err != nil {
		uc.Log.Error("bookingUsecase.SelectClinic error resolving clinic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	state.SelectedClinic = clinic
	ClearScheduleSelections(state)

	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// findClinic resolves the clinic from the doctor's clinic list when a doctor
// is already selected, else from the full directory.
func (uc *bookingUsecase) findClinic(ctx context.Context, state *models.BookingState, clinicID string) (*models.Clinic, error) {
	var (
		clinics []models.Clinic
		err     error
	)
	if state.SelectedDoctor != nil {
		clinics, err = uc.DirectoryClient.GetClinicsByDoctor(ctx, state.SelectedDoctor.ID)
	} else {
		clinics, err = uc.DirectoryClient.GetAllClinics(ctx)
	}
	if err != nil {
		return nil, err
	}

	for i := range clinics {
		if clinics[i].ID == clinicID {
			return &clinics[i], nil
		}
	}
	return nil, exceptions.ErrClinicNotSelected(fmt.Errorf("clinic %s not offered for this selection", clinicID))
}

func (uc *bookingUsecase) SelectDate(ctx context.Context, userID, sessionID string, request *requests.SelectDate) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SelectDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.SelectedDoctor == nil {
		return nil, exceptions.ErrDoctorNotSelected(fmt.Errorf("date selected before doctor"))
	}
	if state.SelectedClinic == nil {
		return nil, exceptions.ErrClinicNotSelected(fmt.Errorf("date selected before clinic"))
	}

	now := uc.now()
	if conflicts.IsPastSelection(request.Date, "", now) {
		return nil, exceptions.ErrSlotInPast(fmt.Errorf("date %s is in the past", request.Date))
	}

	// The old grid is dropped before the fetch so a failed fetch can never
	// leave slots from a previously selected date on display.
	state.SelectedDate = request.Date
	state.SelectedSlot = nil
	state.TimeSlots = nil
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}

	slots, err := uc.AvailabilityUsecase.GetSlotsForDate(ctx, state.SelectedDoctor.ID, state.SelectedClinic.ID, request.Date, now)
	if err != nil {
		uc.Log.Error("bookingUsecase.SelectDate error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Re-read before applying: the user may have moved to another date while
	// the fetch was in flight, and stale results must not overwrite it.
	state, err = uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.SelectedDate != request.Date {
		uc.Log.Warn("bookingUsecase.SelectDate discarding late slot fetch for superseded date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, request.Date),
		)
		return state, nil
	}

	state.TimeSlots = &models.SlotGrid{Date: request.Date, Slots: slots}
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.SelectDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return state, nil
}

func (uc *bookingUsecase) SelectSlot(ctx context.Context, userID, sessionID string, request *requests.SelectSlot) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SelectSlot called",
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

	now := uc.now()
	if conflicts.IsPastSelection(state.SelectedDate, slot.StartTime, now) {
		return nil, exceptions.ErrSlotInPast(fmt.Errorf("slot %s starts in the past", request.SlotID))
	}

	hasBooking, err := uc.ConflictGuard.HasExistingBooking(ctx, userID, state.SelectedDoctor.ID, state.SelectedClinic.ID, state.SelectedDate, contracts.SlotRange{
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	})
	if err != nil {
		return nil, err
	}
	if hasBooking {
		return nil, exceptions.ErrSlotAlreadyBooked(fmt.Errorf("user already booked %s-%s on %s", slot.StartTime, slot.EndTime, state.SelectedDate))
	}

	selected := *slot
	state.SelectedSlot = &selected

	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *bookingUsecase) SetDetails(ctx context.Context, userID, sessionID string, request *requests.BookingDetails) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SetDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	state.BookingDetails = &models.BookingDetails{
		PatientType:   models.PatientType(request.PatientType),
		PatientName:   request.PatientName,
		PatientAge:    request.PatientAge,
		PatientGender: request.PatientGender,
		Notes:         request.Notes,
	}

	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *bookingUsecase) Review(ctx context.Context, userID, sessionID string) (*responses.BookingReview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Review called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	// Missing prerequisites render as a checklist with a jump target, never
	// as an error page.
	if missing := MissingPrerequisites(state); len(missing) > 0 {
		return &responses.BookingReview{
			MissingSteps:     missing,
			FirstMissingStep: missing[0],
		}, nil
	}

	review := &responses.BookingReview{
		Doctor:          state.SelectedDoctor,
		Clinic:          state.SelectedClinic,
		Date:            state.SelectedDate,
		Slot:            state.SelectedSlot,
		Details:         state.BookingDetails,
		ConsultationFee: state.SelectedDoctor.ConsultationFee,
		PayableAmount:   state.SelectedDoctor.ConsultationFee,
	}

	quota, err := uc.SubscriptionUsecase.CheckQuota(ctx, userID)
	if err != nil {
		return nil, err
	}
	if quota.Eligible {
		review.Discount = review.ConsultationFee
		review.PayableAmount = 0
		review.CoveredByQuota = true
		review.QuotaRemaining = quota.Remaining
	}

	uc.Log.Info("bookingUsecase.Review succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAmountKey, review.PayableAmount),
	)
	return review, nil
}

func (uc *bookingUsecase) Pay(ctx context.Context, userID, sessionID string, request *requests.Payment) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Pay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if state.CurrentStep == models.StepConfirmation {
		return nil, exceptions.ErrBookingAlreadyComplete(fmt.Errorf("session %s already confirmed", sessionID))
	}
	if state.Processing {
		return nil, exceptions.ErrBookingInProgress(fmt.Errorf("session %s is processing", sessionID))
	}
	if missing := MissingPrerequisites(state); len(missing) > 0 {
		return nil, uc.missingStepError(missing[0])
	}

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, sessionID)
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, time.Duration(constvars.BookingLockTTLInSeconds)*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingInProgress(fmt.Errorf("payment lock held for session %s", sessionID))
	}
	defer func() {
		if unlockErr := uc.LockService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("bookingUsecase.Pay error releasing payment lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	state.Processing = true
	state.PaymentMethod = request.PaymentMethod
	state.PaymentStatus = models.PaymentStatusProcessing
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}

	quota, err := uc.SubscriptionUsecase.CheckQuota(ctx, userID)
	if err != nil {
		return nil, uc.failPayment(ctx, state, err)
	}

	amount := state.SelectedDoctor.ConsultationFee
	var paymentID string
	if !quota.Eligible {
		payment, err := uc.PaymentGateway.CreatePayment(ctx, &requests.PaymentRequest{
			ReferenceID:   sessionID,
			Amount:        amount,
			PaymentMethod: request.PaymentMethod,
			Description:   fmt.Sprintf("consultation with %s on %s", state.SelectedDoctor.Name, state.SelectedDate),
		})
		if err != nil {
			return nil, uc.failPayment(ctx, state, err)
		}
		if !payment.Success {
			return nil, uc.failPayment(ctx, state, exceptions.ErrPaymentFailed(fmt.Errorf("gateway reported status %s", payment.Status)))
		}
		paymentID = payment.PaymentID
	}

	record, err := uc.AppointmentClient.BookAppointment(ctx, contracts.BookAppointmentInput{
		UserID:        userID,
		DoctorID:      state.SelectedDoctor.ID,
		ClinicID:      state.SelectedClinic.ID,
		Date:          state.SelectedDate,
		SlotID:        state.SelectedSlot.ID,
		StartTime:     state.SelectedSlot.StartTime,
		EndTime:       state.SelectedSlot.EndTime,
		PatientType:   string(state.BookingDetails.PatientType),
		PatientName:   state.BookingDetails.PatientName,
		PatientAge:    state.BookingDetails.PatientAge,
		PatientGender: state.BookingDetails.PatientGender,
		Notes:         state.BookingDetails.Notes,
	})
	if err != nil {
		// The submission error carries the server's message when one was
		// sent; the session stays on the payment step for a retry.
		return nil, uc.failPayment(ctx, state, err)
	}

	uc.finalizeBooking(ctx, state, record.ID, quota, amount, paymentID)

	state.AppointmentID = record.ID
	state.PaymentStatus = models.PaymentStatusSuccess
	state.CurrentStep = models.StepConfirmation
	state.Processing = false
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.Pay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, record.ID),
		zap.String(constvars.LoggingPaymentStatusKey, string(state.PaymentStatus)),
		zap.Bool("covered_by_quota", quota.Eligible),
	)
	return state, nil
}

// failPayment records the failure on the session and hands the original error
// back. The session stays at the payment step; nothing here is fatal.
func (uc *bookingUsecase) failPayment(ctx context.Context, state *models.BookingState, cause error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	state.Processing = false
	state.PaymentStatus = models.PaymentStatusFailed
	if err := uc.saveState(ctx, state); err != nil {
		uc.Log.Error("bookingUsecase.failPayment error saving failed state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Warn("bookingUsecase.failPayment payment left retriable",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, state.SessionID),
		zap.String(constvars.LoggingPaymentStatusKey, string(state.PaymentStatus)),
		zap.Error(cause),
	)

	event := models.BookingEvent{
		Type:       models.EventBookingPaymentFailure,
		SessionID:  state.SessionID,
		UserID:     state.UserID,
		OccurredAt: uc.now(),
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("bookingUsecase.failPayment error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return cause
}

// finalizeBooking writes the audit transaction, publishes the confirmation
// event and decrements the quota. All three are best-effort: the appointment
// is already booked upstream and none of them may undo that.
func (uc *bookingUsecase) finalizeBooking(ctx context.Context, state *models.BookingState, appointmentID string, quota contracts.QuotaResult, amount int64, paymentID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := uc.now()

	transaction := &models.Transaction{
		SessionID:             state.SessionID,
		UserID:                state.UserID,
		AppointmentID:         appointmentID,
		DoctorID:              state.SelectedDoctor.ID,
		ClinicID:              state.SelectedClinic.ID,
		AppointmentDate:       state.SelectedDate,
		Amount:                amount,
		Currency:              uc.InternalConfig.PaymentGateway.Currency,
		PaymentMethod:         state.PaymentMethod,
		PaymentID:             paymentID,
		Status:                models.TransactionCompleted,
		CoveredBySubscription: quota.Eligible,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if quota.Eligible {
		transaction.Amount = 0
		transaction.Status = models.TransactionWaived
	}
	if _, err := uc.TransactionRepository.Insert(ctx, transaction); err != nil {
		uc.Log.Error("bookingUsecase.finalizeBooking error inserting transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	event := models.BookingEvent{
		Type:          models.EventBookingConfirmed,
		SessionID:     state.SessionID,
		UserID:        state.UserID,
		AppointmentID: appointmentID,
		DoctorID:      state.SelectedDoctor.ID,
		ClinicID:      state.SelectedClinic.ID,
		Date:          state.SelectedDate,
		SlotID:        state.SelectedSlot.ID,
		OccurredAt:    now,
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("bookingUsecase.finalizeBooking error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if quota.Eligible {
		uc.SubscriptionUsecase.RecordUsage(ctx, state.UserID, appointmentID)
	}
}

func (uc *bookingUsecase) missingStepError(step models.BookingStep) error {
	cause := fmt.Errorf("prerequisite step %q incomplete", step)
	switch step {
	case models.StepDoctor, models.StepClinicDoctor:
		return exceptions.ErrDoctorNotSelected(cause)
	case models.StepClinic:
		return exceptions.ErrClinicNotSelected(cause)
	case models.StepDate, models.StepSlot:
		return exceptions.ErrDateNotSelected(cause)
	default:
		return exceptions.ErrDetailsIncomplete(cause)
	}
}

func (uc *bookingUsecase) GoBack(ctx context.Context, userID, sessionID string) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := Retreat(state); err != nil {
		return nil, err
	}
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.GoBack succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingStepKey, string(state.CurrentStep)),
	)
	return state, nil
}

func (uc *bookingUsecase) GoNext(ctx context.Context, userID, sessionID string) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	state, err := uc.loadState(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := Advance(state); err != nil {
		return nil, err
	}
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.GoNext succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingStepKey, string(state.CurrentStep)),
	)
	return state, nil
}

func (uc *bookingUsecase) Reset(ctx context.Context, userID, sessionID string) (*models.BookingState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Reset called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if _, err := uc.loadState(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	state := models.NewBookingState(sessionID, userID, uc.now())
	if err := uc.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}
