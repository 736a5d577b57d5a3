package booking

import (
	"context"
	"errors"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/conflicts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/dto/upstream_dto"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, held := f.store[key]; held {
		return false, nil
	}
	return true, f.Set(ctx, key, value, exp)
}

// rewriteSession mutates a stored booking session in place, standing in for a
// concurrent request racing the one under test.
func (f *fakeRedis) rewriteSession(t *testing.T, sessionID string, mutate func(*models.BookingState)) {
	t.Helper()
	key := fmt.Sprintf(constvars.BookingSessionKeyFormat, sessionID)
	state := new(models.BookingState)
	assert.NoError(t, json.Unmarshal([]byte(f.store[key]), state))
	mutate(state)
	data, err := json.Marshal(state)
	assert.NoError(t, err)
	f.store[key] = string(data)
}

type fakeDirectory struct {
	doctors       map[string]*models.Doctor
	clinicsByDoc  map[string][]models.Clinic
	allClinics    []models.Clinic
	doctorsByClin map[string][]models.Doctor
}

func (f *fakeDirectory) GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, found := f.doctors[doctorID]
	if !found {
		return nil, exceptions.ErrUpstreamStatus(nil, 404, "doctor")
	}
	copied := *doctor
	return &copied, nil
}

func (f *fakeDirectory) GetAllClinics(ctx context.Context) ([]models.Clinic, error) {
	return f.allClinics, nil
}

func (f *fakeDirectory) GetClinicsByDoctor(ctx context.Context, doctorID string) ([]models.Clinic, error) {
	return f.clinicsByDoc[doctorID], nil
}

func (f *fakeDirectory) GetDoctorsByClinic(ctx context.Context, clinicID string) ([]models.Doctor, error) {
	return f.doctorsByClin[clinicID], nil
}

type fakeAvailability struct {
	slots []models.TimeSlot
	err   error
	// hook runs mid-fetch, before results are applied.
	hook func()
}

func (f *fakeAvailability) GetBookableDates(ctx context.Context, doctorID, clinicID string, month, year int) ([]string, error) {
	return nil, nil
}

func (f *fakeAvailability) GetSlotsForDate(ctx context.Context, doctorID, clinicID, date string, now time.Time) ([]models.TimeSlot, error) {
	if f.hook != nil {
		f.hook()
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.TimeSlot, len(f.slots))
	copy(out, f.slots)
	return out, nil
}

type fakeAppointments struct {
	hasBooking  bool
	conflictErr error
	bookErr     error
	booked      []contracts.BookAppointmentInput
	nextID      int
}

func (f *fakeAppointments) GetAvailableSlotsForDate(ctx context.Context, doctorID, clinicID, date string) ([]upstream_dto.RawSlot, error) {
	return nil, nil
}

func (f *fakeAppointments) GetMonthlySlots(ctx context.Context, doctorID, clinicID string, month, year int) ([]upstream_dto.RawDateEntry, error) {
	return nil, nil
}

func (f *fakeAppointments) CheckUserBookingForSlot(ctx context.Context, userID, doctorID, clinicID, date string, slotRange contracts.SlotRange) (bool, error) {
	return f.hasBooking, f.conflictErr
}

func (f *fakeAppointments) BookAppointment(ctx context.Context, input contracts.BookAppointmentInput) (*upstream_dto.AppointmentRecord, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.booked = append(f.booked, input)
	f.nextID++
	return &upstream_dto.AppointmentRecord{
		ID:       fmt.Sprintf("APT-%d", f.nextID),
		UserID:   input.UserID,
		DoctorID: input.DoctorID,
		ClinicID: input.ClinicID,
		Date:     input.Date,
		SlotID:   input.SlotID,
		Status:   "booked",
	}, nil
}

func (f *fakeAppointments) GetAppointmentByID(ctx context.Context, appointmentID string) (*upstream_dto.AppointmentRecord, error) {
	return nil, nil
}

func (f *fakeAppointments) RescheduleAppointment(ctx context.Context, input contracts.RescheduleAppointmentInput) (*upstream_dto.AppointmentRecord, error) {
	return nil, nil
}

type fakeSubscriptions struct {
	quota contracts.QuotaResult
	usage []string
}

func (f *fakeSubscriptions) CheckQuota(ctx context.Context, userID string) (contracts.QuotaResult, error) {
	return f.quota, nil
}

func (f *fakeSubscriptions) RecordUsage(ctx context.Context, userID, appointmentID string) {
	f.usage = append(f.usage, appointmentID)
}

type fakeGateway struct {
	result      *responses.PaymentResult
	err         error
	lastRequest *requests.PaymentRequest
	calls       int
}

func (f *fakeGateway) CreatePayment(ctx context.Context, request *requests.PaymentRequest) (*responses.PaymentResult, error) {
	f.calls++
	f.lastRequest = request
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeGateway) CheckPaymentStatus(ctx context.Context, paymentID string) (*responses.PaymentResult, error) {
	return f.result, f.err
}

type fakeLocker struct {
	acquired bool
	unlocks  int
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return f.acquired, "lock-value", nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocks++
	return nil
}

type fakeTransactions struct {
	inserted []*models.Transaction
}

func (f *fakeTransactions) Insert(ctx context.Context, transaction *models.Transaction) (string, error) {
	f.inserted = append(f.inserted, transaction)
	return fmt.Sprintf("TXN-%d", len(f.inserted)), nil
}

func (f *fakeTransactions) UpdateStatus(ctx context.Context, transactionID string, status models.TransactionStatusPayment) error {
	return nil
}

func (f *fakeTransactions) FindBySessionID(ctx context.Context, sessionID string) (*models.Transaction, error) {
	return nil, nil
}

type fakePublisher struct {
	events []models.BookingEvent
}

func (f *fakePublisher) Publish(ctx context.Context, event models.BookingEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) lastEventOfType(eventType models.BookingEventType) *models.BookingEvent {
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].Type == eventType {
			return &f.events[i]
		}
	}
	return nil
}

func assertStatusCode(t *testing.T, err error, statusCode int) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	if assert.ErrorAs(t, err, &customErr) {
		assert.Equal(t, statusCode, customErr.StatusCode)
	}
	return customErr
}

func TestBookingUsecase(t *testing.T) {
	ctx := context.Background()

	redis := newFakeRedis()
	directory := &fakeDirectory{
		doctors: map[string]*models.Doctor{
			"D1": {ID: "D1", Name: "Dr. Sari", Specialty: "General", ConsultationFee: 150000},
		},
		clinicsByDoc: map[string][]models.Clinic{
			"D1": {{ID: "C1", Name: "Clinic One"}, {ID: "C2", Name: "Clinic Two"}},
		},
		allClinics: []models.Clinic{{ID: "C1", Name: "Clinic One"}, {ID: "C2", Name: "Clinic Two"}},
	}
	availability := &fakeAvailability{
		slots: []models.TimeSlot{
			{ID: "S1", StartTime: "09:00", EndTime: "09:30", MaxBookings: 4, BookedCount: 3, Available: true},
			{ID: "S2", StartTime: "10:00", EndTime: "10:30", MaxBookings: 4, BookedCount: 4, Available: false},
		},
	}
	appointments := &fakeAppointments{}
	subscriptions := &fakeSubscriptions{}
	gateway := &fakeGateway{result: &responses.PaymentResult{Success: true, PaymentID: "PAY-1", Status: "paid"}}
	locker := &fakeLocker{acquired: true}
	transactions := &fakeTransactions{}
	publisher := &fakePublisher{}
	internalConfig := &config.InternalConfig{
		App:            config.App{BookingSessionTTLInMinutes: 30},
		PaymentGateway: config.PaymentGateway{Currency: "IDR"},
	}
	guard := &conflicts.Guard{AppointmentClient: appointments, Log: zap.NewNop()}

	uc := NewBookingUsecase(redis, directory, availability, guard, appointments, subscriptions, gateway, locker, transactions, publisher, internalConfig, zap.NewNop())

	// completeSession walks a fresh session through the doctor flow up to and
	// including the details step.
	completeSession := func(t *testing.T, userID string) string {
		t.Helper()
		state, err := uc.StartSession(ctx, userID, &requests.CreateBookingSession{})
		assert.NoError(t, err)
		sessionID := state.SessionID
		_, err = uc.SelectDoctor(ctx, userID, sessionID, &requests.SelectDoctor{DoctorID: "D1"})
		assert.NoError(t, err)
		_, err = uc.SelectClinic(ctx, userID, sessionID, &requests.SelectClinic{ClinicID: "C1"})
		assert.NoError(t, err)
		_, err = uc.SelectDate(ctx, userID, sessionID, &requests.SelectDate{Date: "2030-03-10"})
		assert.NoError(t, err)
		_, err = uc.SelectSlot(ctx, userID, sessionID, &requests.SelectSlot{SlotID: "S1"})
		assert.NoError(t, err)
		_, err = uc.SetDetails(ctx, userID, sessionID, &requests.BookingDetails{PatientType: "self"})
		assert.NoError(t, err)
		return sessionID
	}

	var mainSession string

	t.Run("Start Session Defaults To Doctor Flow", func(t *testing.T) {
		state, err := uc.StartSession(ctx, "user-1", &requests.CreateBookingSession{})
		assert.NoError(t, err)
		assert.NotEmpty(t, state.SessionID)
		assert.Equal(t, models.BookingFlowDoctor, state.BookingFlow)
		assert.Equal(t, models.StepDoctor, state.CurrentStep)
		mainSession = state.SessionID
	})

	t.Run("Unknown Session Rejected", func(t *testing.T) {
		_, err := uc.GetState(ctx, "user-1", "no-such-session")
		assertStatusCode(t, err, constvars.StatusNotFound)
	})

	t.Run("Foreign Session Rejected", func(t *testing.T) {
		_, err := uc.GetState(ctx, "someone-else", mainSession)
		assertStatusCode(t, err, constvars.StatusNotFound)
	})

	t.Run("Select Doctor", func(t *testing.T) {
		state, err := uc.SelectDoctor(ctx, "user-1", mainSession, &requests.SelectDoctor{DoctorID: "D1"})
		assert.NoError(t, err)
		if assert.NotNil(t, state.SelectedDoctor) {
			assert.Equal(t, "D1", state.SelectedDoctor.ID)
			assert.Equal(t, int64(150000), state.SelectedDoctor.ConsultationFee)
		}
	})

	t.Run("Select Clinic Must Be Offered By Doctor", func(t *testing.T) {
		_, err := uc.SelectClinic(ctx, "user-1", mainSession, &requests.SelectClinic{ClinicID: "C9"})
		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)

		state, err := uc.SelectClinic(ctx, "user-1", mainSession, &requests.SelectClinic{ClinicID: "C1"})
		assert.NoError(t, err)
		if assert.NotNil(t, state.SelectedClinic) {
			assert.Equal(t, "C1", state.SelectedClinic.ID)
		}
	})

	t.Run("Select Past Date Rejected", func(t *testing.T) {
		_, err := uc.SelectDate(ctx, "user-1", mainSession, &requests.SelectDate{Date: "2020-01-01"})
		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("Select Date Fetches Slot Grid", func(t *testing.T) {
		state, err := uc.SelectDate(ctx, "user-1", mainSession, &requests.SelectDate{Date: "2030-03-10"})
		assert.NoError(t, err)
		assert.Equal(t, "2030-03-10", state.SelectedDate)
		if assert.NotNil(t, state.TimeSlots) {
			assert.Equal(t, "2030-03-10", state.TimeSlots.Date)
			assert.Len(t, state.TimeSlots.Slots, 2)
		}
	})

	t.Run("Changing Doctor Clears Schedule Selections", func(t *testing.T) {
		other, err := uc.StartSession(ctx, "user-2", &requests.CreateBookingSession{})
		assert.NoError(t, err)
		_, err = uc.SelectDoctor(ctx, "user-2", other.SessionID, &requests.SelectDoctor{DoctorID: "D1"})
		assert.NoError(t, err)
		_, err = uc.SelectClinic(ctx, "user-2", other.SessionID, &requests.SelectClinic{ClinicID: "C1"})
		assert.NoError(t, err)
		_, err = uc.SelectDate(ctx, "user-2", other.SessionID, &requests.SelectDate{Date: "2030-03-10"})
		assert.NoError(t, err)

		state, err := uc.SelectDoctor(ctx, "user-2", other.SessionID, &requests.SelectDoctor{DoctorID: "D1"})
		assert.NoError(t, err)
		assert.Empty(t, state.SelectedDate, "re-picking the doctor invalidates the date")
		assert.Nil(t, state.SelectedSlot)
		assert.Nil(t, state.TimeSlots)
		assert.NotNil(t, state.SelectedClinic, "the clinic selection itself survives")
	})

	t.Run("Late Slot Fetch For Superseded Date Discarded", func(t *testing.T) {
		other, err := uc.StartSession(ctx, "user-3", &requests.CreateBookingSession{})
		assert.NoError(t, err)
		_, err = uc.SelectDoctor(ctx, "user-3", other.SessionID, &requests.SelectDoctor{DoctorID: "D1"})
		assert.NoError(t, err)
		_, err = uc.SelectClinic(ctx, "user-3", other.SessionID, &requests.SelectClinic{ClinicID: "C1"})
		assert.NoError(t, err)

		// A second request lands on another date while the first fetch is in
		// flight.
		availability.hook = func() {
			redis.rewriteSession(t, other.SessionID, func(state *models.BookingState) {
				state.SelectedDate = "2030-03-12"
			})
		}
		defer func() { availability.hook = nil }()

		state, err := uc.SelectDate(ctx, "user-3", other.SessionID, &requests.SelectDate{Date: "2030-03-11"})
		assert.NoError(t, err)
		assert.Equal(t, "2030-03-12", state.SelectedDate, "the newer selection wins")
		assert.Nil(t, state.TimeSlots, "stale results are dropped, not applied")

		_, err = uc.SelectSlot(ctx, "user-3", other.SessionID, &requests.SelectSlot{SlotID: "S1"})
		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("Select Unavailable Slot Rejected", func(t *testing.T) {
		_, err := uc.SelectSlot(ctx, "user-1", mainSession, &requests.SelectSlot{SlotID: "S2"})
		assertStatusCode(t, err, constvars.StatusConflict)

		_, err = uc.SelectSlot(ctx, "user-1", mainSession, &requests.SelectSlot{SlotID: "S9"})
		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("Existing Booking Blocks Slot Selection", func(t *testing.T) {
		appointments.hasBooking = true
		_, err := uc.SelectSlot(ctx, "user-1", mainSession, &requests.SelectSlot{SlotID: "S1"})
		assertStatusCode(t, err, constvars.StatusConflict)
		appointments.hasBooking = false
	})

	t.Run("Unreachable Conflict Check Blocks Slot Selection", func(t *testing.T) {
		appointments.conflictErr = errors.New("upstream down")
		_, err := uc.SelectSlot(ctx, "user-1", mainSession, &requests.SelectSlot{SlotID: "S1"})
		assertStatusCode(t, err, constvars.StatusServiceUnavailable)
		appointments.conflictErr = nil
	})

	t.Run("Select Slot", func(t *testing.T) {
		state, err := uc.SelectSlot(ctx, "user-1", mainSession, &requests.SelectSlot{SlotID: "S1"})
		assert.NoError(t, err)
		if assert.NotNil(t, state.SelectedSlot) {
			assert.Equal(t, "S1", state.SelectedSlot.ID)
			assert.Equal(t, 3, state.SelectedSlot.BookedCount)
			assert.Equal(t, 4, state.SelectedSlot.MaxBookings)
		}
	})

	t.Run("Set Details", func(t *testing.T) {
		state, err := uc.SetDetails(ctx, "user-1", mainSession, &requests.BookingDetails{PatientType: "self"})
		assert.NoError(t, err)
		if assert.NotNil(t, state.BookingDetails) {
			assert.Equal(t, models.PatientTypeSelf, state.BookingDetails.PatientType)
		}
	})

	t.Run("Review Shows Full Price Without Quota", func(t *testing.T) {
		review, err := uc.Review(ctx, "user-1", mainSession)
		assert.NoError(t, err)
		assert.Empty(t, review.MissingSteps)
		assert.Equal(t, int64(150000), review.ConsultationFee)
		assert.Equal(t, int64(150000), review.PayableAmount)
		assert.False(t, review.CoveredByQuota)
	})

	t.Run("Review Lists Missing Steps As Checklist", func(t *testing.T) {
		fresh, err := uc.StartSession(ctx, "user-4", &requests.CreateBookingSession{})
		assert.NoError(t, err)

		review, err := uc.Review(ctx, "user-4", fresh.SessionID)
		assert.NoError(t, err, "an incomplete review is a checklist, not an error")
		assert.Equal(t, []models.BookingStep{models.StepDoctor, models.StepClinic, models.StepDate, models.StepDetails}, review.MissingSteps)
		assert.Equal(t, models.StepDoctor, review.FirstMissingStep)

		_, err = uc.Pay(ctx, "user-4", fresh.SessionID, &requests.Payment{PaymentMethod: "card"})
		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)
	})

	t.Run("Held Lock Blocks Payment", func(t *testing.T) {
		locker.acquired = false
		_, err := uc.Pay(ctx, "user-1", mainSession, &requests.Payment{PaymentMethod: "card"})
		assertStatusCode(t, err, constvars.StatusConflict)
		locker.acquired = true
	})

	t.Run("Gateway Failure Keeps Session Retriable", func(t *testing.T) {
		gateway.result = &responses.PaymentResult{Success: false, Status: "declined"}
		_, err := uc.Pay(ctx, "user-1", mainSession, &requests.Payment{PaymentMethod: "card"})
		assertStatusCode(t, err, constvars.StatusBadGateway)

		state, err := uc.GetState(ctx, "user-1", mainSession)
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, state.PaymentStatus)
		assert.False(t, state.Processing)
		assert.NotEqual(t, models.StepConfirmation, state.CurrentStep)
		assert.NotNil(t, publisher.lastEventOfType(models.EventBookingPaymentFailure))
	})

	t.Run("Booking Submission Failure Surfaces Server Message", func(t *testing.T) {
		gateway.result = &responses.PaymentResult{Success: true, PaymentID: "PAY-1", Status: "paid"}
		appointments.bookErr = exceptions.ErrBookingSubmission(errors.New("409 from upstream"), "Slot no longer available")

		_, err := uc.Pay(ctx, "user-1", mainSession, &requests.Payment{PaymentMethod: "card"})
		customErr := assertStatusCode(t, err, constvars.StatusBadGateway)
		if customErr != nil {
			assert.Equal(t, "Slot no longer available", customErr.ClientMessage)
		}
		appointments.bookErr = nil

		state, err := uc.GetState(ctx, "user-1", mainSession)
		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, state.PaymentStatus)
		assert.Empty(t, state.AppointmentID)
	})

	t.Run("Successful Payment Confirms Booking", func(t *testing.T) {
		unlocksBefore := locker.unlocks
		gatewayCallsBefore := gateway.calls

		state, err := uc.Pay(ctx, "user-1", mainSession, &requests.Payment{PaymentMethod: "card"})
		assert.NoError(t, err)
		assert.Equal(t, models.StepConfirmation, state.CurrentStep)
		assert.Equal(t, models.PaymentStatusSuccess, state.PaymentStatus)
		assert.False(t, state.Processing)
		assert.NotEmpty(t, state.AppointmentID)

		assert.Equal(t, gatewayCallsBefore+1, gateway.calls)
		if assert.NotNil(t, gateway.lastRequest) {
			assert.Equal(t, mainSession, gateway.lastRequest.ReferenceID)
			assert.Equal(t, int64(150000), gateway.lastRequest.Amount)
		}
		assert.Equal(t, unlocksBefore+1, locker.unlocks, "the payment lock is always released")

		if assert.NotEmpty(t, transactions.inserted) {
			txn := transactions.inserted[len(transactions.inserted)-1]
			assert.Equal(t, models.TransactionCompleted, txn.Status)
			assert.Equal(t, int64(150000), txn.Amount)
			assert.Equal(t, "IDR", txn.Currency)
			assert.False(t, txn.CoveredBySubscription)
		}

		event := publisher.lastEventOfType(models.EventBookingConfirmed)
		if assert.NotNil(t, event) {
			assert.Equal(t, state.AppointmentID, event.AppointmentID)
			assert.Equal(t, "S1", event.SlotID)
		}
	})

	t.Run("Confirmed Session Cannot Pay Again", func(t *testing.T) {
		_, err := uc.Pay(ctx, "user-1", mainSession, &requests.Payment{PaymentMethod: "card"})
		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("Quota Covered Booking Skips The Gateway", func(t *testing.T) {
		sessionID := completeSession(t, "user-5")
		remaining := 2
		subscriptions.quota = contracts.QuotaResult{Eligible: true, Remaining: &remaining}
		defer func() { subscriptions.quota = contracts.QuotaResult{} }()

		review, err := uc.Review(ctx, "user-5", sessionID)
		assert.NoError(t, err)
		assert.True(t, review.CoveredByQuota)
		assert.Equal(t, int64(0), review.PayableAmount)
		assert.Equal(t, int64(150000), review.Discount)

		gatewayCallsBefore := gateway.calls
		state, err := uc.Pay(ctx, "user-5", sessionID, &requests.Payment{PaymentMethod: "subscription"})
		assert.NoError(t, err)
		assert.Equal(t, models.StepConfirmation, state.CurrentStep)
		assert.Equal(t, gatewayCallsBefore, gateway.calls, "no money moves for a quota-covered booking")

		if assert.NotEmpty(t, transactions.inserted) {
			txn := transactions.inserted[len(transactions.inserted)-1]
			assert.Equal(t, models.TransactionWaived, txn.Status)
			assert.Equal(t, int64(0), txn.Amount)
			assert.True(t, txn.CoveredBySubscription)
		}
		if assert.NotEmpty(t, subscriptions.usage) {
			assert.Equal(t, state.AppointmentID, subscriptions.usage[len(subscriptions.usage)-1])
		}
	})

	t.Run("Navigation Wrappers Persist Step Changes", func(t *testing.T) {
		fresh, err := uc.StartSession(ctx, "user-6", &requests.CreateBookingSession{})
		assert.NoError(t, err)

		state, err := uc.GoNext(ctx, "user-6", fresh.SessionID)
		assert.NoError(t, err)
		assert.Equal(t, models.StepClinic, state.CurrentStep)

		state, err = uc.GoBack(ctx, "user-6", fresh.SessionID)
		assert.NoError(t, err)
		assert.Equal(t, models.StepDoctor, state.CurrentStep)

		_, err = uc.GoBack(ctx, "user-6", fresh.SessionID)
		assertStatusCode(t, err, constvars.StatusConflict)
	})

	t.Run("Reset Restores A Fresh State", func(t *testing.T) {
		sessionID := completeSession(t, "user-7")

		state, err := uc.Reset(ctx, "user-7", sessionID)
		assert.NoError(t, err)
		assert.Equal(t, sessionID, state.SessionID)
		assert.Equal(t, models.BookingFlowDoctor, state.BookingFlow)
		assert.Equal(t, models.StepDoctor, state.CurrentStep)
		assert.Nil(t, state.SelectedDoctor)
		assert.Nil(t, state.SelectedSlot)
		assert.Empty(t, state.SelectedDate)
	})
}
