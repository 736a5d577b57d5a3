package reschedule

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/conflicts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
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
	return true, f.Set(ctx, key, value, exp)
}

type fakeDirectory struct {
	clinicsByDoc map[string][]models.Clinic
}

func (f *fakeDirectory) GetDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return nil, nil
}

func (f *fakeDirectory) GetAllClinics(ctx context.Context) ([]models.Clinic, error) {
	return nil, nil
}

func (f *fakeDirectory) GetClinicsByDoctor(ctx context.Context, doctorID string) ([]models.Clinic, error) {
	return f.clinicsByDoc[doctorID], nil
}

func (f *fakeDirectory) GetDoctorsByClinic(ctx context.Context, clinicID string) ([]models.Doctor, error) {
	return nil, nil
}

type fakeAvailability struct {
	slots []models.TimeSlot
}

func (f *fakeAvailability) GetBookableDates(ctx context.Context, doctorID, clinicID string, month, year int) ([]string, error) {
	return nil, nil
}

func (f *fakeAvailability) GetSlotsForDate(ctx context.Context, doctorID, clinicID, date string, now time.Time) ([]models.TimeSlot, error) {
	out := make([]models.TimeSlot, len(f.slots))
	copy(out, f.slots)
	return out, nil
}

type fakeAppointments struct {
	record        *upstream_dto.AppointmentRecord
	hasBooking    bool
	conflictCalls int
}

func (f *fakeAppointments) GetAvailableSlotsForDate(ctx context.Context, doctorID, clinicID, date string) ([]upstream_dto.RawSlot, error) {
	return nil, nil
}

func (f *fakeAppointments) GetMonthlySlots(ctx context.Context, doctorID, clinicID string, month, year int) ([]upstream_dto.RawDateEntry, error) {
	return nil, nil
}

func (f *fakeAppointments) CheckUserBookingForSlot(ctx context.Context, userID, doctorID, clinicID, date string, slotRange contracts.SlotRange) (bool, error) {
	f.conflictCalls++
	return f.hasBooking, nil
}

func (f *fakeAppointments) BookAppointment(ctx context.Context, input contracts.BookAppointmentInput) (*upstream_dto.AppointmentRecord, error) {
	return nil, nil
}

func (f *fakeAppointments) GetAppointmentByID(ctx context.Context, appointmentID string) (*upstream_dto.AppointmentRecord, error) {
	if f.record == nil || f.record.ID != appointmentID {
		return nil, exceptions.ErrUpstreamStatus(nil, 404, "appointment")
	}
	copied := *f.record
	return &copied, nil
}

func (f *fakeAppointments) RescheduleAppointment(ctx context.Context, input contracts.RescheduleAppointmentInput) (*upstream_dto.AppointmentRecord, error) {
	return nil, nil
}

type fakePublisher struct {
	events []models.BookingEvent
}

func (f *fakePublisher) Publish(ctx context.Context, event models.BookingEvent) error {
	f.events = append(f.events, event)
	return nil
}

type confirmRecorder struct {
	calls  int
	lastID string
	date   string
	slot   models.TimeSlot
	clinic models.Clinic
}

func (c *confirmRecorder) confirm(ctx context.Context, appointmentID, date string, slot models.TimeSlot, clinic models.Clinic) (*upstream_dto.AppointmentRecord, error) {
	c.calls++
	c.lastID = appointmentID
	c.date = date
	c.slot = slot
	c.clinic = clinic
	return &upstream_dto.AppointmentRecord{
		ID:       appointmentID,
		Date:     date,
		SlotID:   slot.ID,
		ClinicID: clinic.ID,
		Status:   "booked",
	}, nil
}

func assertStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	if assert.ErrorAs(t, err, &customErr) {
		assert.Equal(t, statusCode, customErr.StatusCode)
	}
}

func TestRescheduleUsecase(t *testing.T) {
	ctx := context.Background()

	redis := &fakeRedis{store: make(map[string]string)}
	directory := &fakeDirectory{
		clinicsByDoc: map[string][]models.Clinic{
			"D1": {{ID: "C1", Name: "Clinic One"}, {ID: "C2", Name: "Clinic Two"}},
		},
	}
	availability := &fakeAvailability{
		slots: []models.TimeSlot{
			{ID: "S1", StartTime: "09:00", EndTime: "09:30", Available: true},
			{ID: "S3", StartTime: "11:00", EndTime: "11:30", Available: true},
		},
	}
	appointments := &fakeAppointments{
		record: &upstream_dto.AppointmentRecord{
			ID:       "APT-1",
			UserID:   "user-1",
			DoctorID: "D1",
			ClinicID: "C1",
			Date:     "2030-04-01",
			SlotID:   "S1",
			Status:   "booked",
		},
	}
	publisher := &fakePublisher{}
	recorder := &confirmRecorder{}
	guard := &conflicts.Guard{AppointmentClient: appointments, Log: zap.NewNop()}
	internalConfig := &config.InternalConfig{App: config.App{BookingSessionTTLInMinutes: 30}}

	uc := NewRescheduleUsecase(redis, directory, appointments, availability, guard, recorder.confirm, publisher, internalConfig, zap.NewNop())

	var sessionID string

	t.Run("Start Session Captures Current Appointment", func(t *testing.T) {
		state, err := uc.StartSession(ctx, "user-1", &requests.CreateRescheduleSession{AppointmentID: "APT-1"})
		assert.NoError(t, err)
		assert.Equal(t, "APT-1", state.AppointmentID)
		assert.Equal(t, "C1", state.CurrentClinicID)
		assert.Equal(t, "2030-04-01", state.CurrentDate)
		assert.Equal(t, "S1", state.CurrentSlotID)
		assert.Len(t, state.Clinics, 2)
		if assert.NotNil(t, state.SelectedClinic) {
			assert.Equal(t, "Clinic One", state.SelectedClinic.Name, "the current clinic is pre-selected from the offered list")
		}
		sessionID = state.SessionID
	})

	t.Run("Foreign Appointment Rejected", func(t *testing.T) {
		_, err := uc.StartSession(ctx, "someone-else", &requests.CreateRescheduleSession{AppointmentID: "APT-1"})
		assertStatusCode(t, err, constvars.StatusNotFound)
	})

	t.Run("Submit Before Selection Rejected", func(t *testing.T) {
		_, err := uc.Submit(ctx, "user-1", sessionID)
		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)
	})

	t.Run("Identical Target Rejected Before Any Network Call", func(t *testing.T) {
		_, err := uc.SelectDate(ctx, "user-1", sessionID, &requests.SelectDate{Date: "2030-04-01"})
		assert.NoError(t, err)
		_, err = uc.SelectSlot(ctx, "user-1", sessionID, &requests.SelectSlot{SlotID: "S1"})
		assert.NoError(t, err)

		conflictCallsBefore := appointments.conflictCalls
		_, err = uc.Submit(ctx, "user-1", sessionID)
		assertStatusCode(t, err, constvars.StatusConflict)
		assert.Equal(t, conflictCallsBefore, appointments.conflictCalls, "rejection happens client-side")
		assert.Equal(t, 0, recorder.calls)
	})

	t.Run("Changing Clinic Clears Schedule Selections", func(t *testing.T) {
		_, err := uc.SelectClinic(ctx, "user-1", sessionID, &requests.SelectClinic{ClinicID: "C9"})
		assertStatusCode(t, err, constvars.StatusUnprocessableEntity)

		state, err := uc.SelectClinic(ctx, "user-1", sessionID, &requests.SelectClinic{ClinicID: "C2"})
		assert.NoError(t, err)
		assert.Equal(t, "C2", state.SelectedClinic.ID)
		assert.Empty(t, state.SelectedDate)
		assert.Nil(t, state.SelectedSlot)
		assert.Nil(t, state.TimeSlots)
	})

	t.Run("Conflicting Target Window Blocks Submit", func(t *testing.T) {
		_, err := uc.SelectDate(ctx, "user-1", sessionID, &requests.SelectDate{Date: "2030-04-02"})
		assert.NoError(t, err)
		_, err = uc.SelectSlot(ctx, "user-1", sessionID, &requests.SelectSlot{SlotID: "S3"})
		assert.NoError(t, err)

		appointments.hasBooking = true
		_, err = uc.Submit(ctx, "user-1", sessionID)
		assertStatusCode(t, err, constvars.StatusConflict)
		assert.Equal(t, 0, recorder.calls)
		appointments.hasBooking = false
	})

	t.Run("Submit Moves The Appointment", func(t *testing.T) {
		state, err := uc.Submit(ctx, "user-1", sessionID)
		assert.NoError(t, err)

		assert.Equal(t, 1, recorder.calls)
		assert.Equal(t, "APT-1", recorder.lastID)
		assert.Equal(t, "2030-04-02", recorder.date)
		assert.Equal(t, "S3", recorder.slot.ID)
		assert.Equal(t, "C2", recorder.clinic.ID)

		assert.Equal(t, "C2", state.CurrentClinicID)
		assert.Equal(t, "2030-04-02", state.CurrentDate)
		assert.Equal(t, "S3", state.CurrentSlotID)

		if assert.NotEmpty(t, publisher.events) {
			event := publisher.events[len(publisher.events)-1]
			assert.Equal(t, models.EventAppointmentRebooked, event.Type)
			assert.Equal(t, "APT-1", event.AppointmentID)
		}

		// The session is discarded once the move is confirmed.
		_, err = uc.GetState(ctx, "user-1", sessionID)
		assertStatusCode(t, err, constvars.StatusNotFound)
	})
}
