package availability

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/dto/upstream_dto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAppointmentClient struct {
	entriesByMonth map[int][]upstream_dto.RawDateEntry
	monthlyErr     error
	rawSlots       []upstream_dto.RawSlot
	slotsErr       error
	queriedMonths  []int
}

func (s *stubAppointmentClient) GetAvailableSlotsForDate(ctx context.Context, doctorID, clinicID, date string) ([]upstream_dto.RawSlot, error) {
	return s.rawSlots, s.slotsErr
}

func (s *stubAppointmentClient) GetMonthlySlots(ctx context.Context, doctorID, clinicID string, month, year int) ([]upstream_dto.RawDateEntry, error) {
	s.queriedMonths = append(s.queriedMonths, month)
	if s.monthlyErr != nil {
		return nil, s.monthlyErr
	}
	return s.entriesByMonth[month], nil
}

func (s *stubAppointmentClient) CheckUserBookingForSlot(ctx context.Context, userID, doctorID, clinicID, date string, slotRange contracts.SlotRange) (bool, error) {
	return false, nil
}

func (s *stubAppointmentClient) BookAppointment(ctx context.Context, input contracts.BookAppointmentInput) (*upstream_dto.AppointmentRecord, error) {
	return nil, nil
}

func (s *stubAppointmentClient) GetAppointmentByID(ctx context.Context, appointmentID string) (*upstream_dto.AppointmentRecord, error) {
	return nil, nil
}

func (s *stubAppointmentClient) RescheduleAppointment(ctx context.Context, input contracts.RescheduleAppointmentInput) (*upstream_dto.AppointmentRecord, error) {
	return nil, nil
}

func dateEntries(t *testing.T, raw string) []upstream_dto.RawDateEntry {
	t.Helper()
	var entries []upstream_dto.RawDateEntry
	assert.NoError(t, json.Unmarshal([]byte(raw), &entries))
	return entries
}

func TestAvailabilityUsecase(t *testing.T) {
	ctx := context.Background()
	client := &stubAppointmentClient{}
	uc := NewAvailabilityUsecase(client, zap.NewNop())

	t.Run("Bookable Dates Span Two Months", func(t *testing.T) {
		client.entriesByMonth = map[int][]upstream_dto.RawDateEntry{
			3: dateEntries(t, `["2030-03-28", "2030-03-30"]`),
			4: dateEntries(t, `["2030-04-02", "2030-03-30"]`),
		}
		client.queriedMonths = nil

		dates, err := uc.GetBookableDates(ctx, "D1", "C1", 3, 2030)
		assert.NoError(t, err)
		assert.Equal(t, []int{3, 4}, client.queriedMonths)
		assert.Equal(t, []string{"2030-03-28", "2030-03-30", "2030-04-02"}, dates, "months are unioned and deduplicated")
	})

	t.Run("December Rolls Into January", func(t *testing.T) {
		client.entriesByMonth = map[int][]upstream_dto.RawDateEntry{
			12: dateEntries(t, `["2030-12-30"]`),
			1:  dateEntries(t, `["2031-01-03"]`),
		}
		client.queriedMonths = nil

		dates, err := uc.GetBookableDates(ctx, "D1", "C1", 12, 2030)
		assert.NoError(t, err)
		assert.Equal(t, []int{12, 1}, client.queriedMonths)
		assert.Equal(t, []string{"2030-12-30", "2031-01-03"}, dates)
	})

	t.Run("Fetch Failure Degrades To Empty Calendar", func(t *testing.T) {
		client.monthlyErr = errors.New("upstream down")
		defer func() { client.monthlyErr = nil }()

		dates, err := uc.GetBookableDates(ctx, "D1", "C1", 3, 2030)
		assert.NoError(t, err, "the calendar shows no availability instead of an error page")
		assert.NotNil(t, dates)
		assert.Empty(t, dates)
	})

	t.Run("Slot Fetch Requires A Clinic", func(t *testing.T) {
		_, err := uc.GetSlotsForDate(ctx, "D1", "", "2030-03-10", time.Now())
		assert.Error(t, err)
	})

	t.Run("Slot Fetch Normalizes Raw Slots", func(t *testing.T) {
		limit, available := 4, 1
		client.rawSlots = []upstream_dto.RawSlot{
			{ID: "S1", From: "09:00", To: "09:30", AppointmentLimit: &limit, AvailableSlots: &available},
		}

		slots, err := uc.GetSlotsForDate(ctx, "D1", "C1", "2030-03-10", time.Now())
		assert.NoError(t, err)
		if assert.Len(t, slots, 1) {
			assert.Equal(t, "S1", slots[0].ID)
			assert.Equal(t, "09:00", slots[0].StartTime)
			assert.Equal(t, 3, slots[0].BookedCount)
			assert.True(t, slots[0].Available)
		}
	})

	t.Run("Slot Fetch Failure Is An Error", func(t *testing.T) {
		client.slotsErr = errors.New("upstream down")
		defer func() { client.slotsErr = nil }()

		_, err := uc.GetSlotsForDate(ctx, "D1", "C1", "2030-03-10", time.Now())
		assert.Error(t, err, "unlike the calendar, a failed slot fetch must not render an empty grid")
	})
}
