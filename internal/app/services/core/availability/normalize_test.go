package availability

import (
	"medibook-service/internal/pkg/dto/upstream_dto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestNormalizeSlot(t *testing.T) {
	t.Run("Booked Count Derived From Limit Minus Available", func(t *testing.T) {
		raw := upstream_dto.RawSlot{
			ID:               "S1",
			StartTime:        "09:00",
			EndTime:          "09:30",
			AppointmentLimit: intPtr(4),
			AvailableSlots:   intPtr(1),
		}
		slot := NormalizeSlot(raw)
		assert.Equal(t, 3, slot.BookedCount)
		assert.Equal(t, 4, slot.MaxBookings)
		assert.True(t, slot.Available)
	})

	t.Run("Fully Booked Slot Is Unavailable", func(t *testing.T) {
		raw := upstream_dto.RawSlot{
			ID:               "S1",
			IsAvailable:      boolPtr(true),
			AppointmentLimit: intPtr(4),
			AvailableSlots:   intPtr(0),
		}
		slot := NormalizeSlot(raw)
		assert.Equal(t, 4, slot.BookedCount)
		assert.False(t, slot.Available, "a slot reported available but with zero open seats must not be bookable")
	})

	t.Run("Explicit Unavailable Flag Wins", func(t *testing.T) {
		raw := upstream_dto.RawSlot{ID: "S1", IsAvailable: boolPtr(false)}
		assert.False(t, NormalizeSlot(raw).Available)
	})

	t.Run("Missing Availability Flag Means Available", func(t *testing.T) {
		raw := upstream_dto.RawSlot{ID: "S1"}
		assert.True(t, NormalizeSlot(raw).Available)
	})

	t.Run("Negative Derived Count Clamped To Zero", func(t *testing.T) {
		raw := upstream_dto.RawSlot{
			ID:               "S1",
			AppointmentLimit: intPtr(2),
			AvailableSlots:   intPtr(5),
		}
		assert.Equal(t, 0, NormalizeSlot(raw).BookedCount)
	})

	t.Run("Alternate Field Spellings Resolved", func(t *testing.T) {
		raw := upstream_dto.RawSlot{
			SlotID: "S2",
			From:   "10:00",
			To:     "10:30",
		}
		slot := NormalizeSlot(raw)
		assert.Equal(t, "S2", slot.ID)
		assert.Equal(t, "10:00", slot.StartTime)
		assert.Equal(t, "10:30", slot.EndTime)
	})

	t.Run("Underscore ID Is Last Resort", func(t *testing.T) {
		raw := upstream_dto.RawSlot{UID: "S3", Start: "11:00", End: "11:30"}
		slot := NormalizeSlot(raw)
		assert.Equal(t, "S3", slot.ID)
		assert.Equal(t, "11:00", slot.StartTime)
	})
}

func TestNormalizeSlots(t *testing.T) {
	rawSlots := []upstream_dto.RawSlot{
		{ID: "S1", StartTime: "09:00", EndTime: "09:30"},
		{ID: "S2", StartTime: "14:00", EndTime: "14:30"},
	}

	t.Run("Past Slots On Today Forced Unavailable", func(t *testing.T) {
		now := time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)
		slots := NormalizeSlots(rawSlots, "2030-03-10", now)
		assert.Len(t, slots, 2)
		assert.False(t, slots[0].Available, "09:00 has already started at noon")
		assert.True(t, slots[1].Available)
	})

	t.Run("Future Date Keeps All Slots", func(t *testing.T) {
		now := time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)
		slots := NormalizeSlots(rawSlots, "2030-03-11", now)
		assert.True(t, slots[0].Available)
		assert.True(t, slots[1].Available)
	})

	t.Run("Unparseable Start Time Stays Available", func(t *testing.T) {
		now := time.Date(2030, 3, 10, 23, 0, 0, 0, time.UTC)
		slots := NormalizeSlots([]upstream_dto.RawSlot{{ID: "S1", StartTime: "morning"}}, "2030-03-10", now)
		assert.True(t, slots[0].Available)
	})

	t.Run("Id-Less Slots Get Unique Date Index Fallback", func(t *testing.T) {
		now := time.Date(2030, 3, 1, 8, 0, 0, 0, time.UTC)
		slots := NormalizeSlots([]upstream_dto.RawSlot{
			{From: "09:00", To: "09:30"},
			{From: "10:00", To: "10:30"},
		}, "2030-03-10", now)

		if assert.Len(t, slots, 2) {
			assert.Equal(t, "2030-03-10-0", slots[0].ID)
			assert.Equal(t, "2030-03-10-1", slots[1].ID)
			assert.NotEqual(t, slots[0].ID, slots[1].ID, "slot ids must be unique within one fetch")
		}
	})

	t.Run("Empty Input Yields Empty Non-Nil List", func(t *testing.T) {
		slots := NormalizeSlots(nil, "2030-03-10", time.Now())
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})
}

func TestBookableDates(t *testing.T) {
	t.Run("Bare Date Strings Assumed Open", func(t *testing.T) {
		var entries []upstream_dto.RawDateEntry
		err := json.Unmarshal([]byte(`["2030-03-12", "2030-03-10", "2030-03-12"]`), &entries)
		assert.NoError(t, err)

		dates := BookableDates(entries)
		assert.Equal(t, []string{"2030-03-10", "2030-03-12"}, dates, "deduplicated and sorted")
	})

	t.Run("Entry Without Slots Field Assumed Open", func(t *testing.T) {
		var entries []upstream_dto.RawDateEntry
		err := json.Unmarshal([]byte(`[{"date": "2030-03-15"}]`), &entries)
		assert.NoError(t, err)

		assert.Equal(t, []string{"2030-03-15"}, BookableDates(entries))
	})

	t.Run("Entry With All Slots Unavailable Excluded", func(t *testing.T) {
		var entries []upstream_dto.RawDateEntry
		err := json.Unmarshal([]byte(`[
			{"date": "2030-03-15", "slots": [{"id": "S1", "isAvailable": false}]},
			{"date": "2030-03-16", "slots": [{"id": "S2", "isAvailable": false}, {"id": "S3", "isAvailable": true}]}
		]`), &entries)
		assert.NoError(t, err)

		assert.Equal(t, []string{"2030-03-16"}, BookableDates(entries))
	})

	t.Run("Entry With Empty Slot List Excluded", func(t *testing.T) {
		var entries []upstream_dto.RawDateEntry
		err := json.Unmarshal([]byte(`[{"date": "2030-03-15", "slots": []}]`), &entries)
		assert.NoError(t, err)

		assert.Empty(t, BookableDates(entries))
	})

	t.Run("Day Field Spelling Accepted", func(t *testing.T) {
		var entries []upstream_dto.RawDateEntry
		err := json.Unmarshal([]byte(`[{"day": "2030-03-20"}]`), &entries)
		assert.NoError(t, err)

		assert.Equal(t, []string{"2030-03-20"}, BookableDates(entries))
	})
}
