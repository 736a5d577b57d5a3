package availability

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/upstream_dto"
	"medibook-service/internal/pkg/utils"
	"sort"
	"strconv"
	"time"
)

// ResolveSlotID picks the first non-empty id spelling of a raw slot.
func ResolveSlotID(raw upstream_dto.RawSlot) string {
	if raw.ID != "" {
		return raw.ID
	}
	if raw.SlotID != "" {
		return raw.SlotID
	}
	return raw.UID
}

func resolveStart(raw upstream_dto.RawSlot) string {
	if raw.From != "" {
		return raw.From
	}
	if raw.Start != "" {
		return raw.Start
	}
	return raw.StartTime
}

func resolveEnd(raw upstream_dto.RawSlot) string {
	if raw.To != "" {
		return raw.To
	}
	if raw.End != "" {
		return raw.End
	}
	return raw.EndTime
}

// NormalizeSlot maps one raw slot into the uniform TimeSlot shape.
// bookedCount derives from appointmentLimit - availableSlots when both are
// numeric, else zero. The same derivation applies everywhere a booked count
// is needed; no server-provided count is trusted over it.
func NormalizeSlot(raw upstream_dto.RawSlot) models.TimeSlot {
	slot := models.TimeSlot{
		ID:        ResolveSlotID(raw),
		StartTime: resolveStart(raw),
		EndTime:   resolveEnd(raw),
	}

	if raw.AppointmentLimit != nil {
		slot.MaxBookings = *raw.AppointmentLimit
	}
	if raw.AppointmentLimit != nil && raw.AvailableSlots != nil {
		slot.BookedCount = *raw.AppointmentLimit - *raw.AvailableSlots
		if slot.BookedCount < 0 {
			slot.BookedCount = 0
		}
	}

	slot.Available = raw.IsAvailable == nil || *raw.IsAvailable
	if raw.AvailableSlots != nil && *raw.AvailableSlots <= 0 {
		slot.Available = false
	}
	if slot.MaxBookings > 0 && slot.BookedCount >= slot.MaxBookings {
		slot.Available = false
	}
	return slot
}

// NormalizeSlots normalizes a raw slot list for one date. When the date is
// today, slots whose start time has already passed are forced unavailable;
// the fetch is not real-time and the server's availability flag may be stale.
// Slots that arrive without any id spelling get a date+index fallback so ids
// stay unique within the fetch and the slot stays selectable.
func NormalizeSlots(rawSlots []upstream_dto.RawSlot, date string, now time.Time) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(rawSlots))
	isToday := false
	if parsed, err := time.ParseInLocation(constvars.DateOnlyFormat, date, now.Location()); err == nil {
		isToday = utils.IsSameDay(parsed, now)
	}

	for i, raw := range rawSlots {
		slot := NormalizeSlot(raw)
		if slot.ID == "" {
			slot.ID = date + "-" + strconv.Itoa(i)
		}
		if isToday && slot.Available {
			if clock, ok := utils.ParseClock(slot.StartTime); ok {
				startOfDay := utils.TruncateToDay(now)
				slotStart := startOfDay.Add(clock)
				if !slotStart.After(now) {
					slot.Available = false
				}
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

// BookableDates reduces monthly schedule entries to the sorted, deduplicated
// set of dates with at least one bookable slot. An entry without a slots field
// is assumed open.
func BookableDates(entries []upstream_dto.RawDateEntry) []string {
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.Date == "" || seen[entry.Date] {
			continue
		}
		if !entry.HasSlots {
			seen[entry.Date] = true
			continue
		}
		for _, raw := range entry.Slots {
			if raw.IsAvailable == nil || *raw.IsAvailable {
				seen[entry.Date] = true
				break
			}
		}
	}

	dates := make([]string, 0, len(seen))
	for date := range seen {
		if seen[date] {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}
