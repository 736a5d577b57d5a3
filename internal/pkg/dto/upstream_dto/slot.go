package upstream_dto

import (
	"github.com/goccy/go-json"
)

// RawSlot is one slot as the appointment service reports it. Field names vary
// between deployments, so every known spelling is declared and the availability
// resolver normalizes them into a single shape.
type RawSlot struct {
	ID     string `json:"id,omitempty"`
	SlotID string `json:"slotId,omitempty"`
	UID    string `json:"_id,omitempty"`

	From      string `json:"from,omitempty"`
	Start     string `json:"start,omitempty"`
	StartTime string `json:"startTime,omitempty"`

	To      string `json:"to,omitempty"`
	End     string `json:"end,omitempty"`
	EndTime string `json:"endTime,omitempty"`

	IsAvailable      *bool `json:"isAvailable,omitempty"`
	AvailableSlots   *int  `json:"availableSlots,omitempty"`
	AppointmentLimit *int  `json:"appointmentLimit,omitempty"`
}

// RawDateEntry is one entry of a monthly schedule. The service returns either a
// bare date string or an object carrying the date and its slots.
type RawDateEntry struct {
	Date string
	// HasSlots distinguishes "no slots field" (date assumed open) from an
	// explicit, possibly empty, slot list.
	HasSlots bool
	Slots    []RawSlot
}

func (e *RawDateEntry) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		e.Date = bare
		e.HasSlots = false
		e.Slots = nil
		return nil
	}

	var obj struct {
		Date  string           `json:"date"`
		Day   string           `json:"day,omitempty"`
		Slots *json.RawMessage `json:"slots,omitempty"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Date = obj.Date
	if e.Date == "" {
		e.Date = obj.Day
	}
	if obj.Slots == nil {
		e.HasSlots = false
		return nil
	}
	e.HasSlots = true
	return json.Unmarshal(*obj.Slots, &e.Slots)
}
