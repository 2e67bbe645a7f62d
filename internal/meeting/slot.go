package meeting

import "time"

// Slot is a fixed wall-clock interval offered for scheduling. A slot is not a
// date; it is combined with a separately chosen calendar day to produce the
// absolute meeting instant.
type Slot struct {
	ID    int
	Label string
	Hour  int
	Min   int
	Sec   int
}

// slots is the static slot table. The ids are wire values and must not be
// renumbered.
var slots = []Slot{
	{ID: 1, Label: "03:00 pm - 04:00 pm", Hour: 15},
	{ID: 2, Label: "04:00 pm - 05:00 pm", Hour: 16},
	{ID: 3, Label: "08:00 pm - 09:00 pm", Hour: 20},
	{ID: 4, Label: "10:00 pm - 11:00 pm", Hour: 22},
}

const unknownSlotLabel = "Unknown slot"

// SlotByID looks up a slot. Unknown ids report ok=false instead of silently
// falling back to a default slot; callers decide whether to reject.
func SlotByID(id int) (Slot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

// SlotLabel returns the human label for a slot id, or a sentinel for unknown
// ids. It never panics; redisplay of stale data must not fail.
func SlotLabel(id int) string {
	s, ok := SlotByID(id)
	if !ok {
		return unknownSlotLabel
	}
	return s.Label
}

// ResolveInstant combines the calendar day of date with the slot's wall-clock
// start time in the local offset.
func (s Slot) ResolveInstant(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.Hour, s.Min, s.Sec, 0, time.Local)
}

// IsFuture reports whether instant is strictly after now. Exactly-now is not
// future.
func IsFuture(instant, now time.Time) bool {
	return instant.After(now)
}
