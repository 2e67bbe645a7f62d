package meeting

import (
	"fmt"
	"strconv"
	"strings"
)

// The mapper is the bidirectional transform between the editable form shape
// and the wire/storage shape. ToWire follows normalization: the stored contact
// value is canonical and the schedule date is a midnight-UTC instant. ToForm
// reverses both, re-inserting the phone display spacing. For every field
// except that spacing, ToForm(ToWire(f)) == f on well-formed input.

// ToWire maps a validated form request to its wire payload. An unknown
// contact-method tag or unparseable slot id is an error: silently defaulting
// would book a different channel or slot than the user chose.
func ToWire(f FormData) (Payload, error) {
	code, ok := MethodCode(f.ContactMethod)
	if !ok {
		return Payload{}, fmt.Errorf("unknown contact method %q", f.ContactMethod)
	}

	slotID, err := strconv.Atoi(strings.TrimSpace(f.ScheduleTime))
	if err != nil {
		return Payload{}, fmt.Errorf("invalid schedule time %q", f.ScheduleTime)
	}
	if _, ok := SlotByID(slotID); !ok {
		return Payload{}, fmt.Errorf("unknown schedule time %d", slotID)
	}

	date, ok := ParseScheduleDate(f.ScheduleDate)
	if !ok {
		return Payload{}, fmt.Errorf("invalid schedule date %q", f.ScheduleDate)
	}

	return Payload{
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Email:         f.Email,
		ContactMethod: code,
		ContactValue:  NormalizeContactValue(f.ContactValue, f.ContactMethod),
		ScheduleDate:  date.Format("2006-01-02") + "T00:00:00.000Z",
		ScheduleTime:  slotID,
		Purpose:       f.Purpose,
	}, nil
}

// ToForm maps a stored payload back to the editable shape. An unknown
// contact-method code falls back to phone so that legacy rows stay editable;
// the fallback is deliberate and mirrors the original edit view.
func ToForm(p Payload) FormData {
	method, ok := MethodFromCode(p.ContactMethod)
	if !ok {
		method = MethodPhone
	}

	contactValue := p.ContactValue
	if method == MethodPhone {
		contactValue = FormatPhoneDisplay(p.ContactValue)
	}

	return FormData{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		ContactMethod: method,
		ContactValue:  contactValue,
		ScheduleDate:  dateOnly(p.ScheduleDate),
		ScheduleTime:  strconv.Itoa(p.ScheduleTime),
		Purpose:       p.Purpose,
	}
}

// dateOnly trims a wire instant down to its calendar date for redisplay.
func dateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}
