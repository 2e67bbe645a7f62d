package meeting

import (
	"errors"
	"strings"
	"time"
)

// Payload is the wire and storage shape of a meeting request: numeric codes
// for the contact method and slot, the schedule date as an ISO instant, the
// contact value in canonical form.
type Payload struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactMethod int    `json:"contactMethod"`
	ContactValue  string `json:"contactValue"`
	ScheduleDate  string `json:"scheduleDate"`
	ScheduleTime  int    `json:"scheduleTime"`
	Purpose       string `json:"purpose,omitempty"`
}

// ErrNotFuture is the semantic temporal violation: the resolved meeting
// instant is not strictly after now. It is reported separately from the
// structural field errors so the transport can surface its dedicated message.
var ErrNotFuture = errors.New("Scheduled date and time must be in the future")

// ValidatePayload checks a request in wire shape against the shared contract.
// The phone pattern here is the canonical form (+989XXXXXXXXX, 13 characters)
// because the wire side sees the value after the mapper has run. Unknown
// contact-method codes and slot ids are rejected outright rather than
// defaulted.
func ValidatePayload(p Payload) ValidationErrors {
	var errs ValidationErrors

	if required, tooLong := validName(p.FirstName); required {
		errs = append(errs, FieldError{"firstName", "First name is required"})
	} else if tooLong {
		errs = append(errs, FieldError{"firstName", "First name must be 250 characters or less"})
	}
	if required, tooLong := validName(p.LastName); required {
		errs = append(errs, FieldError{"lastName", "Last name is required"})
	} else if tooLong {
		errs = append(errs, FieldError{"lastName", "Last name must be 250 characters or less"})
	}
	if !validEmail(p.Email) {
		errs = append(errs, FieldError{"email", "Invalid email address"})
	}

	method, knownMethod := MethodFromCode(p.ContactMethod)
	if !knownMethod {
		errs = append(errs, FieldError{"contactMethod", "Invalid contact method"})
	}
	if strings.TrimSpace(p.ContactValue) == "" {
		errs = append(errs, FieldError{"contactValue", "Contact value is required"})
	} else if knownMethod {
		switch method {
		case MethodPhone:
			if !wirePhoneRegex.MatchString(p.ContactValue) {
				errs = append(errs, FieldError{"contactValue", "Phone number must start with +989 and be 13 characters long"})
			}
		case MethodEmail:
			if !validEmail(p.ContactValue) {
				errs = append(errs, FieldError{"contactValue", "Invalid email address"})
			}
		}
	}

	if _, ok := ParseScheduleDate(p.ScheduleDate); !ok {
		errs = append(errs, FieldError{"scheduleDate", "Invalid schedule date"})
	}
	if _, ok := SlotByID(p.ScheduleTime); !ok {
		errs = append(errs, FieldError{"scheduleTime", "Invalid schedule time"})
	}

	if !validPurpose(p.Purpose) {
		errs = append(errs, FieldError{"purpose", "Purpose must be 250 characters or less"})
	}

	return errs
}

// CheckFuture re-derives the meeting instant from the payload's own slot table
// entry and requires it to be strictly in the future. It assumes the payload
// already passed ValidatePayload; an unresolvable date or slot is reported as
// ErrNotFuture rather than accepted.
func CheckFuture(p Payload, now time.Time) error {
	slot, ok := SlotByID(p.ScheduleTime)
	if !ok {
		return ErrNotFuture
	}
	date, ok := ParseScheduleDate(p.ScheduleDate)
	if !ok {
		return ErrNotFuture
	}
	if !IsFuture(slot.ResolveInstant(date), now) {
		return ErrNotFuture
	}
	return nil
}
