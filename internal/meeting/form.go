package meeting

import (
	"strconv"
	"strings"
	"time"
)

// FormData is the editable shape of a meeting request: flat strings, contact
// method as a tag, schedule slot as the string form of its id.
type FormData struct {
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Email         string        `json:"email"`
	ContactMethod ContactMethod `json:"contactMethod"`
	ContactValue  string        `json:"contactValue"`
	ScheduleDate  string        `json:"scheduleDate"`
	ScheduleTime  string        `json:"scheduleTime"`
	Purpose       string        `json:"purpose,omitempty"`
}

// ValidateForm checks a request in form shape against the shared contract.
// The phone pattern here is the display form (+98 912 111 1111) because the
// form sees the value before the mapper canonicalizes it. The temporal check
// is permissive: an unknown slot id or unparseable date passes, and the wire
// schema remains the authoritative gate.
func ValidateForm(f FormData, now time.Time) ValidationErrors {
	var errs ValidationErrors

	if required, tooLong := validName(f.FirstName); required {
		errs = append(errs, FieldError{"firstName", "First name is required"})
	} else if tooLong {
		errs = append(errs, FieldError{"firstName", "First name must be 250 characters or less"})
	}
	if required, tooLong := validName(f.LastName); required {
		errs = append(errs, FieldError{"lastName", "Last name is required"})
	} else if tooLong {
		errs = append(errs, FieldError{"lastName", "Last name must be 250 characters or less"})
	}
	if !validEmail(f.Email) {
		errs = append(errs, FieldError{"email", "Invalid email address"})
	}

	if !IsKnownMethod(f.ContactMethod) {
		errs = append(errs, FieldError{"contactMethod", "Invalid contact method"})
	}
	if strings.TrimSpace(f.ContactValue) == "" {
		errs = append(errs, FieldError{"contactValue", "Contact value is required"})
	} else {
		switch f.ContactMethod {
		case MethodPhone:
			if !displayPhoneRegex.MatchString(f.ContactValue) {
				errs = append(errs, FieldError{"contactValue", "Phone number must be in format: +98 912 111 1111"})
			}
		case MethodEmail:
			if !validEmail(f.ContactValue) {
				errs = append(errs, FieldError{"contactValue", "Invalid email address"})
			}
		}
	}

	if strings.TrimSpace(f.ScheduleDate) == "" {
		errs = append(errs, FieldError{"scheduleDate", "Date is required"})
	}
	if strings.TrimSpace(f.ScheduleTime) == "" {
		errs = append(errs, FieldError{"scheduleTime", "Time is required"})
	} else if err := futureCheckForm(f, now); err != nil {
		errs = append(errs, *err)
	}

	if !validPurpose(f.Purpose) {
		errs = append(errs, FieldError{"purpose", "Purpose must be 250 characters or less"})
	}

	return errs
}

// futureCheckForm applies the form-side temporal refinement. Failures to
// resolve an instant are treated as pass; only a resolvable past instant is a
// violation.
func futureCheckForm(f FormData, now time.Time) *FieldError {
	id, err := strconv.Atoi(strings.TrimSpace(f.ScheduleTime))
	if err != nil {
		return nil
	}
	slot, ok := SlotByID(id)
	if !ok {
		return nil
	}
	date, ok := ParseScheduleDate(f.ScheduleDate)
	if !ok {
		return nil
	}
	if !IsFuture(slot.ResolveInstant(date), now) {
		return &FieldError{"scheduleTime", "Meeting time must be in the future"}
	}
	return nil
}
