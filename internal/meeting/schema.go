package meeting

import (
	"regexp"
	"strings"
	"time"
)

// The form-side and wire-side schemas enforce one semantic contract on two
// representations of the same request: the form sees display-formatted values
// before the mapper runs, the wire side sees canonical values after. The rules
// they share (names, email, purpose length) must stay identical on both sides;
// schema_test.go asserts that anything the form schema accepts is accepted by
// the wire schema after mapping.

const maxFieldLen = 250

var (
	emailRegex        = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	displayPhoneRegex = regexp.MustCompile(`^\+98 \d{3} \d{3} \d{4}$`)
	wirePhoneRegex    = regexp.MustCompile(`^\+989\d{9}$`)
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the structured failure result of a schema check.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, ", ")
}

// validName checks the shared first/last name rule: required, at most 250
// characters after trimming.
func validName(s string) (required, tooLong bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed == "", len(trimmed) > maxFieldLen
}

func validEmail(s string) bool {
	trimmed := strings.TrimSpace(s)
	return len(trimmed) <= maxFieldLen && emailRegex.MatchString(trimmed)
}

// validPurpose checks the shared optional-purpose rule.
func validPurpose(s string) bool {
	return len(strings.TrimSpace(s)) <= maxFieldLen
}

// ParseScheduleDate parses the stored/wire schedule date. RFC3339 with or
// without fractional seconds is accepted, as is a bare calendar date treated
// as midnight.
func ParseScheduleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
