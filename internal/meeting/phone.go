package meeting

import "strings"

// Contact values are stored in one canonical form. For phone numbers that is
// the bare national format +989XXXXXXXXX (13 characters, no spaces); the
// spaced form shown in the edit view is produced by FormatPhoneDisplay and is
// never persisted.

// NormalizeContactValue canonicalizes a user-entered contact value for the
// selected method. It is total: unrecognized shapes pass through unchanged so
// that schema validation, not normalization, is the rejection point.
func NormalizeContactValue(raw string, m ContactMethod) string {
	switch m {
	case MethodPhone:
		return NormalizePhone(raw)
	case MethodEmail:
		return strings.TrimSpace(raw)
	default:
		return raw
	}
}

// NormalizePhone reduces any recognized Iranian mobile shape to +989XXXXXXXXX.
// Recognized inputs: +98-prefixed, 98-prefixed, local 09XXXXXXXXX, and bare
// subscriber digits. Spaces and hyphens are insignificant. Inputs that do not
// reduce to a 9- or 10-digit subscriber number are returned with only the
// insignificant characters stripped.
func NormalizePhone(raw string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(raw)

	var subscriber string
	switch {
	case strings.HasPrefix(cleaned, "+98") && len(cleaned) > 3:
		subscriber = digitsOnly(cleaned[3:])
	case strings.HasPrefix(cleaned, "98") && len(cleaned) > 2:
		subscriber = digitsOnly(cleaned[2:])
	case strings.HasPrefix(cleaned, "09"):
		subscriber = strings.TrimPrefix(digitsOnly(cleaned), "0")
	default:
		subscriber = digitsOnly(cleaned)
	}

	switch {
	case len(subscriber) == 10 && subscriber[0] == '9':
		return "+98" + subscriber
	case len(subscriber) == 9:
		return "+989" + subscriber
	}
	return cleaned
}

// FormatPhoneDisplay re-inserts the display spacing (+98 XXX XXX XXXX) into a
// canonical phone value. Values not in canonical form are returned untouched.
func FormatPhoneDisplay(stored string) string {
	cleaned := strings.ReplaceAll(stored, " ", "")
	if !strings.HasPrefix(cleaned, "+989") || len(cleaned) != 13 {
		return stored
	}
	digits := cleaned[3:]
	if digitsOnly(digits) != digits {
		return stored
	}
	return "+98 " + digits[:3] + " " + digits[3:6] + " " + digits[6:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
