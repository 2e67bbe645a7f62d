package meeting

import "fmt"

// ContactMethod is the tag form of a preferred contact channel as it appears
// in the editable request. On the wire and in storage each method is a small
// integer code; the two representations form a fixed bijection.
type ContactMethod string

const (
	MethodPhone    ContactMethod = "phone"
	MethodWhatsApp ContactMethod = "whatsapp"
	MethodTelegram ContactMethod = "telegram"
	MethodEmail    ContactMethod = "email"
	MethodFaceTime ContactMethod = "facetime"
	MethodIMO      ContactMethod = "imo"
)

var methodCodes = map[ContactMethod]int{
	MethodPhone:    1,
	MethodWhatsApp: 2,
	MethodTelegram: 3,
	MethodEmail:    4,
	MethodFaceTime: 5,
	MethodIMO:      6,
}

var methodTags = map[int]ContactMethod{
	1: MethodPhone,
	2: MethodWhatsApp,
	3: MethodTelegram,
	4: MethodEmail,
	5: MethodFaceTime,
	6: MethodIMO,
}

var methodLabels = map[ContactMethod]string{
	MethodPhone:    "Phone (Call & SMS)",
	MethodWhatsApp: "WhatsApp",
	MethodTelegram: "Telegram",
	MethodEmail:    "Email",
	MethodFaceTime: "Face time",
	MethodIMO:      "IMO",
}

// MethodCode returns the wire code for a contact-method tag.
func MethodCode(m ContactMethod) (int, bool) {
	code, ok := methodCodes[m]
	return code, ok
}

// MethodFromCode returns the tag for a wire code.
func MethodFromCode(code int) (ContactMethod, bool) {
	m, ok := methodTags[code]
	return m, ok
}

// IsKnownMethod reports whether the tag belongs to the closed enumeration.
func IsKnownMethod(m ContactMethod) bool {
	_, ok := methodCodes[m]
	return ok
}

// ContactMethodOption is one entry of the reference list served to clients.
type ContactMethodOption struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ScheduleTimeOption is one entry of the slot reference list.
type ScheduleTimeOption struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Catalog holds the reference data served by the read-only endpoints. It is
// built once at startup and passed by reference; nothing mutates it afterwards.
type Catalog struct {
	ContactMethods []ContactMethodOption
	ScheduleTimes  []ScheduleTimeOption
}

// NewCatalog builds the reference catalog. iconBaseURL is the public base URL
// used for contact-method icon links.
func NewCatalog(iconBaseURL string) *Catalog {
	ordered := []ContactMethod{
		MethodPhone, MethodWhatsApp, MethodTelegram,
		MethodEmail, MethodFaceTime, MethodIMO,
	}

	methods := make([]ContactMethodOption, 0, len(ordered))
	for _, m := range ordered {
		methods = append(methods, ContactMethodOption{
			ID:    methodCodes[m],
			Label: methodLabels[m],
			Icon:  fmt.Sprintf("%s/images/%s.png", iconBaseURL, m),
		})
	}

	times := make([]ScheduleTimeOption, 0, len(slots))
	for _, s := range slots {
		times = append(times, ScheduleTimeOption{ID: s.ID, Label: s.Label})
	}

	return &Catalog{ContactMethods: methods, ScheduleTimes: times}
}
