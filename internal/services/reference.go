package services

import "meetline/internal/meeting"

// ReferenceService serves the read-only reference data: the contact-method
// list and the schedule-slot list. Both come from the immutable catalog built
// at startup.
type ReferenceService struct {
	catalog *meeting.Catalog
}

// NewReferenceService creates a new reference data service
func NewReferenceService(catalog *meeting.Catalog) *ReferenceService {
	return &ReferenceService{catalog: catalog}
}

// ContactMethods returns the selectable contact methods.
func (s *ReferenceService) ContactMethods() []meeting.ContactMethodOption {
	return s.catalog.ContactMethods
}

// ScheduleTimes returns the selectable schedule slots.
func (s *ReferenceService) ScheduleTimes() []meeting.ScheduleTimeOption {
	return s.catalog.ScheduleTimes
}
