package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"meetline/internal/domain"
	"meetline/internal/meeting"
	"meetline/internal/metrics"
	apperrors "meetline/pkg/errors"
)

// MeetingService implements the meeting request orchestration: wire-schema
// validation, the authoritative future-time check, and a single storage write.
// There is no retry and no idempotency key; a network retry of a create can
// produce a duplicate record.
type MeetingService struct {
	db           *gorm.DB
	emailService *EmailService
	now          func() time.Time
}

// NewMeetingService creates a new meeting service
func NewMeetingService(db *gorm.DB, emailService *EmailService) *MeetingService {
	return &MeetingService{
		db:           db,
		emailService: emailService,
		now:          time.Now,
	}
}

// Create validates and persists a new meeting request.
func (s *MeetingService) Create(ctx context.Context, p meeting.Payload) (*domain.Meeting, error) {
	log.Printf("[MEETING] Create request: name=%s %s, email=%s", strings.TrimSpace(p.FirstName), strings.TrimSpace(p.LastName), strings.TrimSpace(p.Email))

	if err := s.validate(p); err != nil {
		log.Printf("[MEETING] Create failed: %v", err)
		return nil, err
	}

	m := modelFromPayload(p)
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		log.Printf("[MEETING] Create failed: database error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to save meeting", err)
	}

	log.Printf("[MEETING] Create successful: id=%d, slot=%d", m.ID, m.ScheduleTime)
	metrics.RecordMeetingCreated()

	// Send confirmation email (async, don't fail if email fails)
	go func(m domain.Meeting) {
		if err := s.emailService.SendMeetingConfirmation(&m); err != nil {
			log.Printf("[MEETING] Warning: failed to send confirmation email: %v", err)
		}
	}(*m)

	return m, nil
}

// Update validates the payload and merges it into an existing meeting.
func (s *MeetingService) Update(ctx context.Context, id uint, p meeting.Payload) (*domain.Meeting, error) {
	log.Printf("[MEETING] Update request: id=%d", id)

	if err := s.validate(p); err != nil {
		log.Printf("[MEETING] Update failed: id=%d: %v", id, err)
		return nil, err
	}

	var m domain.Meeting
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "Meeting not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to load meeting", err)
	}

	applyPayload(&m, p)
	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		log.Printf("[MEETING] Update failed: database error: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to save meeting", err)
	}

	log.Printf("[MEETING] Update successful: id=%d", m.ID)
	metrics.RecordMeetingUpdated()
	return &m, nil
}

// Get returns a stored meeting by id.
func (s *MeetingService) Get(ctx context.Context, id uint) (*domain.Meeting, error) {
	var m domain.Meeting
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "Meeting not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to load meeting", err)
	}
	return &m, nil
}

// validate runs the wire schema followed by the authoritative temporal check.
// The schema failure carries field errors; the temporal failure is a plain
// bad-request with its dedicated message.
func (s *MeetingService) validate(p meeting.Payload) error {
	if errs := meeting.ValidatePayload(p); len(errs) > 0 {
		metrics.RecordValidationFailure("schema")
		return apperrors.Validation(errs)
	}
	if err := meeting.CheckFuture(p, s.now()); err != nil {
		metrics.RecordValidationFailure("future")
		return apperrors.Wrap(apperrors.ErrCodeBadRequest, err.Error(), err)
	}
	return nil
}

// modelFromPayload builds the storage row for a validated payload. The
// schedule date is stored as the calendar day at midnight UTC.
func modelFromPayload(p meeting.Payload) *domain.Meeting {
	var m domain.Meeting
	applyPayload(&m, p)
	return &m
}

func applyPayload(m *domain.Meeting, p meeting.Payload) {
	date, _ := meeting.ParseScheduleDate(p.ScheduleDate)
	m.FirstName = strings.TrimSpace(p.FirstName)
	m.LastName = strings.TrimSpace(p.LastName)
	m.Email = strings.TrimSpace(p.Email)
	m.ContactMethod = p.ContactMethod
	m.ContactValue = p.ContactValue
	m.ScheduleDate = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	m.ScheduleTime = p.ScheduleTime
	m.Purpose = strings.TrimSpace(p.Purpose)
}

// PayloadFromModel converts a stored meeting back to its wire payload shape,
// as consumed by the form mapper when populating an edit view.
func PayloadFromModel(m *domain.Meeting) meeting.Payload {
	return meeting.Payload{
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		ContactMethod: m.ContactMethod,
		ContactValue:  m.ContactValue,
		ScheduleDate:  fmt.Sprintf("%sT00:00:00.000Z", m.ScheduleDate.UTC().Format("2006-01-02")),
		ScheduleTime:  m.ScheduleTime,
		Purpose:       m.Purpose,
	}
}
