package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"meetline/internal/config"
	"meetline/internal/domain"
	"meetline/internal/meeting"
	apperrors "meetline/pkg/errors"
)

var serviceNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meetline.db")
	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
		Conn:       sqlDB,
	}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Meeting{}))
	return db
}

func testService(t *testing.T) *MeetingService {
	t.Helper()
	s := NewMeetingService(testDB(t), NewEmailService(&config.EmailConfig{Enabled: false}))
	s.now = func() time.Time { return serviceNow }
	return s
}

func testPayload() meeting.Payload {
	return meeting.Payload{
		FirstName:     "Ann",
		LastName:      "Lee",
		Email:         "ann@x.com",
		ContactMethod: 1,
		ContactValue:  "+989121111111",
		ScheduleDate:  "2999-01-01T00:00:00.000Z",
		ScheduleTime:  1,
		Purpose:       "Apartment viewing",
	}
}

func TestMeetingServiceCreate(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	m, err := s.Create(ctx, testPayload())
	require.NoError(t, err)
	require.NotZero(t, m.ID)
	assert.Equal(t, "Ann", m.FirstName)
	assert.Equal(t, "+989121111111", m.ContactValue)
	assert.Equal(t, 1, m.ScheduleTime)
	assert.Equal(t, time.Date(2999, time.January, 1, 0, 0, 0, 0, time.UTC), m.ScheduleDate.UTC())
	assert.Nil(t, m.UpdatedAt)

	got, err := s.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "Apartment viewing", got.Purpose)
}

func TestMeetingServiceCreateTrimsWhitespace(t *testing.T) {
	s := testService(t)

	p := testPayload()
	p.FirstName = "  Ann  "
	p.Purpose = " viewing "
	m, err := s.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "Ann", m.FirstName)
	assert.Equal(t, "viewing", m.Purpose)
}

func TestMeetingServiceCreateRejectsSchemaFailure(t *testing.T) {
	s := testService(t)

	p := testPayload()
	p.Email = "nope"
	p.ContactMethod = 99
	_, err := s.Create(context.Background(), p)
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.True(t, apperrors.IsValidation(err))
	assert.Len(t, appErr.Fields, 2)

	var count int64
	require.NoError(t, s.db.Model(&domain.Meeting{}).Count(&count).Error)
	assert.Zero(t, count, "invalid request must not be persisted")
}

func TestMeetingServiceCreateRejectsPastMeeting(t *testing.T) {
	s := testService(t)

	p := testPayload()
	p.ScheduleDate = "2020-01-01T00:00:00.000Z"
	_, err := s.Create(context.Background(), p)
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
	assert.Equal(t, "Scheduled date and time must be in the future", appErr.Message)
	assert.False(t, apperrors.IsValidation(err))
}

func TestMeetingServiceCreateSameDayUsesSlotInstant(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	// The fixed clock reads 12:00 local. Slot 1 starts at 15:00, still ahead.
	p := testPayload()
	p.ScheduleDate = serviceNow.Format("2006-01-02") + "T00:00:00.000Z"
	p.ScheduleTime = 1
	_, err := s.Create(ctx, p)
	assert.NoError(t, err)

	// With the clock moved past the slot start the same request is rejected.
	s.now = func() time.Time { return serviceNow.Add(4 * time.Hour) }
	_, err = s.Create(ctx, p)
	require.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
}

func TestMeetingServiceGetUnknown(t *testing.T) {
	s := testService(t)

	_, err := s.Get(context.Background(), 12345)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Meeting not found", appErr.Message)
}

func TestMeetingServiceUpdate(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	m, err := s.Create(ctx, testPayload())
	require.NoError(t, err)

	p := testPayload()
	p.ContactMethod = 3
	p.ContactValue = "@ann_lee"
	p.ScheduleTime = 4
	updated, err := s.Update(ctx, m.ID, p)
	require.NoError(t, err)
	assert.Equal(t, m.ID, updated.ID)
	assert.Equal(t, 3, updated.ContactMethod)
	assert.Equal(t, "@ann_lee", updated.ContactValue)
	assert.Equal(t, 4, updated.ScheduleTime)
	assert.NotNil(t, updated.UpdatedAt)

	got, err := s.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "@ann_lee", got.ContactValue)
}

func TestMeetingServiceUpdateUnknown(t *testing.T) {
	s := testService(t)

	_, err := s.Update(context.Background(), 999, testPayload())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMeetingServiceUpdateRejectsInvalidPayload(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	m, err := s.Create(ctx, testPayload())
	require.NoError(t, err)

	p := testPayload()
	p.ScheduleTime = 9
	_, err = s.Update(ctx, m.ID, p)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// The stored row is untouched.
	got, err := s.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ScheduleTime)
}

func TestPayloadFromModelRoundTrip(t *testing.T) {
	s := testService(t)

	m, err := s.Create(context.Background(), testPayload())
	require.NoError(t, err)

	p := PayloadFromModel(m)
	assert.Equal(t, testPayload(), p)

	// A stored row maps cleanly into the edit view.
	f := meeting.ToForm(p)
	assert.Equal(t, "+98 912 111 1111", f.ContactValue)
	assert.Equal(t, "2999-01-01", f.ScheduleDate)
	assert.Empty(t, meeting.ValidateForm(f, serviceNow))
}
