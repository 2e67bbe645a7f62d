package domain

import (
	"time"

	"gorm.io/gorm"
)

// Meeting is a stored meeting request. ContactValue is always the canonical
// form (+989XXXXXXXXX for phone), ScheduleDate is the calendar day at
// midnight, ScheduleTime is the slot id from the static slot table.
type Meeting struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FirstName     string     `gorm:"not null" json:"firstName"`
	LastName      string     `gorm:"not null" json:"lastName"`
	Email         string     `gorm:"not null;index" json:"email"`
	ContactMethod int        `gorm:"type:smallint;not null" json:"contactMethod"`
	ContactValue  string     `gorm:"not null" json:"contactValue"`
	ScheduleDate  time.Time  `gorm:"not null" json:"scheduleDate"`
	ScheduleTime  int        `gorm:"type:smallint;not null" json:"scheduleTime"`
	Purpose       string     `gorm:"type:text;default:''" json:"purpose"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// BeforeCreate hook
func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	m.CreatedAt = time.Now()
	return nil
}

// BeforeUpdate hook
func (m *Meeting) BeforeUpdate(tx *gorm.DB) error {
	now := time.Now()
	m.UpdatedAt = &now
	return nil
}
