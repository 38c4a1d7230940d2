package model

import "time"

type EventStatus string

const (
	EventScheduled EventStatus = "SCHEDULED"
	EventLive      EventStatus = "LIVE"
	EventClosed    EventStatus = "CLOSED"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventScheduled, EventLive, EventClosed:
		return true
	}
	return false
}

type Event struct {
	ID           uint64      `gorm:"primaryKey"`
	Title        string      `gorm:"size:200;not null"`
	Description  string      `gorm:"type:text"`
	DateTime     time.Time   `gorm:"not null;index"`
	Timezone     string      `gorm:"size:64;not null"`
	Location     string      `gorm:"size:200;not null"`
	RSVPDeadline time.Time   `gorm:"not null"`
	MaxAttendees *int        // 空表示不限人数
	Status       EventStatus `gorm:"size:16;not null;default:'SCHEDULED';index"`
	HostID       uint64      `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RSVPs    []RSVP     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:",omitempty"`
	Feedback []Feedback `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:",omitempty"`
}
