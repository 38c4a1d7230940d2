package model

import "time"

type RSVPStatus string

const (
	RSVPConfirmed RSVPStatus = "CONFIRMED"
	RSVPCancelled RSVPStatus = "CANCELLED"
	RSVPWaitlist  RSVPStatus = "WAITLIST"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPConfirmed, RSVPCancelled, RSVPWaitlist:
		return true
	}
	return false
}

type RSVP struct {
	ID          uint64     `gorm:"primaryKey"`
	EventID     uint64     `gorm:"not null;index;uniqueIndex:uk_event_user"`
	UserID      uint64     `gorm:"not null;index;uniqueIndex:uk_event_user"`
	Status      RSVPStatus `gorm:"size:16;not null;default:'CONFIRMED'"`
	CheckedIn   bool       `gorm:"not null;default:false"`
	CheckedInAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RSVP) TableName() string { return "rsvps" }

// DecideRSVPStatus 容量判定：满员时强制进等待名单
// CANCELLED 不是合法的创建值，当作 CONFIRMED 处理
func DecideRSVPStatus(confirmed int64, maxAttendees *int, requested RSVPStatus) RSVPStatus {
	if !requested.Valid() || requested == RSVPCancelled {
		requested = RSVPConfirmed
	}
	if requested == RSVPConfirmed && maxAttendees != nil && confirmed >= int64(*maxAttendees) {
		return RSVPWaitlist
	}
	return requested
}
