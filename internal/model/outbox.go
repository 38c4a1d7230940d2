package model

import "time"

// NotificationOutbox 通知事件监控表
// RSVP写库时同事务落一行，由relayer异步投递，失败不回滚业务
type NotificationOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // rsvp_confirmed / rsvp_waitlisted
	Recipient string `gorm:"size:128;not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NotificationOutbox) TableName() string { return "notification_outbox" }
