package mysql

import (
	"EventPulse/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

// EventFilter 列表查询条件，零值表示不过滤
type EventFilter struct {
	Status model.EventStatus
	HostID uint64
	// RSVPUserID 只返回该用户有RSVP的活动（普通用户视角）
	RSVPUserID uint64
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var event model.Event
	err := r.DB.First(&event, id).Error
	return &event, err
}

// FindByIDWithRelations 详情页要带RSVP和反馈，反馈最新在前
func (r *EventRepository) FindByIDWithRelations(id uint64) (*model.Event, error) {
	var event model.Event
	err := r.DB.
		Preload("RSVPs").
		Preload("Feedback", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&event, id).Error
	return &event, err
}

func (r *EventRepository) List(f EventFilter) ([]model.Event, error) {
	var list []model.Event
	q := r.DB.Model(&model.Event{})
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.HostID > 0 {
		q = q.Where("host_id = ?", f.HostID)
	}
	if f.RSVPUserID > 0 {
		q = q.Where("id IN (?)", r.DB.Model(&model.RSVP{}).
			Select("event_id").
			Where("user_id = ?", f.RSVPUserID))
	}
	err := q.Order("date_time ASC").Find(&list).Error
	return list, err
}

func (r *EventRepository) UpdateStatus(id uint64, status model.EventStatus) error {
	return r.DB.Model(&model.Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}
