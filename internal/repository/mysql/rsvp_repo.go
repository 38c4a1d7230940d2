package mysql

import (
	"context"
	"errors"
	"time"

	"EventPulse/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrAtCapacity 到场人数已达上限（walk-in路径）
	ErrAtCapacity = errors.New("event at capacity")
)

type RSVPRepository struct {
	DB *gorm.DB
}

func (r *RSVPRepository) FindByEventUser(eventID, userID uint64) (*model.RSVP, error) {
	var rsvp model.RSVP
	err := r.DB.Where("event_id = ? AND user_id = ?", eventID, userID).First(&rsvp).Error
	return &rsvp, err
}

func (r *RSVPRepository) UpdateStatus(id uint64, status model.RSVPStatus) (*model.RSVP, error) {
	var rsvp model.RSVP
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.RSVP{}).
			Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return err
		}
		return tx.First(&rsvp, id).Error
	})
	return &rsvp, err
}

// SubmitWithCapacity 创建新RSVP
// count-then-insert 存在并发超卖窗口，必须在同一事务里先锁活动行再数
// outbox 不为空时随业务同事务落一行，失败一起回滚
func (r *RSVPRepository) SubmitWithCapacity(ctx context.Context, eventID, userID uint64, requested model.RSVPStatus, outbox func(model.RSVPStatus) *model.NotificationOutbox) (*model.RSVP, error) {
	var rsvp *model.RSVP
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, eventID).Error; err != nil {
			return err
		}

		var confirmed int64
		if err := tx.Model(&model.RSVP{}).
			Where("event_id = ? AND status = ?", eventID, model.RSVPConfirmed).
			Count(&confirmed).Error; err != nil {
			return err
		}

		status := model.DecideRSVPStatus(confirmed, event.MaxAttendees, requested)
		rsvp = &model.RSVP{
			EventID: eventID,
			UserID:  userID,
			Status:  status,
		}
		if err := tx.Create(rsvp).Error; err != nil {
			return err
		}

		if outbox != nil {
			if ob := outbox(status); ob != nil {
				if err := tx.Create(ob).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	return rsvp, err
}

func (r *RSVPRepository) DeleteByEventUser(eventID, userID uint64) (int64, error) {
	res := r.DB.Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.RSVP{})
	return res.RowsAffected, res.Error
}

func (r *RSVPRepository) ListByEvent(eventID uint64) ([]model.RSVP, error) {
	var list []model.RSVP
	err := r.DB.Where("event_id = ?", eventID).Find(&list).Error
	return list, err
}

func (r *RSVPRepository) ListByEventUser(eventID, userID uint64) ([]model.RSVP, error) {
	var list []model.RSVP
	err := r.DB.Where("event_id = ? AND user_id = ?", eventID, userID).Find(&list).Error
	return list, err
}

// CheckInOnce 单向翻转：条件更新保证二次签到不生效
func (r *RSVPRepository) CheckInOnce(eventID, userID uint64, at time.Time) (int64, error) {
	res := r.DB.Model(&model.RSVP{}).
		Where("event_id = ? AND user_id = ? AND checked_in = ?", eventID, userID, false).
		Updates(map[string]any{"checked_in": true, "checked_in_at": at})
	return res.RowsAffected, res.Error
}

// CreateWalkIn 主办方现场补录：锁活动行后数已签到人数，满了拒绝
// 绕过截止时间和等待名单规则，直接 checked_in=true
func (r *RSVPRepository) CreateWalkIn(ctx context.Context, eventID, userID uint64) (*model.RSVP, error) {
	var rsvp *model.RSVP
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, eventID).Error; err != nil {
			return err
		}

		if event.MaxAttendees != nil {
			var checkedIn int64
			if err := tx.Model(&model.RSVP{}).
				Where("event_id = ? AND checked_in = ?", eventID, true).
				Count(&checkedIn).Error; err != nil {
				return err
			}
			if checkedIn >= int64(*event.MaxAttendees) {
				return ErrAtCapacity
			}
		}

		now := time.Now()
		rsvp = &model.RSVP{
			EventID:     eventID,
			UserID:      userID,
			Status:      model.RSVPConfirmed,
			CheckedIn:   true,
			CheckedInAt: &now,
		}
		return tx.Create(rsvp).Error
	})
	return rsvp, err
}

func (r *RSVPRepository) CountByEvent(eventID uint64) (total int64, checkedIn int64, err error) {
	if err = r.DB.Model(&model.RSVP{}).
		Where("event_id = ?", eventID).
		Count(&total).Error; err != nil {
		return
	}
	err = r.DB.Model(&model.RSVP{}).
		Where("event_id = ? AND checked_in = ?", eventID, true).
		Count(&checkedIn).Error
	return
}
