package mysql

import (
	"EventPulse/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func (r *FeedbackRepository) Create(fb *model.Feedback) error {
	return r.DB.Create(fb).Error
}

func (r *FeedbackRepository) FindByID(id uint64) (*model.Feedback, error) {
	var fb model.Feedback
	err := r.DB.First(&fb, id).Error
	return &fb, err
}

func (r *FeedbackRepository) ExistsByEventUser(eventID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Feedback{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

// FeedbackFilter nil表示不按该字段过滤
type FeedbackFilter struct {
	Pinned  *bool
	Flagged *bool
}

// ListByEvent 置顶在前，其余按时间倒序
func (r *FeedbackRepository) ListByEvent(eventID uint64, f FeedbackFilter) ([]model.Feedback, error) {
	var list []model.Feedback
	q := r.DB.Where("event_id = ?", eventID)
	if f.Pinned != nil {
		q = q.Where("is_pinned = ?", *f.Pinned)
	}
	if f.Flagged != nil {
		q = q.Where("is_flagged = ?", *f.Flagged)
	}
	err := q.Order("is_pinned DESC, created_at DESC").Find(&list).Error
	return list, err
}

func (r *FeedbackRepository) ListComments(eventID uint64) ([]string, error) {
	var comments []string
	err := r.DB.Model(&model.Feedback{}).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Pluck("comment", &comments).Error
	return comments, err
}

// ListReactionsEmojis 按创建顺序返回，top-emoji并列时要保持首次出现的次序
func (r *FeedbackRepository) ListReactionsEmojis(eventID uint64) ([]model.Feedback, error) {
	var list []model.Feedback
	err := r.DB.Select("reaction", "emoji").
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *FeedbackRepository) SetPinned(id uint64, pinned bool) error {
	return r.DB.Model(&model.Feedback{}).
		Where("id = ?", id).
		Update("is_pinned", pinned).Error
}

func (r *FeedbackRepository) SetFlagged(id uint64, flagged bool) error {
	return r.DB.Model(&model.Feedback{}).
		Where("id = ?", id).
		Update("is_flagged", flagged).Error
}
