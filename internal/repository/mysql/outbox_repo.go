package mysql

import (
	"context"

	"EventPulse/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// ListPending 按批量取待投递行，旧的在前
func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]model.NotificationOutbox, error) {
	var rows []model.NotificationOutbox
	err := r.DB.WithContext(ctx).
		Where("status = ?", 0).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.NotificationOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

// MarkRetry 失败累计重试次数，failed由调用方根据重试上限判定
// 不能在SQL里用CASE看retry：MySQL的SET从左到右生效，CASE会看到加一后的值
func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64, failed bool) error {
	status := int8(0)
	if failed {
		status = 2
	}
	return r.DB.WithContext(ctx).Model(&model.NotificationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"retry":  gorm.Expr("retry + 1"),
			"status": status,
		}).Error
}
