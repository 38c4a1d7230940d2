package service

import (
	"context"
	"time"

	"EventPulse/internal/model"
	"EventPulse/internal/repository/mysql"
)

// 窄接口：每个服务只声明自己用到的仓储能力
// mysql包的具体仓储天然满足，测试里换内存桩

type eventFinder interface {
	FindByID(id uint64) (*model.Event, error)
}

type cacheInvalidator interface {
	Delete(ctx context.Context, eventID uint64) error
}

type rsvpFinder interface {
	FindByEventUser(eventID, userID uint64) (*model.RSVP, error)
}

type rsvpStore interface {
	rsvpFinder
	UpdateStatus(id uint64, status model.RSVPStatus) (*model.RSVP, error)
	SubmitWithCapacity(ctx context.Context, eventID, userID uint64, requested model.RSVPStatus, outbox func(model.RSVPStatus) *model.NotificationOutbox) (*model.RSVP, error)
	DeleteByEventUser(eventID, userID uint64) (int64, error)
	ListByEvent(eventID uint64) ([]model.RSVP, error)
	ListByEventUser(eventID, userID uint64) ([]model.RSVP, error)
}

type checkinStore interface {
	rsvpFinder
	CheckInOnce(eventID, userID uint64, at time.Time) (int64, error)
	CreateWalkIn(ctx context.Context, eventID, userID uint64) (*model.RSVP, error)
}

type feedbackStore interface {
	Create(fb *model.Feedback) error
	FindByID(id uint64) (*model.Feedback, error)
	ExistsByEventUser(eventID, userID uint64) (bool, error)
	ListByEvent(eventID uint64, f mysql.FeedbackFilter) ([]model.Feedback, error)
	SetPinned(id uint64, pinned bool) error
	SetFlagged(id uint64, flagged bool) error
}

type userFinder interface {
	FindByID(id uint64) (*model.User, error)
}

type userStore interface {
	userFinder
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	UpdatePassword(user *model.User, newPassword string) error
}

type sessionStore interface {
	AddUserToken(userID uint64, token string) error
	DeleteUserToken(userID uint64) error
}

type outboxStore interface {
	ListPending(ctx context.Context, limit int) ([]model.NotificationOutbox, error)
	MarkSent(ctx context.Context, id uint64) error
	MarkRetry(ctx context.Context, id uint64, failed bool) error
}
