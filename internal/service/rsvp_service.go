package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"EventPulse/internal/model"
	"EventPulse/internal/repository/mysql"
	"EventPulse/internal/repository/redis"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RSVPService struct {
	repo      rsvpStore
	eventRepo eventFinder
	userRepo  userFinder
	cache     cacheInvalidator
}

func NewRSVPService(db *gorm.DB, rdb *goredis.Client) *RSVPService {
	return &RSVPService{
		repo:      &mysql.RSVPRepository{DB: db},
		eventRepo: &mysql.EventRepository{DB: db},
		userRepo:  &mysql.UserRepository{DB: db},
		cache:     redis.NewAnalyticsCacheRepository(rdb),
	}
}

// Submit 同一(event,user)重复提交按更新处理；新建走容量判定
// 通知以outbox行的形式随业务同事务落库，由relayer异步投递
func (s *RSVPService) Submit(ctx context.Context, eventID, userID uint64, requested model.RSVPStatus) (*model.RSVP, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(event.RSVPDeadline) {
		return nil, ErrDeadlinePassed
	}

	if !requested.Valid() {
		requested = model.RSVPConfirmed
	}

	existing, err := s.repo.FindByEventUser(eventID, userID)
	if err == nil {
		// 幂等更新，不重查容量
		updated, uerr := s.repo.UpdateStatus(existing.ID, requested)
		if uerr != nil {
			return nil, uerr
		}
		_ = s.cache.Delete(ctx, eventID)
		return updated, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	rsvp, err := s.repo.SubmitWithCapacity(ctx, eventID, userID, requested, func(status model.RSVPStatus) *model.NotificationOutbox {
		return buildRSVPOutbox(event, user, status)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 并发首次提交撞了唯一键，降级为幂等更新
		existing, ferr := s.repo.FindByEventUser(eventID, userID)
		if ferr != nil {
			return nil, ferr
		}
		updated, uerr := s.repo.UpdateStatus(existing.ID, requested)
		if uerr != nil {
			return nil, uerr
		}
		_ = s.cache.Delete(ctx, eventID)
		return updated, nil
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, eventID)
	return rsvp, nil
}

func (s *RSVPService) Cancel(ctx context.Context, eventID, userID uint64) error {
	event, err := s.eventRepo.FindByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if time.Now().After(event.RSVPDeadline) {
		return ErrDeadlinePassed
	}

	affected, err := s.repo.DeleteByEventUser(eventID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	// TODO: 等待名单递补待产品定规则后在这里做
	_ = s.cache.Delete(ctx, eventID)
	return nil
}

// List 角色收口：普通用户只能看自己那条
func (s *RSVPService) List(eventID, callerID uint64, role model.Role) ([]model.RSVP, error) {
	if _, err := s.eventRepo.FindByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if role.CanSeeAllRSVPs() {
		return s.repo.ListByEvent(eventID)
	}
	return s.repo.ListByEventUser(eventID, callerID)
}

// RSVPNotification outbox payload
type RSVPNotification struct {
	EventID    uint64 `json:"event_id"`
	EventTitle string `json:"event_title"`
	EventDate  string `json:"event_date"`
	Location   string `json:"location"`
	UserID     uint64 `json:"user_id"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

func buildRSVPOutbox(event *model.Event, user *model.User, status model.RSVPStatus) *model.NotificationOutbox {
	eventType := "rsvp_confirmed"
	if status == model.RSVPWaitlist {
		eventType = "rsvp_waitlisted"
	}
	payload, err := json.Marshal(RSVPNotification{
		EventID:    event.ID,
		EventTitle: event.Title,
		EventDate:  event.DateTime.Format(time.RFC3339),
		Location:   event.Location,
		UserID:     user.ID,
		Email:      user.Email,
		Status:     string(status),
	})
	if err != nil {
		return nil
	}
	return &model.NotificationOutbox{
		EventType: eventType,
		Recipient: user.Email,
		Payload:   string(payload),
	}
}
