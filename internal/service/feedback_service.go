package service

import (
	"context"
	"errors"
	"fmt"

	"EventPulse/internal/model"
	"EventPulse/internal/repository/mysql"
	"EventPulse/internal/repository/redis"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type FeedbackService struct {
	repo      feedbackStore
	eventRepo eventFinder
	rsvpRepo  rsvpFinder
	cache     cacheInvalidator
}

func NewFeedbackService(db *gorm.DB, rdb *goredis.Client) *FeedbackService {
	return &FeedbackService{
		repo:      &mysql.FeedbackRepository{DB: db},
		eventRepo: &mysql.EventRepository{DB: db},
		rsvpRepo:  &mysql.RSVPRepository{DB: db},
		cache:     redis.NewAnalyticsCacheRepository(rdb),
	}
}

// Submit 只在LIVE期间收，提交人必须有未取消的RSVP，一人一条
func (s *FeedbackService) Submit(ctx context.Context, eventID, userID uint64, comment string, reaction model.Reaction, emoji string) (*model.Feedback, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if event.Status != model.EventLive {
		return nil, ErrEventNotLive
	}

	rsvp, err := s.rsvpRepo.FindByEventUser(eventID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotRSVPed
	}
	if err != nil {
		return nil, err
	}
	if rsvp.Status == model.RSVPCancelled {
		return nil, ErrNotRSVPed
	}

	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrValidation)
	}
	if reaction != "" && !reaction.Valid() {
		return nil, fmt.Errorf("%w: unknown reaction", ErrValidation)
	}

	exists, err := s.repo.ExistsByEventUser(eventID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFeedback
	}

	fb := &model.Feedback{
		EventID:  eventID,
		UserID:   userID,
		Comment:  comment,
		Reaction: reaction,
		Emoji:    emoji,
	}
	if err := s.repo.Create(fb); err != nil {
		// 并发重复提交被唯一键拦下
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateFeedback
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, eventID)
	return fb, nil
}

func (s *FeedbackService) List(eventID uint64, pinned, flagged *bool) ([]model.Feedback, error) {
	if _, err := s.eventRepo.FindByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.ListByEvent(eventID, mysql.FeedbackFilter{Pinned: pinned, Flagged: flagged})
}

type ModerationAction string

const (
	ActionPin   ModerationAction = "pin"
	ActionUnpin ModerationAction = "unpin"
	ActionFlag  ModerationAction = "flag"
)

// Moderate 置顶和标记是两个独立开关
func (s *FeedbackService) Moderate(ctx context.Context, eventID, callerID uint64, role model.Role, feedbackID uint64, action ModerationAction) (*model.Feedback, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if event.HostID != callerID && !role.IsAdmin() {
		return nil, ErrForbidden
	}

	fb, err := s.repo.FindByID(feedbackID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if fb.EventID != eventID {
		return nil, ErrNotFound
	}

	switch action {
	case ActionPin:
		err = s.repo.SetPinned(feedbackID, true)
		fb.IsPinned = true
	case ActionUnpin:
		err = s.repo.SetPinned(feedbackID, false)
		fb.IsPinned = false
	case ActionFlag:
		err = s.repo.SetFlagged(feedbackID, true)
		fb.IsFlagged = true
	default:
		return nil, fmt.Errorf("%w: unknown action", ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, eventID)
	return fb, nil
}
