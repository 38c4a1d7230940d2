package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"EventPulse/internal/model"
	"EventPulse/internal/pkg"
	"EventPulse/internal/repository/mysql"
	"EventPulse/internal/repository/redis"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CheckInService struct {
	repo      checkinStore
	eventRepo eventFinder
	userRepo  userStore
	cache     cacheInvalidator
	now       func() time.Time
}

func NewCheckInService(db *gorm.DB, rdb *goredis.Client) *CheckInService {
	return &CheckInService{
		repo:      &mysql.RSVPRepository{DB: db},
		eventRepo: &mysql.EventRepository{DB: db},
		userRepo:  &mysql.UserRepository{DB: db},
		cache:     redis.NewAnalyticsCacheRepository(rdb),
		now:       time.Now,
	}
}

// SameCalendarDay 签到只开放活动当天，按活动时区比较
func SameCalendarDay(a, b time.Time, tz string) bool {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// SelfCheckIn 返回nil RSVP表示主办方本人签到，没有RSVP行可更新
func (s *CheckInService) SelfCheckIn(ctx context.Context, eventID, userID uint64) (*model.RSVP, error) {
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
	if !SameCalendarDay(event.DateTime, s.now(), event.Timezone) {
		return nil, ErrWrongDay
	}

	rsvp, err := s.repo.FindByEventUser(eventID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if event.HostID == userID {
			return nil, nil
		}
		return nil, ErrNoRSVP
	}
	if err != nil {
		return nil, err
	}
	if rsvp.Status == model.RSVPCancelled {
		return nil, ErrNoRSVP
	}

	at := s.now()
	affected, err := s.repo.CheckInOnce(eventID, userID, at)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAlreadyCheckedIn
	}

	rsvp.CheckedIn = true
	rsvp.CheckedInAt = &at

	_ = s.cache.Delete(ctx, eventID)
	return rsvp, nil
}

// WalkIn 主办方现场补录，按邮箱找人，没有就建最小账号
// 故意绕过截止时间和等待名单规则
func (s *CheckInService) WalkIn(ctx context.Context, eventID, callerID uint64, attendeeEmail string) (*model.RSVP, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if event.HostID != callerID {
		return nil, ErrForbidden
	}

	user, err := s.userRepo.FindByEmail(attendeeEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.createWalkInUser(attendeeEmail)
	}
	if err != nil {
		return nil, err
	}

	rsvp, err := s.repo.CreateWalkIn(ctx, eventID, user.ID)
	if errors.Is(err, mysql.ErrAtCapacity) {
		return nil, ErrAtCapacity
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 已有RSVP的走自助签到，不重复建行
		return nil, fmt.Errorf("%w: attendee already has an RSVP", ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, eventID)
	return rsvp, nil
}

// 随机一次性密码，之后走重置流程找回
func (s *CheckInService) createWalkInUser(email string) (*model.User, error) {
	raw, err := pkg.RandDigits(8)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:    email,
		Password: string(hash),
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
