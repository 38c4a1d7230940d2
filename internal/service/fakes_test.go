package service

import (
	"context"
	"time"

	"EventPulse/internal/model"
	"EventPulse/internal/repository/mysql"

	"gorm.io/gorm"
)

// 内存桩：满足store.go里的窄接口，专测服务层的规则分支

type fakeEvents struct {
	events map[uint64]*model.Event
}

func (f *fakeEvents) FindByID(id uint64) (*model.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ev, nil
}

type fakeCache struct {
	deleted []uint64
}

func (f *fakeCache) Delete(_ context.Context, eventID uint64) error {
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeRSVPs struct {
	rows       map[uint64]*model.RSVP
	nextID     uint64
	atCapacity bool
	creates    int
	updates    int
}

func newFakeRSVPs() *fakeRSVPs {
	return &fakeRSVPs{rows: map[uint64]*model.RSVP{}, nextID: 1}
}

func (f *fakeRSVPs) add(eventID, userID uint64, status model.RSVPStatus) *model.RSVP {
	r := &model.RSVP{ID: f.nextID, EventID: eventID, UserID: userID, Status: status}
	f.rows[r.ID] = r
	f.nextID++
	return r
}

func (f *fakeRSVPs) FindByEventUser(eventID, userID uint64) (*model.RSVP, error) {
	for _, r := range f.rows {
		if r.EventID == eventID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRSVPs) UpdateStatus(id uint64, status model.RSVPStatus) (*model.RSVP, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.Status = status
	f.updates++
	return r, nil
}

func (f *fakeRSVPs) SubmitWithCapacity(_ context.Context, eventID, userID uint64, requested model.RSVPStatus, _ func(model.RSVPStatus) *model.NotificationOutbox) (*model.RSVP, error) {
	if _, err := f.FindByEventUser(eventID, userID); err == nil {
		return nil, gorm.ErrDuplicatedKey
	}
	status := requested
	if f.atCapacity && requested == model.RSVPConfirmed {
		status = model.RSVPWaitlist
	}
	f.creates++
	return f.add(eventID, userID, status), nil
}

func (f *fakeRSVPs) DeleteByEventUser(eventID, userID uint64) (int64, error) {
	for id, r := range f.rows {
		if r.EventID == eventID && r.UserID == userID {
			delete(f.rows, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRSVPs) ListByEvent(eventID uint64) ([]model.RSVP, error) {
	var out []model.RSVP
	for _, r := range f.rows {
		if r.EventID == eventID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRSVPs) ListByEventUser(eventID, userID uint64) ([]model.RSVP, error) {
	var out []model.RSVP
	for _, r := range f.rows {
		if r.EventID == eventID && r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRSVPs) CheckInOnce(eventID, userID uint64, at time.Time) (int64, error) {
	r, err := f.FindByEventUser(eventID, userID)
	if err != nil || r.CheckedIn {
		return 0, nil
	}
	r.CheckedIn = true
	r.CheckedInAt = &at
	return 1, nil
}

func (f *fakeRSVPs) CreateWalkIn(_ context.Context, eventID, userID uint64) (*model.RSVP, error) {
	if _, err := f.FindByEventUser(eventID, userID); err == nil {
		return nil, gorm.ErrDuplicatedKey
	}
	if f.atCapacity {
		return nil, mysql.ErrAtCapacity
	}
	f.creates++
	r := f.add(eventID, userID, model.RSVPConfirmed)
	now := time.Now()
	r.CheckedIn = true
	r.CheckedInAt = &now
	return r, nil
}

type fakeFeedback struct {
	rows   map[uint64]*model.Feedback
	nextID uint64
}

func newFakeFeedback() *fakeFeedback {
	return &fakeFeedback{rows: map[uint64]*model.Feedback{}, nextID: 1}
}

func (f *fakeFeedback) Create(fb *model.Feedback) error {
	for _, r := range f.rows {
		if r.EventID == fb.EventID && r.UserID == fb.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	fb.ID = f.nextID
	f.rows[fb.ID] = fb
	f.nextID++
	return nil
}

func (f *fakeFeedback) FindByID(id uint64) (*model.Feedback, error) {
	fb, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return fb, nil
}

func (f *fakeFeedback) ExistsByEventUser(eventID, userID uint64) (bool, error) {
	for _, r := range f.rows {
		if r.EventID == eventID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFeedback) ListByEvent(eventID uint64, filter mysql.FeedbackFilter) ([]model.Feedback, error) {
	var out []model.Feedback
	for _, r := range f.rows {
		if r.EventID != eventID {
			continue
		}
		if filter.Pinned != nil && r.IsPinned != *filter.Pinned {
			continue
		}
		if filter.Flagged != nil && r.IsFlagged != *filter.Flagged {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeFeedback) SetPinned(id uint64, pinned bool) error {
	fb, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	fb.IsPinned = pinned
	return nil
}

func (f *fakeFeedback) SetFlagged(id uint64, flagged bool) error {
	fb, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	fb.IsFlagged = flagged
	return nil
}

type fakeUsers struct {
	byID    map[uint64]*model.User
	nextID  uint64
	updated map[uint64]string // id -> 最近一次落库的密码hash
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uint64]*model.User{}, nextID: 1, updated: map[uint64]string{}}
}

func (f *fakeUsers) Create(user *model.User) error {
	user.ID = f.nextID
	f.byID[user.ID] = user
	f.nextID++
	return nil
}

func (f *fakeUsers) FindByID(id uint64) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUsers) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) UpdatePassword(user *model.User, newPassword string) error {
	user.Password = newPassword
	f.updated[user.ID] = newPassword
	return nil
}

type fakeSessions struct {
	tokens map[uint64]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: map[uint64]string{}}
}

func (f *fakeSessions) AddUserToken(userID uint64, token string) error {
	f.tokens[userID] = token
	return nil
}

func (f *fakeSessions) DeleteUserToken(userID uint64) error {
	delete(f.tokens, userID)
	return nil
}

type retryCall struct {
	id     uint64
	failed bool
}

type fakeOutbox struct {
	pending []model.NotificationOutbox
	sent    []uint64
	retried []retryCall
}

func (f *fakeOutbox) ListPending(_ context.Context, limit int) ([]model.NotificationOutbox, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutbox) MarkSent(_ context.Context, id uint64) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutbox) MarkRetry(_ context.Context, id uint64, failed bool) error {
	f.retried = append(f.retried, retryCall{id: id, failed: failed})
	return nil
}
