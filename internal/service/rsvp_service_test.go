package service

import (
	"context"
	"testing"
	"time"

	"EventPulse/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(id uint64, deadline time.Time) *model.Event {
	return &model.Event{
		ID:           id,
		Title:        "Go Meetup",
		DateTime:     deadline.Add(24 * time.Hour),
		Timezone:     "UTC",
		Location:     "Room 1",
		RSVPDeadline: deadline,
		Status:       model.EventScheduled,
		HostID:       100,
	}
}

func newRSVPFixture(deadline time.Time) (*RSVPService, *fakeRSVPs, *fakeCache) {
	rsvps := newFakeRSVPs()
	cache := &fakeCache{}
	users := newFakeUsers()
	_ = users.Create(&model.User{Email: "alice@example.com", Role: model.RoleUser})
	svc := &RSVPService{
		repo:      rsvps,
		eventRepo: &fakeEvents{events: map[uint64]*model.Event{1: testEvent(1, deadline)}},
		userRepo:  users,
		cache:     cache,
	}
	return svc, rsvps, cache
}

// 重复提交是更新，不是再插一行
func TestSubmitAgainUpdatesExistingRow(t *testing.T) {
	svc, rsvps, cache := newRSVPFixture(time.Now().Add(time.Hour))

	first, err := svc.Submit(context.Background(), 1, 1, model.RSVPConfirmed)
	require.NoError(t, err)

	second, err := svc.Submit(context.Background(), 1, 1, model.RSVPWaitlist)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, model.RSVPWaitlist, second.Status)
	assert.Equal(t, 1, rsvps.creates)
	assert.Equal(t, 1, rsvps.updates)
	assert.Len(t, rsvps.rows, 1)
	// 两条路径都要清快照缓存
	assert.Equal(t, []uint64{1, 1}, cache.deleted)
}

func TestSubmitAfterDeadline(t *testing.T) {
	svc, rsvps, _ := newRSVPFixture(time.Now().Add(-time.Minute))

	_, err := svc.Submit(context.Background(), 1, 1, model.RSVPConfirmed)
	assert.ErrorIs(t, err, ErrDeadlinePassed)
	assert.Equal(t, 0, rsvps.creates)
}

func TestSubmitUnknownEvent(t *testing.T) {
	svc, _, _ := newRSVPFixture(time.Now().Add(time.Hour))

	_, err := svc.Submit(context.Background(), 99, 1, model.RSVPConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAtCapacityWaitlists(t *testing.T) {
	svc, rsvps, _ := newRSVPFixture(time.Now().Add(time.Hour))
	rsvps.atCapacity = true

	rsvp, err := svc.Submit(context.Background(), 1, 1, model.RSVPConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.RSVPWaitlist, rsvp.Status)
}

func TestCancelAfterDeadline(t *testing.T) {
	svc, rsvps, _ := newRSVPFixture(time.Now().Add(-time.Minute))
	rsvps.add(1, 1, model.RSVPConfirmed)

	err := svc.Cancel(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrDeadlinePassed)
	// 截止后行保持原样
	assert.Len(t, rsvps.rows, 1)
}

func TestCancelWithoutRSVP(t *testing.T) {
	svc, _, _ := newRSVPFixture(time.Now().Add(time.Hour))

	err := svc.Cancel(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelInvalidatesCache(t *testing.T) {
	svc, rsvps, cache := newRSVPFixture(time.Now().Add(time.Hour))
	rsvps.add(1, 1, model.RSVPConfirmed)

	require.NoError(t, svc.Cancel(context.Background(), 1, 1))
	assert.Empty(t, rsvps.rows)
	assert.Equal(t, []uint64{1}, cache.deleted)
}

func TestListScopedByRole(t *testing.T) {
	svc, rsvps, _ := newRSVPFixture(time.Now().Add(time.Hour))
	rsvps.add(1, 1, model.RSVPConfirmed)
	rsvps.add(1, 2, model.RSVPWaitlist)

	mine, err := svc.List(1, 1, model.RoleUser)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.List(1, 100, model.RoleHost)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
