package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role      Role
		canCreate bool
		canSeeAll bool
		isAdmin   bool
	}{
		{RoleUser, false, false, false},
		{RoleHost, true, true, false},
		{RoleAdmin, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.canCreate, tt.role.CanCreateEvents())
			assert.Equal(t, tt.canSeeAll, tt.role.CanSeeAllRSVPs())
			assert.Equal(t, tt.isAdmin, tt.role.IsAdmin())
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleHost.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("GUEST").Valid())
	assert.False(t, Role("").Valid())
}

func TestEventStatusValid(t *testing.T) {
	assert.True(t, EventScheduled.Valid())
	assert.True(t, EventLive.Valid())
	assert.True(t, EventClosed.Valid())
	assert.False(t, EventStatus("DRAFT").Valid())
}

func TestReactionValid(t *testing.T) {
	for _, r := range Reactions {
		assert.True(t, r.Valid())
	}
	assert.False(t, Reaction("CLAP").Valid())
	assert.False(t, Reaction("").Valid())
}
