package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture() (*UserService, *fakeUsers, *fakeSessions) {
	users := newFakeUsers()
	sessions := newFakeSessions()
	return &UserService{repo: users, sessions: sessions}, users, sessions
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.Register("Alice", "alice@example.com", "secret-pass")
	require.NoError(t, err)

	_, err = svc.Register("Alice Again", "alice@example.com", "secret-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _ := newUserFixture()
	_, err := svc.Register("Alice", "alice@example.com", "secret-pass")
	require.NoError(t, err)

	_, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Login("nobody@example.com", "secret-pass")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginEvictsOldSession(t *testing.T) {
	svc, _, sessions := newUserFixture()
	user, err := svc.Register("Alice", "alice@example.com", "secret-pass")
	require.NoError(t, err)

	_, err = svc.Login("alice@example.com", "secret-pass")
	require.NoError(t, err)
	second, err := svc.Login("alice@example.com", "secret-pass")
	require.NoError(t, err)

	assert.Equal(t, second.AccessToken, sessions.tokens[user.ID])
}

func TestChangePassword(t *testing.T) {
	svc, users, sessions := newUserFixture()
	user, err := svc.Register("Alice", "alice@example.com", "secret-pass")
	require.NoError(t, err)
	_, err = svc.Login("alice@example.com", "secret-pass")
	require.NoError(t, err)

	err = svc.ChangePassword(user.ID, "wrong-old", "next-pass")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, users.updated)

	require.NoError(t, svc.ChangePassword(user.ID, "secret-pass", "next-pass"))

	// 新密码已落库，旧会话被踢
	hash := users.updated[user.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("next-pass")))
	assert.NotContains(t, sessions.tokens, user.ID)

	_, err = svc.Login("alice@example.com", "next-pass")
	assert.NoError(t, err)
}
