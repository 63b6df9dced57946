package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chobyoungjae/interface/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(password string) (AuthService, *session.Manager) {
	bom := &stubBOMRepo{password: password}
	attempts := session.NewMemoryAttemptStore(5, 15*time.Minute)
	sessions := session.NewManager("test-secret", time.Hour)
	return NewAuthService(bom, attempts, sessions), sessions
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, sessions := newAuthFixture("bom2024!")

	token, err := svc.Login(context.Background(), "bom2024!", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, sessions.Validate(token))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture("bom2024!")

	_, err := svc.Login(context.Background(), "nope", "10.0.0.1")
	assert.ErrorIs(t, err, ErrBadCredential)
}

func TestAuthService_Login_LocksOutAfterFiveFailures(t *testing.T) {
	svc, _ := newAuthFixture("bom2024!")
	ctx := context.Background()

	for range 5 {
		_, err := svc.Login(ctx, "nope", "10.0.0.1")
		assert.ErrorIs(t, err, ErrBadCredential)
	}

	// Sixth attempt is rejected before the password is even checked.
	_, err := svc.Login(ctx, "bom2024!", "10.0.0.1")
	var rle *RateLimitedError
	require.ErrorAs(t, err, &rle)
	assert.Greater(t, rle.RetryAfter, time.Duration(0))

	// Another IP is unaffected.
	_, err = svc.Login(ctx, "bom2024!", "10.0.0.2")
	assert.NoError(t, err)
}

func TestAuthService_Login_SuccessResetsFailures(t *testing.T) {
	svc, _ := newAuthFixture("bom2024!")
	ctx := context.Background()

	for range 4 {
		_, _ = svc.Login(ctx, "nope", "10.0.0.1")
	}
	_, err := svc.Login(ctx, "bom2024!", "10.0.0.1")
	require.NoError(t, err)

	// The counter restarted: four more failures still stay under the limit.
	for range 4 {
		_, err = svc.Login(ctx, "nope", "10.0.0.1")
		assert.ErrorIs(t, err, ErrBadCredential)
	}
}

func TestAuthService_ValidateSession(t *testing.T) {
	svc, _ := newAuthFixture("bom2024!")

	token, err := svc.Login(context.Background(), "bom2024!", "10.0.0.1")
	require.NoError(t, err)

	assert.True(t, svc.ValidateSession(token))
	assert.False(t, svc.ValidateSession(token+"tampered"))
	assert.False(t, svc.ValidateSession(""))
}

func TestAuthService_Login_BrokenAttemptStoreDoesNotLockOut(t *testing.T) {
	bom := &stubBOMRepo{password: "bom2024!"}
	sessions := session.NewManager("test-secret", time.Hour)
	svc := NewAuthService(bom, failingAttemptStore{}, sessions)

	_, err := svc.Login(context.Background(), "bom2024!", "10.0.0.1")
	assert.NoError(t, err)
}

type failingAttemptStore struct{}

func (failingAttemptStore) Blocked(context.Context, string) (bool, time.Duration, error) {
	return false, 0, errors.New("store down")
}
func (failingAttemptStore) RecordFailure(context.Context, string) error { return errors.New("store down") }
func (failingAttemptStore) Reset(context.Context, string) error         { return errors.New("store down") }
