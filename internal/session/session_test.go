package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue()
	require.NoError(t, err)
	assert.True(t, m.Validate(token))
}

func TestManager_RejectsTamperedToken(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue()
	require.NoError(t, err)

	assert.False(t, m.Validate(token[:len(token)-2]))
	assert.False(t, m.Validate(""))
	assert.False(t, m.Validate("not-a-token"))
}

func TestManager_RejectsForeignSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue()
	require.NoError(t, err)
	assert.False(t, verifier.Validate(token))
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	token, err := m.Issue()
	require.NoError(t, err)
	assert.False(t, m.Validate(token))
}

func TestMemoryAttemptStore_BlocksAtLimit(t *testing.T) {
	s := NewMemoryAttemptStore(3, time.Minute)
	ctx := context.Background()

	for range 2 {
		require.NoError(t, s.RecordFailure(ctx, "10.0.0.1"))
	}
	blocked, _, err := s.Blocked(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, s.RecordFailure(ctx, "10.0.0.1"))
	blocked, retryAfter, err := s.Blocked(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, blocked)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)
}

func TestMemoryAttemptStore_WindowExpiry(t *testing.T) {
	s := NewMemoryAttemptStore(1, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.RecordFailure(ctx, "10.0.0.1"))
	blocked, _, _ := s.Blocked(ctx, "10.0.0.1")
	assert.True(t, blocked)

	time.Sleep(20 * time.Millisecond)
	blocked, _, _ = s.Blocked(ctx, "10.0.0.1")
	assert.False(t, blocked)

	// A failure after the window starts a fresh count.
	require.NoError(t, s.RecordFailure(ctx, "10.0.0.1"))
	blocked, _, _ = s.Blocked(ctx, "10.0.0.1")
	assert.True(t, blocked)
}

func TestMemoryAttemptStore_ResetClearsIP(t *testing.T) {
	s := NewMemoryAttemptStore(1, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.RecordFailure(ctx, "10.0.0.1"))
	require.NoError(t, s.Reset(ctx, "10.0.0.1"))

	blocked, _, _ := s.Blocked(ctx, "10.0.0.1")
	assert.False(t, blocked)
}

func TestMemoryAttemptStore_IsolatesIPs(t *testing.T) {
	s := NewMemoryAttemptStore(1, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.RecordFailure(ctx, "10.0.0.1"))

	blocked, _, _ := s.Blocked(ctx, "10.0.0.2")
	assert.False(t, blocked)
}
