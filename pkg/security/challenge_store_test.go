package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeCreate(t *testing.T) {
	store := NewChallengeStore()

	ch, err := store.Create("user1", "a@example.com", "Alice", []string{"job_seeker"})
	require.NoError(t, err)

	assert.NotEmpty(t, ch.ID)
	assert.Len(t, ch.Code, 6)
	assert.Equal(t, "user1", ch.UserID)
	assert.Equal(t, "a@example.com", ch.Email)
	assert.Equal(t, []string{"job_seeker"}, ch.Roles)
	assert.WithinDuration(t, time.Now().Add(ChallengeTTL), ch.ExpiresAt, time.Second)

	for _, c := range ch.Code {
		assert.True(t, c >= '0' && c <= '9', "code must be numeric")
	}
}

func TestChallengeIDsAreUnique(t *testing.T) {
	store := NewChallengeStore()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ch, err := store.Create("user1", "a@example.com", "Alice", nil)
		require.NoError(t, err)
		assert.False(t, seen[ch.ID])
		seen[ch.ID] = true
	}
}

func TestConsumeHappyPath(t *testing.T) {
	store := NewChallengeStore()
	ch, err := store.Create("user1", "a@example.com", "Alice", []string{"job_seeker"})
	require.NoError(t, err)

	got, err := store.Consume(ch.ID, ch.Code)
	require.NoError(t, err)
	assert.Equal(t, "user1", got.UserID)

	// Consumed: a second redemption must fail
	_, err = store.Consume(ch.ID, ch.Code)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestConsumeUnknownID(t *testing.T) {
	store := NewChallengeStore()
	_, err := store.Consume("no-such-id", "123456")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestConsumeWrongCodeKeepsChallenge(t *testing.T) {
	store := NewChallengeStore()
	ch, err := store.Create("user1", "a@example.com", "Alice", nil)
	require.NoError(t, err)

	wrong := "000000"
	if ch.Code == wrong {
		wrong = "000001"
	}

	// Wrong guesses do not burn the challenge
	_, err = store.Consume(ch.ID, wrong)
	assert.ErrorIs(t, err, ErrCodeMismatch)
	_, err = store.Consume(ch.ID, wrong)
	assert.ErrorIs(t, err, ErrCodeMismatch)

	// The right code still works afterwards
	got, err := store.Consume(ch.ID, ch.Code)
	require.NoError(t, err)
	assert.Equal(t, ch.ID, got.ID)
}

func TestConsumeExpired(t *testing.T) {
	now := time.Now()
	store := NewChallengeStoreWithClock(func() time.Time { return now })

	ch, err := store.Create("user1", "a@example.com", "Alice", nil)
	require.NoError(t, err)

	// Just inside the window: wrong code, challenge survives
	now = now.Add(ChallengeTTL - time.Second)
	_, err = store.Consume(ch.ID, "zzzzzz")
	assert.ErrorIs(t, err, ErrCodeMismatch)

	// Past expiry: even the right code is rejected and the entry is dropped
	now = now.Add(2 * time.Second)
	_, err = store.Consume(ch.ID, ch.Code)
	assert.ErrorIs(t, err, ErrChallengeExpired)

	// Dropped at expiry, so now it reads as unknown
	_, err = store.Consume(ch.ID, ch.Code)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestConcurrentChallengesSameUser(t *testing.T) {
	store := NewChallengeStore()

	ch1, err := store.Create("user1", "a@example.com", "Alice", nil)
	require.NoError(t, err)
	ch2, err := store.Create("user1", "a@example.com", "Alice", nil)
	require.NoError(t, err)

	assert.NotEqual(t, ch1.ID, ch2.ID)

	// Redeeming one challenge leaves the other live
	_, err = store.Consume(ch1.ID, ch1.Code)
	require.NoError(t, err)
	_, err = store.Consume(ch2.ID, ch2.Code)
	require.NoError(t, err)
}

func TestChallengeSnapshotsRoles(t *testing.T) {
	store := NewChallengeStore()

	roles := []string{"employer"}
	ch, err := store.Create("user1", "a@example.com", "Alice", roles)
	require.NoError(t, err)

	// Mutating the caller's slice must not affect the snapshot
	roles[0] = "admin"
	assert.Equal(t, []string{"employer"}, ch.Roles)
}
