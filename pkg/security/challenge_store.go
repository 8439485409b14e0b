package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Challenge lifetime. A challenge is consumed on first successful
// verification or discarded at expiry, whichever comes first.
const ChallengeTTL = 5 * time.Minute

// Challenge store errors. The handler maps these to client-facing messages.
var (
	ErrChallengeNotFound = errors.New("invalid or expired challenge")
	ErrChallengeExpired  = errors.New("challenge expired")
	ErrCodeMismatch      = errors.New("invalid verification code")
)

// Challenge is a pending two-factor login. It snapshots the authenticating
// user so verification does not need to re-query the store.
type Challenge struct {
	ID        string
	UserID    string
	Email     string
	Name      string
	Roles     []string
	Code      string
	ExpiresAt time.Time
}

// ChallengeStore holds pending two-factor logins in process memory.
// Entries abandoned by the user are left to expire rather than swept;
// the leak is bounded by login volume and process lifetime.
type ChallengeStore struct {
	mu      sync.Mutex
	pending map[string]*Challenge
	now     func() time.Time
}

func NewChallengeStore() *ChallengeStore {
	return &ChallengeStore{
		pending: make(map[string]*Challenge),
		now:     time.Now,
	}
}

// NewChallengeStoreWithClock allows tests to control time.
func NewChallengeStoreWithClock(now func() time.Time) *ChallengeStore {
	return &ChallengeStore{
		pending: make(map[string]*Challenge),
		now:     now,
	}
}

// Create registers a new challenge for the given identity snapshot and
// returns it. Identifiers are random UUIDs and never reused. Two live
// challenges for the same user do not invalidate each other.
func (s *ChallengeStore) Create(userID, email, name string, roles []string) (*Challenge, error) {
	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	rolesCopy := make([]string, len(roles))
	copy(rolesCopy, roles)

	ch := &Challenge{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Name:      name,
		Roles:     rolesCopy,
		Code:      code,
		ExpiresAt: s.now().Add(ChallengeTTL),
	}

	s.mu.Lock()
	s.pending[ch.ID] = ch
	s.mu.Unlock()

	return ch, nil
}

// Consume verifies the code for the given challenge. The lock is held
// across lookup and delete so a challenge can be consumed at most once.
//
//   - unknown id        → ErrChallengeNotFound
//   - past expiry       → entry deleted, ErrChallengeExpired
//   - wrong code        → entry kept, ErrCodeMismatch (retry within window)
//   - matching code     → entry deleted, snapshot returned
//
// Expiry deletes but a wrong code does not: guesses are allowed inside the
// window, with a hard cutoff at expiry.
func (s *ChallengeStore) Consume(id, code string) (*Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.pending[id]
	if !ok {
		return nil, ErrChallengeNotFound
	}
	if s.now().After(ch.ExpiresAt) {
		delete(s.pending, id)
		return nil, ErrChallengeExpired
	}
	if ch.Code != code {
		return nil, ErrCodeMismatch
	}

	delete(s.pending, id)
	return ch, nil
}

// generateCode produces a random 6-digit numeric string, zero-padded.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	digits := n.Int64()
	code := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		code[i] = byte('0' + digits%10)
		digits /= 10
	}
	return string(code), nil
}
