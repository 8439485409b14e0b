package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *Issuer {
	return NewIssuer(Config{Secret: "test-secret"})
}

func TestIssueAndVerifySession(t *testing.T) {
	issuer := newTestIssuer()

	tok, err := issuer.Issue(PurposeSession, "user1", "a@example.com", "Alice", []string{"job_seeker"})
	require.NoError(t, err)

	claims, err := issuer.Verify(tok, PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, "user1", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, []string{"job_seeker"}, claims.Roles)
	assert.Equal(t, PurposeSession, claims.Purpose)
}

func TestVerifyRejectsWrongPurpose(t *testing.T) {
	issuer := newTestIssuer()

	activation, err := issuer.Issue(PurposeActivation, "user1", "a@example.com", "Alice", nil)
	require.NoError(t, err)

	// An activation token must never pass as a session or reset token
	_, err = issuer.Verify(activation, PurposeSession)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = issuer.Verify(activation, PurposePasswordReset)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify(activation, PurposeActivation)
	assert.NoError(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestIssuer()
	other := NewIssuer(Config{Secret: "other-secret"})

	tok, err := issuer.Issue(PurposeSession, "user1", "", "", nil)
	require.NoError(t, err)

	_, err = other.Verify(tok, PurposeSession)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := newTestIssuer()
	_, err := issuer.Verify("not-a-token", PurposeSession)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpiry(t *testing.T) {
	def := 15 * time.Minute

	// Bare integers are seconds
	assert.Equal(t, 900*time.Second, ParseExpiry("900", def))
	// Duration strings work too
	assert.Equal(t, 2*time.Hour, ParseExpiry("2h", def))
	// Empty, malformed, and non-positive values fall back silently
	assert.Equal(t, def, ParseExpiry("", def))
	assert.Equal(t, def, ParseExpiry("soon", def))
	assert.Equal(t, def, ParseExpiry("0", def))
	assert.Equal(t, def, ParseExpiry("-30", def))
	assert.Equal(t, def, ParseExpiry("-5m", def))
}

func TestTTLPerPurpose(t *testing.T) {
	issuer := NewIssuer(Config{
		Secret:           "s",
		SessionTTL:       "60",
		ActivationTTL:    "48h",
		PasswordResetTTL: "bogus",
	})

	assert.Equal(t, time.Minute, issuer.TTL(PurposeSession))
	assert.Equal(t, 48*time.Hour, issuer.TTL(PurposeActivation))
	assert.Equal(t, DefaultPasswordResetTTL, issuer.TTL(PurposePasswordReset))
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewIssuer(Config{Secret: "s", SessionTTL: "1"})

	tok, err := issuer.Issue(PurposeSession, "user1", "", "", nil)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	_, err = issuer.Verify(tok, PurposeSession)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
