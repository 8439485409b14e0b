// Package token issues and verifies the signed bearer tokens used across
// the service: session tokens, account-activation tokens, and password-reset
// tokens. Tokens are self-contained HS256 JWTs; validity is determined purely
// by signature and expiry, with no server-side state.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Purpose tags a token with its single allowed use. A token of one purpose
// is never accepted where another is expected.
type Purpose string

const (
	PurposeSession       Purpose = "session"
	PurposeActivation    Purpose = "activation"
	PurposePasswordReset Purpose = "password_reset"
)

// Component defaults, used when the configured expiry string is empty or
// unparseable.
const (
	DefaultSessionTTL       = 15 * time.Minute
	DefaultActivationTTL    = 24 * time.Hour
	DefaultPasswordResetTTL = 1 * time.Hour
)

// ErrInvalidToken covers signature mismatch, malformed payload, wrong
// purpose, and expiry. Undifferentiated so callers cannot leak which
// failure mode occurred.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by every token.
type Claims struct {
	jwt.RegisteredClaims
	Email   string   `json:"email,omitempty"`
	Name    string   `json:"name,omitempty"`
	Roles   []string `json:"roles,omitempty"`
	Purpose Purpose  `json:"typ"`
}

// Issuer signs and verifies tokens with a shared secret.
type Issuer struct {
	secret        []byte
	sessionTTL    time.Duration
	activationTTL time.Duration
	resetTTL      time.Duration
}

// Config holds the raw expiry strings from the environment. Each accepts a
// bare integer (seconds) or a Go duration string; anything else falls back
// to the component default.
type Config struct {
	Secret           string
	SessionTTL       string
	ActivationTTL    string
	PasswordResetTTL string
}

func NewIssuer(cfg Config) *Issuer {
	return &Issuer{
		secret:        []byte(cfg.Secret),
		sessionTTL:    ParseExpiry(cfg.SessionTTL, DefaultSessionTTL),
		activationTTL: ParseExpiry(cfg.ActivationTTL, DefaultActivationTTL),
		resetTTL:      ParseExpiry(cfg.PasswordResetTTL, DefaultPasswordResetTTL),
	}
}

// ParseExpiry parses an expiry string as bare seconds ("900") or a duration
// ("15m"). Unrecognized or non-positive values fall back to def.
func ParseExpiry(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return def
		}
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return def
}

// TTL returns the configured lifetime for the given purpose.
func (i *Issuer) TTL(purpose Purpose) time.Duration {
	switch purpose {
	case PurposeActivation:
		return i.activationTTL
	case PurposePasswordReset:
		return i.resetTTL
	default:
		return i.sessionTTL
	}
}

// Issue signs a token for the given subject and purpose.
func (i *Issuer) Issue(purpose Purpose, userID, email, name string, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.TTL(purpose))),
		},
		Email:   email,
		Name:    name,
		Roles:   roles,
		Purpose: purpose,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses the token and checks signature, expiry, and purpose.
// Every failure mode returns ErrInvalidToken.
func (i *Issuer) Verify(tokenString string, purpose Purpose) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
