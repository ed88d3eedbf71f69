package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("malformed session token")
	ErrBadSignature = errors.New("session token signature invalid")
)

// Claims is the payload of a session token. Subject and Roles are a snapshot
// of the user record at mint time; role changes after minting are not
// reflected until the user logs in again.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Expired reports whether the claims have expired at the given instant. The
// upper bound is exclusive: now == exp counts as expired. Claims without an
// expiry are treated as expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time)
}

// HasRole reports whether the claims carry the given role. The comparison is
// exact and case-sensitive.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Codec encodes and decodes signed session tokens with a process-wide HMAC
// key. The key is injected at construction so tests can use a throwaway one.
type Codec struct {
	key      []byte
	lifetime time.Duration
}

func NewCodec(key []byte, lifetime time.Duration) *Codec {
	return &Codec{key: key, lifetime: lifetime}
}

// Encode mints a signed token for subject with the given role snapshot,
// issued at now and expiring at now + lifetime.
func (cd *Codec) Encode(subject string, roles []string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cd.lifetime)),
		},
		Roles: roles,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cd.key)
}

// Decode verifies the token's signature and parses its claims. Expiry is
// deliberately not checked here; callers that care invoke Claims.Expired, so
// an expired token's claims can still be inspected.
func (cd *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, cd.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		default:
			return nil, ErrBadSignature
		}
	}
	return claims, nil
}

func (cd *Codec) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}
	return cd.key, nil
}
