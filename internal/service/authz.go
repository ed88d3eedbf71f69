package service

import (
	"errors"
	"time"

	"portal/internal/token"

	"go.uber.org/zap"
)

var (
	ErrUnauthenticated = errors.New("no valid session")
	ErrForbidden       = errors.New("session lacks required role")
)

// Gate decides, per request, whether a presented credential grants access.
// All state is derived fresh from the token string; nothing is stored
// between requests.
type Gate struct {
	codec  *token.Codec
	logger *zap.Logger
}

func NewGate(codec *token.Codec, logger *zap.Logger) *Gate {
	return &Gate{codec: codec, logger: logger}
}

// Authorize validates the presented credential and, when requiredRole is
// non-empty, checks role membership. Missing, malformed, badly signed and
// expired credentials are all reported as ErrUnauthenticated; the reason is
// logged internally but never surfaced to the client.
func (g *Gate) Authorize(credential string, now time.Time, requiredRole string) (*token.Claims, error) {
	if credential == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := g.codec.Decode(credential)
	if err != nil {
		g.logger.Info("Rejected session credential", zap.Error(err))
		return nil, ErrUnauthenticated
	}

	if claims.Expired(now) {
		g.logger.Info("Rejected expired session", zap.String("subject", claims.Subject))
		return nil, ErrUnauthenticated
	}

	if requiredRole != "" && !claims.HasRole(requiredRole) {
		return nil, ErrForbidden
	}

	return claims, nil
}
