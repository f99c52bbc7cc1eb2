package identity

import (
	"github.com/kith-app/kith/internal/platform/middleware"
)

// MiddlewareAdapter adapts TokenService to the transport middleware's
// validator interface so the middleware package stays decoupled from this one.
type MiddlewareAdapter struct {
	tokens *TokenService
}

func NewMiddlewareAdapter(tokens *TokenService) *MiddlewareAdapter {
	return &MiddlewareAdapter{tokens: tokens}
}

func (a *MiddlewareAdapter) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := a.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		JTI:       claims.ID,
	}, nil
}
