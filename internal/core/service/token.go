package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskgate/clickup-gateway/internal/core/domain"
)

// TokenService issues and verifies the signed bearer tokens used for
// inbound authentication. Tokens are stateless: verification checks the
// signature and expiry only, there is no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the user's id, email and role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string. Malformed tokens, bad
// signatures and expired tokens all collapse into domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{UserID: int64(sub), Email: email, Role: role}, nil
}
