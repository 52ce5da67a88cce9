// Package auth implements token issuance and verification for the HTTP API.
// Tokens are HS256-signed JWTs carrying the user id as subject plus the email,
// valid for a fixed window; there is no refresh or server-side revocation.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/todoapp/task-api/internal/core/domain"
)

// ErrInvalidToken is returned for any token that fails signature, expiry, or
// payload checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload. Subject (sub) holds the user id in decimal form.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// TokenManager issues and verifies bearer tokens against a shared secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager. A non-positive ttl falls back to one hour.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user with the configured expiry.
func (tm *TokenManager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify parses and validates a token string. Expired or tampered tokens, and
// tokens whose payload lacks the subject or email, fail with ErrInvalidToken.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tm.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
