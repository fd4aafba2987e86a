package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)

// ErrInvalidToken covers every way a token can fail verification: bad
// signature, expiry, malformed claims, or revocation. Callers never learn
// which.
var ErrInvalidToken = errors.New("invalid or expired token")

// Denylist records revoked token IDs until their natural expiry.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenIdentity is the authenticated subject and role embedded in a token.
type TokenIdentity struct {
	Subject   string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

type TokenService struct {
	secret   []byte
	ttl      time.Duration
	denylist Denylist
}

// NewTokenService builds the issuer/verifier. denylist may be nil, in which
// case revocation is a no-op.
func NewTokenService(secret string, ttl time.Duration, denylist Denylist) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, denylist: denylist}
}

// Issue signs a token carrying the subject and role.
func (s *TokenService) Issue(subject, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token and returns the embedded identity. Any signature,
// expiry, claim or denylist failure reports ErrInvalidToken; verification
// never panics or propagates an underlying fault.
func (s *TokenService) Verify(ctx context.Context, raw string) (*TokenIdentity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id := &TokenIdentity{}
	if sub, ok := claims["sub"].(string); ok {
		id.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		id.Role = role
	}
	if jti, ok := claims["jti"].(string); ok {
		id.TokenID = jti
	}
	if exp, ok := claims["exp"].(float64); ok {
		id.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if id.Subject == "" {
		return nil, ErrInvalidToken
	}

	if s.denylist != nil && id.TokenID != "" {
		revoked, err := s.denylist.IsRevoked(ctx, id.TokenID)
		if err != nil || revoked {
			return nil, ErrInvalidToken
		}
	}
	return id, nil
}

func (s *TokenService) Validate(ctx context.Context, raw string) bool {
	_, err := s.Verify(ctx, raw)
	return err == nil
}

// ValidateForRole accepts the token only when it is valid and its embedded
// role matches requiredRole, compared case-insensitively.
func (s *TokenService) ValidateForRole(ctx context.Context, raw, requiredRole string) bool {
	id, err := s.Verify(ctx, raw)
	if err != nil {
		return false
	}
	return strings.EqualFold(id.Role, requiredRole)
}

// Subject returns the identity string embedded in a valid token.
func (s *TokenService) Subject(ctx context.Context, raw string) (string, error) {
	id, err := s.Verify(ctx, raw)
	if err != nil {
		return "", err
	}
	return id.Subject, nil
}

// Revoke denylists the token until it would have expired anyway.
func (s *TokenService) Revoke(ctx context.Context, raw string) error {
	id, err := s.Verify(ctx, raw)
	if err != nil {
		return err
	}
	if s.denylist == nil || id.TokenID == "" {
		return nil
	}
	ttl := time.Until(id.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.denylist.Revoke(ctx, id.TokenID, ttl)
}
