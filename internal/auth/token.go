package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager validates JWT bearer tokens issued by the upstream helpdesk
// API. This service never authenticates users itself; it only verifies the
// shared-secret signature and reads the identity claims.
type TokenManager struct {
	secret []byte
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Claims describes the upstream token payload.
type Claims struct {
	EmpNo string `json:"emp_no"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.EmpNo == "" {
		claims.EmpNo = claims.Subject
	}
	if claims.EmpNo == "" {
		return nil, errors.New("token carries no subject")
	}
	return claims, nil
}

// SignToken mints a token with this manager's secret. Used by test fixtures
// to stand in for the upstream issuer.
func (tm *TokenManager) SignToken(empNo, name, role string, ttl time.Duration) (string, error) {
	claims := &Claims{
		EmpNo: empNo,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   empNo,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}
