package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/onegreenvn/autocontent-backend/internal/models"
)

func newTestService(secret string, ttl time.Duration) *AuthService {
	return &AuthService{jwtSecret: []byte(secret), accessTokenTTL: ttl}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService("test-secret", 15*time.Minute)
	user := &models.User{ID: "user-1", Email: "demo@example.com", TokenVersion: 3}

	token, err := s.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token %q is not a JWT", token)
	}

	claims, err := s.parseClaims(token)
	if err != nil {
		t.Fatalf("parseClaims: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "demo@example.com" || claims.TokenVersion != 3 {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != tokenIssuer || claims.Subject != "user-1" {
		t.Errorf("issuer/subject = %q/%q", claims.Issuer, claims.Subject)
	}
}

func TestParseClaimsRejects(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "demo@example.com"}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, err := newTestService("other-secret", time.Minute).generateAccessToken(user)
				if err != nil {
					t.Fatal(err)
				}
				return tok
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				tok, err := newTestService("test-secret", -time.Minute).generateAccessToken(user)
				if err != nil {
					t.Fatal(err)
				}
				return tok
			},
		},
		{
			name: "none algorithm",
			token: func(t *testing.T) string {
				claims := &models.JWTClaims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}}
				tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				if err != nil {
					t.Fatal(err)
				}
				return tok
			},
		},
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not-a-token" },
		},
	}

	s := newTestService("test-secret", time.Minute)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.parseClaims(tt.token(t)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
