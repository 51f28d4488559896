package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"
)

func newTestService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicDER,
	})

	service, err := NewAuthService(privatePEM, publicPEM, ttl)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return service
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService(t, time.Hour)

	token, err := service.GenerateAccessToken(7)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", claims.UserID)
	}
	if claims.TokenType != "access" {
		t.Fatalf("expected access token, got %q", claims.TokenType)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti")
	}
}

func TestValidateToken_RejectsTampering(t *testing.T) {
	service := newTestService(t, time.Hour)

	token, err := service.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := service.ValidateToken(tampered); err == nil {
		t.Fatalf("expected tampered token rejected")
	}
}

func TestValidateToken_RejectsForeignKey(t *testing.T) {
	issuer := newTestService(t, time.Hour)
	verifier := newTestService(t, time.Hour)

	token, err := issuer.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatalf("expected token signed with another key rejected")
	}
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	service := newTestService(t, -time.Minute)

	token, err := service.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := service.ValidateToken(token); err == nil {
		t.Fatalf("expected expired token rejected")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Fatalf("expected matching password accepted")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("expected wrong password rejected")
	}
}
