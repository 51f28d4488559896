package api

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"testing"
	"time"

	"phPortfolio/internal/auth"
	"phPortfolio/internal/database"
)

func newTestAuthService(t *testing.T) *auth.AuthService {
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
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	service, err := auth.NewAuthService(privatePEM, publicPEM, time.Hour)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return service
}

func TestLogin_Succeeds(t *testing.T) {
	db := newTestDB(t)
	hashed, err := auth.HashPassword("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(&database.AdminUser{Username: "owner", PasswordHash: hashed}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	service := newTestAuthService(t)
	h := NewAuthHandler(db, service, nil, nil, 10)

	c, w := newJSONContext(t, http.MethodPost, "/api/login", map[string]any{
		"username": "owner",
		"password": "s3cret-passw0rd",
	})
	h.Login(c)
	requireStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("expected access token, body=%s", w.Body.String())
	}
	if body["token_type"] != "Bearer" {
		t.Fatalf("expected Bearer token type, got %v", body["token_type"])
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.TokenType != "access" {
		t.Fatalf("expected access token, got %q", claims.TokenType)
	}
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
	db := newTestDB(t)
	hashed, err := auth.HashPassword("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(&database.AdminUser{Username: "owner", PasswordHash: hashed}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	h := NewAuthHandler(db, newTestAuthService(t), nil, nil, 10)

	c, w := newJSONContext(t, http.MethodPost, "/api/login", map[string]any{
		"username": "owner",
		"password": "wrong",
	})
	h.Login(c)
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestLogin_RejectsUnknownUsername(t *testing.T) {
	db := newTestDB(t)
	h := NewAuthHandler(db, newTestAuthService(t), nil, nil, 10)

	c, w := newJSONContext(t, http.MethodPost, "/api/login", map[string]any{
		"username": "nobody",
		"password": "whatever",
	})
	h.Login(c)
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestLogout_RequiresTokenClaims(t *testing.T) {
	db := newTestDB(t)
	h := NewAuthHandler(db, newTestAuthService(t), nil, nil, 10)

	c, w := newJSONContext(t, http.MethodPost, "/api/logout", nil)
	h.Logout(c)
	requireStatus(t, w, http.StatusUnauthorized)
}
