package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

type authRepoStub struct {
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
}

func (s *authRepoStub) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmail == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByEmail(ctx, email)
}

type tokenRevokerStub struct {
	revoked map[string]time.Duration
}

func (s *tokenRevokerStub) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = map[string]time.Duration{}
	}
	s.revoked[tokenID] = ttl
	return nil
}

func (s *tokenRevokerStub) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return string(hash)
}

func TestLoginSuccess(t *testing.T) {
	const secret = "test-secret"
	repo := &authRepoStub{
		findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:           7,
				Name:         "山田 太郎",
				Email:        email,
				PasswordHash: hashPassword(t, "password123"),
				Role:         domain.RoleSales,
			}, nil
		},
	}
	svc := NewAuthService(repo, &tokenRevokerStub{}, secret, time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "yamada@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("expected user 7, got %d", user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != "7" {
		t.Fatalf("expected sub 7, got %v", claims["sub"])
	}
	if claims["role"] != domain.RoleSales {
		t.Fatalf("expected role sales, got %v", claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatal("expected a token id claim")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("expected expiry claim: %v", err)
	}
	if time.Until(exp.Time) > time.Hour+time.Minute {
		t.Fatalf("expiry too far in the future: %v", exp.Time)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&authRepoStub{}, &tokenRevokerStub{}, "s", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &authRepoStub{
		findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 7, Email: email, PasswordHash: hashPassword(t, "correct")}, nil
		},
	}
	svc := NewAuthService(repo, &tokenRevokerStub{}, "s", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "yamada@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginEmptyCredentials(t *testing.T) {
	repo := &authRepoStub{
		findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
			t.Fatal("repository must not be queried for empty credentials")
			return nil, nil
		},
	}
	svc := NewAuthService(repo, &tokenRevokerStub{}, "s", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "yamada@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutRevokesUntilExpiry(t *testing.T) {
	revoker := &tokenRevokerStub{}
	svc := NewAuthService(&authRepoStub{}, revoker, "s", time.Hour, zerolog.Nop())

	if err := svc.Logout(context.Background(), "tok-1", time.Now().Add(30*time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ttl, ok := revoker.revoked["tok-1"]
	if !ok {
		t.Fatal("expected token to be revoked")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Fatalf("unexpected revocation ttl: %v", ttl)
	}
}

func TestLogoutExpiredTokenSkipsRevocation(t *testing.T) {
	revoker := &tokenRevokerStub{}
	svc := NewAuthService(&authRepoStub{}, revoker, "s", time.Hour, zerolog.Nop())

	if err := svc.Logout(context.Background(), "tok-1", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatal("an expired token needs no denylist entry")
	}
}
