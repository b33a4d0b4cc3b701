package service

import (
	"testing"
	"time"
)

func newTestAuthService() *AuthService {
	return NewAuthService(nil, "test-secret", time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.issueToken(42)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	userID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestAuthService()
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc.now = fixedClock(issued)
	token, err := svc.issueToken(7)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	svc.now = fixedClock(issued.Add(2 * time.Hour))
	if _, err := svc.VerifyToken(token); err != ErrInvalidToken {
		t.Errorf("VerifyToken after expiry = %v, want ErrInvalidToken", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.issueToken(7)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	other := NewAuthService(nil, "different-secret", time.Hour)
	if _, err := other.VerifyToken(token); err != ErrInvalidToken {
		t.Errorf("VerifyToken with wrong secret = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.VerifyToken(token + "x"); err != ErrInvalidToken {
		t.Errorf("VerifyToken with mangled signature = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.VerifyToken("not-a-token"); err != ErrInvalidToken {
		t.Errorf("VerifyToken with garbage = %v, want ErrInvalidToken", err)
	}
}
