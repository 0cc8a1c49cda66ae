package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"campustrack_backend/internals/configs"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	userID := uuid.New()
	raw, err := CreateAccessToken(userID, "teacher@example.com", false, false, time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	claims, err := ParseAccessToken(raw)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("user_id = %s, want %s", claims.UserID, userID)
	}
	if claims.Subject != "teacher@example.com" {
		t.Errorf("sub = %s, want teacher@example.com", claims.Subject)
	}
	if claims.IsAdmin || claims.IsStudent {
		t.Error("role flags should be false")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	raw, err := CreateAccessToken(uuid.New(), "student@example.com", false, true, -time.Minute)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	if _, err := ParseAccessToken(raw); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	if _, err := ParseAccessToken("not.a.jwt"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
