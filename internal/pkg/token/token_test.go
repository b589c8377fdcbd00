package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	tok, err := issuer.Generate(7)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	userID, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if userID != 7 {
		t.Fatalf("userID mismatch: got %d want 7", userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", -1*time.Second)

	tok, err := issuer.Generate(1)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = issuer.Verify(tok)
	if err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer("right-secret", time.Hour).Generate(2)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = NewIssuer("wrong-secret", time.Hour).Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("k", time.Hour).Verify("not.a.jwt")
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = NewIssuer(secret, time.Hour).Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestExtractBearer(t *testing.T) {
	t.Parallel()

	tok, err := ExtractBearer("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearer error: %v", err)
	}
	if tok != "abc.def.ghi" {
		t.Fatalf("unexpected token: %q", tok)
	}

	if _, err := ExtractBearer(""); err == nil {
		t.Fatal("expected error for empty header")
	}
	if _, err := ExtractBearer("Basic abc"); err == nil {
		t.Fatal("expected error for non-bearer header")
	}
}
