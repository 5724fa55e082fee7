package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must differ from the password")
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("expected a bcrypt hash, got: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}

	if err = CheckPassword(hash, "s3cret"); err != nil {
		t.Errorf("expected matching password, got: %v", err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same")
	if err != nil {
		t.Fatal(err)
	}
	second, err := HashPassword("same")
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("p", 73))
	if !errors.Is(err, bcrypt.ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got: %v", err)
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("right")
	if err != nil {
		t.Fatal(err)
	}

	if err = CheckPassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-hash", "whatever")
	if err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("malformed hash must not be reported as a mismatch")
	}
}
