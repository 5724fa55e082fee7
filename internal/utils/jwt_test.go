package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-company-directory/models"
)

var testUser = models.User{ID: 123, Username: "alice", Role: models.RoleEditor}

func signClaims(t *testing.T, method jwt.SigningMethod, claims models.TokenClaims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, &claims).SignedString(key)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testUser, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Issuer)
	}
	if token.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Subject)
	}
	if token.Role != models.RoleEditor {
		t.Errorf("expected role editor, got %s", token.Role)
	}
	if token.UserID != 123 {
		t.Errorf("expected user id 123, got %d", token.UserID)
	}
	if token.String() != token.SignedString {
		t.Error("String() must return the signed token")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Minute, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", testUser, 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatal(err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != testUser.ID {
		t.Errorf("expected userID %d, got %d", testUser.ID, parsedToken.UserID)
	}
	if parsedToken.Role != models.RoleEditor {
		t.Errorf("expected role editor, got %s", parsedToken.Role)
	}
	id, err := parsedToken.GetUserID()
	if err != nil || id != testUser.ID {
		t.Errorf("GetUserID() = %d, %v", id, err)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("test-issuer", testUser, time.Hour, "correct-key")
	if err != nil {
		t.Fatal(err)
	}

	past := time.Now().Add(-time.Hour)
	expired := signClaims(t, jwt.SigningMethodHS256, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}, []byte("correct-key"))

	noExpiry := signClaims(t, jwt.SigningMethodHS256, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "test-issuer", Subject: "1"},
	}, []byte("correct-key"))

	noSubject := signClaims(t, jwt.SigningMethodHS256, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, []byte("correct-key"))

	otherAlg := signClaims(t, jwt.SigningMethodHS512, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, []byte("correct-key"))

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		wantErr error
	}{
		{"wrong key", valid.SignedString, "wrong-key", "test-issuer", jwt.ErrTokenSignatureInvalid},
		{"wrong issuer", valid.SignedString, "correct-key", "fake-issuer", jwt.ErrTokenInvalidIssuer},
		{"expired", expired, "correct-key", "test-issuer", jwt.ErrTokenExpired},
		{"missing exp", noExpiry, "correct-key", "test-issuer", jwt.ErrTokenRequiredClaimMissing},
		{"missing sub", noSubject, "correct-key", "test-issuer", nil},
		{"HS512 not accepted", otherAlg, "correct-key", "test-issuer", jwt.ErrTokenSignatureInvalid},
		{"malformed", "not.a.token", "correct-key", "test-issuer", jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"lower-case scheme", "bearer abc", "abc", nil},
		{"surrounding spaces", "  Bearer abc  ", "abc", nil},
		{"empty", "", "", ErrInvalidAuthorizationHeader},
		{"scheme only", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"scheme and spaces", "Bearer    ", "", ErrInvalidAuthorizationHeader},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", ErrInvalidAuthorizationHeader},
		{"no scheme", "abc.def.ghi", "", ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}

func TestParseClaimsUnverified(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testUser, time.Hour, "secret-key")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseClaimsUnverified(token.SignedString)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.Subject != "123" || claims.Role != models.RoleEditor {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		t.Error("expected a future expiry")
	}

	if _, err = ParseClaimsUnverified("garbage"); err == nil {
		t.Error("expected error for garbage token")
	}
}
