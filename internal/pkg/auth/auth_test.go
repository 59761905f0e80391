package auth

import (
	"testing"
	"time"

	"github.com/yigit/mentorhub/internal/app/models"
)

func testJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "mentorhub.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testJWTService()
	user := &models.User{
		ID:    42,
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  models.RoleMentor,
	}

	accessToken, refreshToken, expiresIn, _, err := service.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int(time.Hour.Seconds()))
	}

	claims, err := service.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims.UserID = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.RoleType != string(models.RoleMentor) {
		t.Errorf("claims.RoleType = %q, want %q", claims.RoleType, models.RoleMentor)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@example.com", Role: models.RoleMentee}
	accessToken, _, _, _, err := testJWTService().GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "mentorhub.test",
	})
	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	service := NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  -time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "mentorhub.test",
	})
	user := &models.User{ID: 1, Email: "a@example.com", Role: models.RoleMentee}

	accessToken, _, _, _, err := service.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := service.ValidateToken(accessToken); err != ErrExpiredToken {
		t.Fatalf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword() = false for the right password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword() = true for the wrong password")
	}
}
