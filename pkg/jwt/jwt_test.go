package jwt

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "owner@example.com", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "owner@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if !claims.IsSuperuser {
		t.Error("superuser flag lost in round trip")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}

	token, _ := GenerateToken(1, "a@b.c", false)
	if _, err := ValidateToken(token + "tampered"); err == nil {
		t.Error("expected error for tampered token")
	}
}
