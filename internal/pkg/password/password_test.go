package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret-pass")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "" || hash == "secret-pass" {
		t.Fatal("expected non-empty bcrypt hash")
	}
	if !Verify("secret-pass", hash) {
		t.Error("Verify should succeed for correct password")
	}
	if Verify("wrong-pass", hash) {
		t.Error("Verify should fail for wrong password")
	}
}

func TestHashToken(t *testing.T) {
	a := HashToken("refresh-token")
	b := HashToken("refresh-token")
	if a != b {
		t.Error("HashToken should be deterministic")
	}
	if a == "refresh-token" {
		t.Error("HashToken must not return the raw token")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("short") {
		t.Error("passwords under 8 chars should be rejected")
	}
	if !ValidatePassword("longenough") {
		t.Error("8+ char password should be accepted")
	}
}
