package auth

import "testing"

func TestPasswordHashingLifecycle(t *testing.T) {
	password := "S3curePass!"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if hash == "" {
		t.Fatal("expected hash to be populated")
	}

	if err := VerifyPassword(hash, password); err != nil {
		t.Fatalf("expected password to verify, got error: %v", err)
	}

	if err := VerifyPassword(hash, "wrong"); err == nil {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("   "); err == nil {
		t.Fatal("expected error for blank password")
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Str0ng!Pass", wantErr: false},
		{name: "too short", password: "S3cu!re", wantErr: true},
		{name: "missing uppercase", password: "weak1pass!", wantErr: true},
		{name: "missing lowercase", password: "WEAK1PASS!", wantErr: true},
		{name: "missing digit", password: "WeakPass!!", wantErr: true},
		{name: "missing symbol", password: "WeakPass123", wantErr: true},
		{name: "symbols only padding", password: "Aa1!Aa1!", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordPolicy(tt.password)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %q", tt.password)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.password, err)
			}
		})
	}
}
