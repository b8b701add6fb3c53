package api

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"hello@brandenburgdata.com", true},
		{"  padded@example.org  ", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"two words@example.com", false},
		{"@example.com", false},
		{"user@", false},
	}

	for _, tt := range tests {
		if got := validEmail(tt.email); got != tt.want {
			t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestLengthBetween(t *testing.T) {
	tests := []struct {
		value    string
		min, max int
		want     bool
	}{
		{"ab", 2, 50, true},
		{"a", 2, 50, false},
		{"  ab  ", 2, 50, true},
		{"", 1, 10, false},
		{"日本語テキスト", 2, 6, true},
	}

	for _, tt := range tests {
		if got := lengthBetween(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("lengthBetween(%q, %d, %d) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestOneOf(t *testing.T) {
	options := []string{"Email", "Phone call"}
	if !oneOf("Email", options) {
		t.Error("expected exact match to pass")
	}
	if oneOf("email", options) {
		t.Error("expected case-sensitive mismatch to fail")
	}
	if oneOf("", options) {
		t.Error("expected empty value to fail")
	}
}

func TestFieldErrorsKeepFirstMessage(t *testing.T) {
	errs := fieldErrors{}
	if !errs.ok() {
		t.Fatal("expected new fieldErrors to be ok")
	}

	errs.add("email", "first")
	errs.add("email", "second")

	if errs.ok() {
		t.Fatal("expected fieldErrors with entries to not be ok")
	}
	if errs["email"] != "first" {
		t.Fatalf("expected first message to win, got %q", errs["email"])
	}
}
