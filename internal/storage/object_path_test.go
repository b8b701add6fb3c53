package storage

import (
	"strings"
	"testing"
)

func TestSanitizePathSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"blog", "blog"},
		{"Blog Posts", "blogposts"},
		{"  Portfolio_2026  ", "portfolio_2026"},
		{"../../etc/passwd", "etcpasswd"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizePathSegment(tt.input); got != tt.expected {
			t.Errorf("sanitizePathSegment(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"png", "png"},
		{".PNG", "png"},
		{"  .jpeg ", "jpeg"},
		{"", "bin"},
	}

	for _, tt := range tests {
		if got := normalizeExtension(tt.input); got != tt.expected {
			t.Errorf("normalizeExtension(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildObjectPath(t *testing.T) {
	path := buildObjectPath("Blog", "Team Photo", "PNG")

	if !strings.HasPrefix(path, "blog/") {
		t.Fatalf("expected category prefix, got %q", path)
	}
	if !strings.HasSuffix(path, "team-photo.png") {
		t.Fatalf("expected sanitized filename, got %q", path)
	}
	if strings.Contains(path, "..") {
		t.Fatalf("path must not contain traversal segments: %q", path)
	}
}

func TestBuildObjectPathGeneratesNameWhenBaseEmpty(t *testing.T) {
	path := buildObjectPath("misc", "", "pdf")
	if !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("expected pdf extension, got %q", path)
	}
	parts := strings.Split(path, "/")
	name := parts[len(parts)-1]
	if name == ".pdf" {
		t.Fatal("expected a generated base name")
	}
}

func TestJoinPrefix(t *testing.T) {
	if got := joinPrefix("", "a/b.png"); got != "a/b.png" {
		t.Fatalf("unexpected join without prefix: %q", got)
	}
	if got := joinPrefix("/uploads/", "/a/b.png"); got != "uploads/a/b.png" {
		t.Fatalf("unexpected join with prefix: %q", got)
	}
}

func TestDetectContentType(t *testing.T) {
	if got := detectContentType("png"); got != "image/png" {
		t.Fatalf("expected image/png, got %q", got)
	}
	if got := detectContentType("unknownext"); got != "application/octet-stream" {
		t.Fatalf("expected fallback content type, got %q", got)
	}
}
