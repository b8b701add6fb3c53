package api

import (
	"strings"
	"testing"

	"bdconsulting/internal/entity"
)

func TestRenderContentHTMLMarkdown(t *testing.T) {
	out, err := renderContentHTML("# Heading\n\nSome **bold** text.", entity.ContentTypeMarkdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<h1>Heading</h1>") {
		t.Fatalf("expected rendered heading, got %q", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("expected rendered bold text, got %q", out)
	}
}

func TestRenderContentHTMLStripsScripts(t *testing.T) {
	out, err := renderContentHTML(`<p>ok</p><script>alert(1)</script>`, entity.ContentTypeHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "script") {
		t.Fatalf("expected script tag to be stripped, got %q", out)
	}
	if !strings.Contains(out, "<p>ok</p>") {
		t.Fatalf("expected paragraph to survive, got %q", out)
	}
}

func TestRenderContentHTMLStripsEventHandlers(t *testing.T) {
	out, err := renderContentHTML(`<a href="https://example.com" onclick="steal()">link</a>`, entity.ContentTypeHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "onclick") {
		t.Fatalf("expected onclick attribute to be stripped, got %q", out)
	}
}

func TestRenderContentHTMLJSON(t *testing.T) {
	out, err := renderContentHTML(`{"stats": 42}`, entity.ContentTypeJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "<pre>") {
		t.Fatalf("expected pre-wrapped output, got %q", out)
	}

	if _, err := renderContentHTML(`{"broken":`, entity.ContentTypeJSON); err == nil {
		t.Fatal("expected error for invalid json")
	}
}

func TestRenderContentHTMLTextEscapes(t *testing.T) {
	out, err := renderContentHTML(`<b>plain</b>`, entity.ContentTypeText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<b>") {
		t.Fatalf("expected text to be escaped, got %q", out)
	}
}
