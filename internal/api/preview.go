package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"

	"bdconsulting/internal/entity"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer strips scripts, event handlers and other dangerous markup
// from admin-entered HTML before it reaches the public pages.
var htmlSanitizer = bluemonday.UGCPolicy()

// renderContentHTML converts a content value to HTML according to its type
// marker. Markdown is rendered then sanitized, HTML is sanitized as-is, JSON
// is validated and text is escaped.
func renderContentHTML(value, contentType string) (string, error) {
	switch contentType {
	case entity.ContentTypeMarkdown:
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(value), &buf); err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return htmlSanitizer.Sanitize(buf.String()), nil
	case entity.ContentTypeHTML:
		return htmlSanitizer.Sanitize(value), nil
	case entity.ContentTypeJSON:
		if !json.Valid([]byte(value)) {
			return "", fmt.Errorf("invalid json value")
		}
		return "<pre>" + html.EscapeString(value) + "</pre>", nil
	default:
		return html.EscapeString(value), nil
	}
}
