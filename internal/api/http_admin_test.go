package api

import (
	"net/http/httptest"
	"testing"

	"bdconsulting/internal/entity"

	"github.com/gin-gonic/gin"
)

func newQueryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseAdminListQueryDefaults(t *testing.T) {
	c := newQueryContext(t, "")
	query, errs := parseAdminListQuery(c, entity.MessageStatuses)
	if !errs.ok() {
		t.Fatalf("expected no errors, got %#v", errs)
	}
	if query.Page != 1 || query.Limit != 20 {
		t.Fatalf("expected defaults page=1 limit=20, got page=%d limit=%d", query.Page, query.Limit)
	}
	if query.Status != "" {
		t.Fatalf("expected empty status, got %q", query.Status)
	}
}

func TestParseAdminListQueryValues(t *testing.T) {
	c := newQueryContext(t, "page=3&limit=50&status=read")
	query, errs := parseAdminListQuery(c, entity.MessageStatuses)
	if !errs.ok() {
		t.Fatalf("expected no errors, got %#v", errs)
	}
	if query.Page != 3 || query.Limit != 50 || query.Status != "read" {
		t.Fatalf("unexpected query %#v", query)
	}
}

func TestParseAdminListQueryRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"page zero", "page=0", "page"},
		{"page garbage", "page=abc", "page"},
		{"limit zero", "limit=0", "limit"},
		{"limit above cap", "limit=101", "limit"},
		{"unknown status", "status=archived", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newQueryContext(t, tt.query)
			_, errs := parseAdminListQuery(c, entity.MessageStatuses)
			if _, ok := errs[tt.field]; !ok {
				t.Fatalf("expected error on %q, got %#v", tt.field, errs)
			}
		})
	}
}

func TestParseAdminListQueryStatusSetDependsOnResource(t *testing.T) {
	c := newQueryContext(t, "status=draft")
	if _, errs := parseAdminListQuery(c, entity.PublishStatuses); !errs.ok() {
		t.Fatalf("draft should be valid for publishable resources, got %#v", errs)
	}

	c = newQueryContext(t, "status=draft")
	if _, errs := parseAdminListQuery(c, entity.MessageStatuses); errs.ok() {
		t.Fatal("draft should be rejected for message listings")
	}
}
