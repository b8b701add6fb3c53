package api

import (
	"strings"
	"testing"

	"bdconsulting/internal/entity"
)

func validContactRequest() entity.ContactSubmitRequest {
	return entity.ContactSubmitRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Message:   "We need help modernising our data warehouse.",
	}
}

func TestValidateContactRequestAcceptsMinimalPayload(t *testing.T) {
	req := validContactRequest()
	if errs := validateContactRequest(&req); !errs.ok() {
		t.Fatalf("expected no validation errors, got %#v", errs)
	}
}

func TestValidateContactRequestFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.ContactSubmitRequest)
		field  string
	}{
		{"missing first name", func(r *entity.ContactSubmitRequest) { r.FirstName = " " }, "first_name"},
		{"short first name", func(r *entity.ContactSubmitRequest) { r.FirstName = "A" }, "first_name"},
		{"missing last name", func(r *entity.ContactSubmitRequest) { r.LastName = "" }, "last_name"},
		{"bad email", func(r *entity.ContactSubmitRequest) { r.Email = "not-an-email" }, "email"},
		{"long company", func(r *entity.ContactSubmitRequest) { r.Company = strings.Repeat("x", 101) }, "company"},
		{"bad phone", func(r *entity.ContactSubmitRequest) { r.Phone = "abc" }, "phone"},
		{"unknown service", func(r *entity.ContactSubmitRequest) { r.Service = "Palm Reading" }, "service"},
		{"unknown budget", func(r *entity.ContactSubmitRequest) { r.BudgetRange = "one million" }, "budget_range"},
		{"unknown timeline", func(r *entity.ContactSubmitRequest) { r.Timeline = "someday" }, "timeline"},
		{"unknown contact method", func(r *entity.ContactSubmitRequest) { r.ContactMethod = "Telepathy" }, "contact_method"},
		{"short message", func(r *entity.ContactSubmitRequest) { r.Message = "hi" }, "message"},
		{"long message", func(r *entity.ContactSubmitRequest) { r.Message = strings.Repeat("m", 2001) }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContactRequest()
			tt.mutate(&req)
			errs := validateContactRequest(&req)
			if _, ok := errs[tt.field]; !ok {
				t.Fatalf("expected error on field %q, got %#v", tt.field, errs)
			}
		})
	}
}

func TestValidateContactRequestAcceptsKnownDropdownValues(t *testing.T) {
	req := validContactRequest()
	req.Service = "Data Strategy Consulting"
	req.BudgetRange = "To be discussed"
	req.Timeline = "1-3 months"
	req.ContactMethod = "Video conference"

	if errs := validateContactRequest(&req); !errs.ok() {
		t.Fatalf("expected no validation errors, got %#v", errs)
	}
}

func TestBuildStoredMessageFoldsDetails(t *testing.T) {
	req := validContactRequest()
	req.BudgetRange = "Under $10,000"
	req.Timeline = "Flexible/Planning stage"
	req.ContactMethod = "Email"
	req.PreferredDate = "2026-09-15"
	req.PreferredTime = "Morning"

	stored := buildStoredMessage(&req)

	if !strings.HasPrefix(stored, req.Message) {
		t.Fatal("expected stored message to start with the original message")
	}
	if !strings.Contains(stored, "--- Additional Details ---") {
		t.Fatal("expected details separator")
	}
	for _, fragment := range []string{
		"Budget Range: Under $10,000",
		"Timeline: Flexible/Planning stage",
		"Preferred Contact: Email",
		"Preferred Date: 2026-09-15",
		"Preferred Time: Morning",
	} {
		if !strings.Contains(stored, fragment) {
			t.Fatalf("expected %q in stored message:\n%s", fragment, stored)
		}
	}
}
