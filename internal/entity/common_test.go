package entity

import "testing"

func TestMetaToPagination(t *testing.T) {
	tests := []struct {
		name      string
		meta      *Meta
		wantPages int64
	}{
		{name: "exact division", meta: &Meta{Page: 1, PageSize: 20, Total: 40}, wantPages: 2},
		{name: "rounds up", meta: &Meta{Page: 2, PageSize: 20, Total: 41}, wantPages: 3},
		{name: "empty result", meta: &Meta{Page: 1, PageSize: 20, Total: 0}, wantPages: 0},
		{name: "single partial page", meta: &Meta{Page: 1, PageSize: 100, Total: 7}, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MetaToPagination(tt.meta)
			if p.Pages != tt.wantPages {
				t.Fatalf("expected %d pages, got %d", tt.wantPages, p.Pages)
			}
			if p.Page != tt.meta.Page || p.Limit != tt.meta.PageSize || p.Total != tt.meta.Total {
				t.Fatalf("envelope fields do not mirror meta: %#v", p)
			}
		})
	}
}

func TestMetaToPaginationNil(t *testing.T) {
	p := MetaToPagination(nil)
	if p.Page != 1 || p.Limit != 20 || p.Total != 0 || p.Pages != 0 {
		t.Fatalf("unexpected defaults %#v", p)
	}
}

func TestStringArrayRoundTrip(t *testing.T) {
	arr := StringArray{"go", "etl", "warehouse"}
	value, err := arr.Value()
	if err != nil {
		t.Fatalf("unexpected error from Value: %v", err)
	}

	var decoded StringArray
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("unexpected error from Scan: %v", err)
	}
	if len(decoded) != 3 || decoded[0] != "go" || decoded[2] != "warehouse" {
		t.Fatalf("unexpected decoded value %#v", decoded)
	}
}

func TestStringArrayScanEmpty(t *testing.T) {
	var decoded StringArray
	if err := decoded.Scan(""); err != nil {
		t.Fatalf("unexpected error scanning empty string: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected empty array, got %#v", decoded)
	}

	if err := decoded.Scan(nil); err != nil {
		t.Fatalf("unexpected error scanning nil: %v", err)
	}
	if decoded != nil {
		t.Fatalf("expected nil array, got %#v", decoded)
	}
}
