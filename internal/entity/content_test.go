package entity

import "testing"

func TestGroupContentByPage(t *testing.T) {
	items := []DbContent{
		{Page: "home", Section: "hero", Key: "title", Value: "Data Excellence"},
		{Page: "home", Section: "hero", Key: "subtitle", Value: "Delivered"},
		{Page: "home", Section: "stats", Key: "accuracy", Value: "99.9%"},
	}

	grouped := GroupContentByPage(items)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(grouped))
	}
	if grouped["hero"]["title"] != "Data Excellence" {
		t.Fatalf("unexpected hero title: %q", grouped["hero"]["title"])
	}
	if grouped["hero"]["subtitle"] != "Delivered" {
		t.Fatalf("unexpected hero subtitle: %q", grouped["hero"]["subtitle"])
	}
	if grouped["stats"]["accuracy"] != "99.9%" {
		t.Fatalf("unexpected stats accuracy: %q", grouped["stats"]["accuracy"])
	}
}

func TestGroupContentByPageEmpty(t *testing.T) {
	grouped := GroupContentByPage(nil)
	if len(grouped) != 0 {
		t.Fatalf("expected empty map, got %#v", grouped)
	}
}

func TestGroupContentBySection(t *testing.T) {
	items := []DbContent{
		{Section: "info", Key: "email", Value: "hello@brandenburgdata.com"},
		{Section: "info", Key: "phone", Value: "+1 (555) 123-4567"},
	}

	grouped := GroupContentBySection(items)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(grouped))
	}
	if grouped["email"] != "hello@brandenburgdata.com" {
		t.Fatalf("unexpected email value: %q", grouped["email"])
	}
}

func TestValidContentType(t *testing.T) {
	for _, valid := range ContentTypes {
		if !ValidContentType(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "xml", "TEXT"} {
		if ValidContentType(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
