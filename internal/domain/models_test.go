package domain

import "testing"

func TestStringRendering(t *testing.T) {
	if got := (Category{Name: "Recon"}).String(); got != "Recon" {
		t.Errorf("category = %q", got)
	}
	if got := (Drone{Name: "DJI-Test"}).String(); got != "DJI-Test" {
		t.Errorf("drone = %q", got)
	}
	if got := (Order{ID: 3, DroneName: "DJI-Test"}).String(); got != "DJI-Test" {
		t.Errorf("order = %q", got)
	}
	if got := (Order{ID: 3}).String(); got != "order #3" {
		t.Errorf("order without drone = %q", got)
	}
}

func TestParseCountry(t *testing.T) {
	for _, s := range []string{"Poland", "Ukraine"} {
		if c, ok := ParseCountry(s); !ok || string(c) != s {
			t.Errorf("ParseCountry(%q) = %q, %v", s, c, ok)
		}
	}
	for _, s := range []string{"", "poland", "Germany"} {
		if _, ok := ParseCountry(s); ok {
			t.Errorf("ParseCountry(%q) should fail", s)
		}
	}
	if DefaultCountry != CountryUkraine {
		t.Errorf("default country = %q", DefaultCountry)
	}
}
