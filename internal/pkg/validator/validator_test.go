package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-03-10", "2024-02-29", "1999-12-31"}
	invalid := []string{"2025-3-10", "10-03-2025", "2025-03-10T09:00:00Z", "2025-02-30", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2025-03-10T09:00:00Z",
		"2025-03-10T09:00:00+07:00",
		"2025-03-10T09:00:00.123456789Z",
	}
	invalid := []string{"2025-03-10", "09:00:00", "", "1741597200"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimezone(t *testing.T) {
	valid := []string{"UTC", "America/Chicago", "Asia/Jakarta"}
	invalid := []string{"", "Mars/Olympus_Mons", "America/NotACity"}
	for _, s := range valid {
		if !IsValidTimezone(s) {
			t.Errorf("IsValidTimezone(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimezone(s) {
			t.Errorf("IsValidTimezone(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "user_id", Message: "user_id is required"},
		{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"},
	}

	if errs.Error() != "user_id: user_id is required; start_date: start_date must be in YYYY-MM-DD format" {
		t.Errorf("unexpected Error() output: %q", errs.Error())
	}

	m := errs.ToMap()
	if len(m) != 2 || m["user_id"] != "user_id is required" {
		t.Errorf("unexpected ToMap() output: %v", m)
	}
}
