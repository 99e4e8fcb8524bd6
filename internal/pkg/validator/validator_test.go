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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-10"); !ok {
		t.Error(`IsValidDate("2024-01-10") = false, want true`)
	}
	for _, s := range []string{"2024-13-01", "10-01-2024", "2024/01/10", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestMaxLen(t *testing.T) {
	cases := []struct {
		input string
		n     int
		want  bool
	}{
		{"abc", 3, true},
		{"abcd", 3, false},
		{"", 0, true},
		{"héllo", 5, true}, // runes, not bytes
	}
	for _, c := range cases {
		if got := MaxLen(c.input, c.n); got != c.want {
			t.Errorf("MaxLen(%q, %d) = %v, want %v", c.input, c.n, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Present", "Absent"}
	if !IsInSlice("Present", slice) {
		t.Error(`IsInSlice("Present") = false, want true`)
	}
	if IsInSlice("present", slice) {
		t.Error(`IsInSlice("present") = true, want false`)
	}
	if IsInSlice("", slice) {
		t.Error(`IsInSlice("") = true, want false`)
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "full_name", Message: "full name is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["email"] != "invalid email format" {
		t.Errorf("ToMap()[email] = %q", m["email"])
	}
}
