package handler

import "testing"

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Alice Martin  ", "Alice Martin"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitizeText(tc.in); got != tc.want {
			t.Errorf("sanitizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"x.com", "https://x.com"},
		{"  Example.COM/Path  ", "https://example.com/path"},
		{"https://x.com", "https://x.com"},
		{"http://legacy.example.com", "http://legacy.example.com"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitizeURL(tc.in); got != tc.want {
			t.Errorf("sanitizeURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeURL_Idempotent(t *testing.T) {
	for _, in := range []string{"x.com", "https://x.com", "HTTP://A.B", "  mixed.Case/Q  "} {
		once := sanitizeURL(in)
		twice := sanitizeURL(once)
		if once != twice {
			t.Errorf("sanitizeURL not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestValidator_FirstErrorOnly(t *testing.T) {
	v := NewValidator()

	// Two violations: name missing and email malformed. Only the first
	// field's message is surfaced.
	req := createCardRequest{Email: "not-an-email", Position: "Engineer", Company: "Acme"}
	err := v.Validate(&req)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if got := err.Error(); got != "name is required" {
		t.Errorf("expected first violation only, got %q", got)
	}
}

func TestValidator_UpdateRejectsClearedRequiredFields(t *testing.T) {
	v := NewValidator()
	empty := ""

	// A present-but-empty value would permanently clear a required column;
	// only an absent (nil) field may leave it untouched.
	cases := []struct {
		field string
		req   updateCardRequest
	}{
		{"name", updateCardRequest{ID: "card-1", Name: &empty}},
		{"position", updateCardRequest{ID: "card-1", Position: &empty}},
		{"company", updateCardRequest{ID: "card-1", Company: &empty}},
	}
	for _, tc := range cases {
		if err := v.Validate(&tc.req); err == nil {
			t.Errorf("empty %s must fail validation", tc.field)
		}
	}

	// Nil pointers stay valid: absence is not emptiness.
	if err := v.Validate(&updateCardRequest{ID: "card-1"}); err != nil {
		t.Errorf("all-absent update must pass, got %v", err)
	}
}

func TestValidator_FrenchPhone(t *testing.T) {
	v := NewValidator()

	valid := []string{"+33612345678", "0612345678", "0123456789"}
	for _, phone := range valid {
		req := createCardRequest{
			Name: "A", Position: "B", Company: "C",
			Email: "a@example.com", Phone: phone,
		}
		if err := v.Validate(&req); err != nil {
			t.Errorf("phone %q should pass, got %v", phone, err)
		}
	}

	invalid := []string{"12345", "+34612345678", "06123456", "0012345678"}
	for _, phone := range invalid {
		req := createCardRequest{
			Name: "A", Position: "B", Company: "C",
			Email: "a@example.com", Phone: phone,
		}
		if err := v.Validate(&req); err == nil {
			t.Errorf("phone %q should fail", phone)
		}
	}
}
