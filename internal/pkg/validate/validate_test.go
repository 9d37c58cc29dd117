package validate

import (
	"errors"
	"testing"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title" validate:"required"`
	Count int    `json:"count" validate:"min=1"`
}

func TestStructPasses(t *testing.T) {
	v := New()
	if err := v.Struct(sample{Email: "a@b.co", Title: "x", Count: 3}); err != nil {
		t.Fatalf("Struct: %v", err)
	}
}

func TestStructReportsViolationsPerField(t *testing.T) {
	v := New()
	err := v.Struct(sample{Email: "not-an-email", Count: 0})
	if err == nil {
		t.Fatal("expected violations")
	}
	var viol Violations
	if !errors.As(err, &viol) {
		t.Fatalf("error type = %T, want Violations", err)
	}
	if len(viol) != 3 {
		t.Fatalf("len(violations) = %d, want 3: %v", len(viol), viol)
	}

	byField := map[string]string{}
	for _, f := range viol {
		byField[f.Field] = f.Rule
	}
	if byField["email"] != "email" {
		t.Errorf("email rule = %q, want %q", byField["email"], "email")
	}
	if byField["title"] != "required" {
		t.Errorf("title rule = %q, want %q", byField["title"], "required")
	}
	if byField["count"] != "min" {
		t.Errorf("count rule = %q, want %q", byField["count"], "min")
	}
}
