// Package validate wraps struct validation behind a small interface so
// handlers do not depend on a concrete validation library.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldViolation describes a single failed constraint.
type FieldViolation struct {
	Field  string `json:"field"`
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

// Violations is the error returned when one or more fields fail validation.
type Violations []FieldViolation

func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = f.Detail
	}
	return strings.Join(parts, "; ")
}

// Validator checks a struct against its declared constraints.
type Validator interface {
	Struct(s interface{}) error
}

type playgroundValidator struct {
	v *validator.Validate
}

// New returns a Validator backed by go-playground/validator using the
// json tag names in violation reports.
func New() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &playgroundValidator{v: v}
}

func (p *playgroundValidator) Struct(s interface{}) error {
	err := p.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(Violations, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldViolation{
			Field:  fe.Field(),
			Rule:   fe.Tag(),
			Detail: fmt.Sprintf("field %q failed on rule %q", fe.Field(), fe.Tag()),
		})
	}
	return out
}
