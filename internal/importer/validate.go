package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCareerPath checks the fields a roadmap cannot be built without.
// Returns a slice of all validation errors found.
func ValidateCareerPath(p *CareerPathImport) []error {
	if p == nil {
		return []error{fmt.Errorf("career path is required")}
	}

	trimmed := *p
	trimmed.Role = strings.TrimSpace(p.Role)
	trimmed.Goal = strings.TrimSpace(p.Goal)

	err := validate.Struct(&trimmed)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, formatFieldError(fe))
	}
	return errs
}

func formatFieldError(fe validator.FieldError) error {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Errorf("%s is required", field)
	default:
		return fmt.Errorf("%s: failed %q check", field, fe.Tag())
	}
}

// malformed folds validation errors into the domain error type.
func malformed(errs []error) error {
	problems := make([]string, 0, len(errs))
	for _, e := range errs {
		problems = append(problems, e.Error())
	}
	return &domain.MalformedInputError{Problems: problems}
}
