// Package validation checks form input before generation runs.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/obarouni/cv-builder/internal/types"
)

// ValidateApplication validates a filled-in ApplicationRecord against its
// struct tags and translates validator failures into user-facing messages.
// Generation must not start while this returns an error.
func ValidateApplication(rec *types.ApplicationRecord) error {
	validate := validator.New()
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, describe(fe))
	}
	return fmt.Errorf("invalid application: %s", strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "ProjectIDs":
		switch fe.Tag() {
		case "min":
			return "select at least 1 project"
		case "max":
			return "select at most 4 projects"
		default:
			return "select between 1 and 4 projects"
		}
	case "CoverLetterBody":
		return "add cover letter body text or disable the cover letter"
	case "JobType":
		return "job type is required"
	case "Company":
		return "company is required"
	case "Role":
		return "role title is required"
	case "JobLink":
		return "job link is required"
	case "Summary":
		return "summary is required"
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
