package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	maxNameLength   = 200
	maxPromptLength = 8000
)

// placeholderProbe has every key a prospect supplies.
var placeholderProbe = map[string]string{"name": "", "title": "", "company": ""}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateProspectInput(name, title, company string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(name) > maxNameLength {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	} else if len(title) > maxNameLength {
		errors = append(errors, ValidationError{"title", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(company) == "" {
		errors = append(errors, ValidationError{"company", "is required"})
	} else if len(company) > maxNameLength {
		errors = append(errors, ValidationError{"company", "must not exceed 200 characters"})
	}

	return errors
}

func ValidatePromptInput(input PromptInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > maxNameLength {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.SystemPrompt) == "" {
		errors = append(errors, ValidationError{"system_prompt", "is required"})
	} else if len(input.SystemPrompt) > maxPromptLength {
		errors = append(errors, ValidationError{"system_prompt", "is too long"})
	}

	if strings.TrimSpace(input.UserPrompt) == "" {
		errors = append(errors, ValidationError{"user_prompt", "is required"})
	} else if len(input.UserPrompt) > maxPromptLength {
		errors = append(errors, ValidationError{"user_prompt", "is too long"})
	} else if _, err := FormatPrompt(input.UserPrompt, placeholderProbe); err != nil {
		errors = append(errors, ValidationError{"user_prompt", err.Error()})
	}

	if input.Model != "" && !isAvailableModel(input.Model) {
		errors = append(errors, ValidationError{"model", "must be one of " + strings.Join(entity.AvailableModels, ", ")})
	}

	return errors
}

func validationFailure(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}

func isAvailableModel(model string) bool {
	for _, m := range entity.AvailableModels {
		if m == model {
			return true
		}
	}
	return false
}
