package usecase

import (
	"errors"
	"fmt"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// ConfigurationError: credencial ausente, a feature dependente fica indisponível.
type ConfigurationError struct {
	Feature string
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s unavailable: %s not configured", e.Feature, e.Missing)
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// TemplateError is returned when a user prompt references a placeholder with no value.
type TemplateError struct {
	Key    string
	Reason string
}

func (e *TemplateError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("template: missing value for {%s}", e.Key)
	}
	return "template: " + e.Reason
}

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodePromptNotFound   = "PROMPT_NOT_FOUND"
	CodePromptNameTaken  = "PROMPT_NAME_TAKEN"
	CodeLastPrompt       = "LAST_PROMPT"
	CodeUnknownPitchType = "UNKNOWN_PITCH_TYPE"
	CodeContactNotFound  = "CONTACT_NOT_FOUND"

	CodeStorage = "STORAGE_ERROR"
	CodeCRM     = "CRM_ERROR"
)
