package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

type ListCRMRecordsUseCase struct {
	CRM CRMGateway
}

func NewListCRMRecordsUseCase(crm CRMGateway) *ListCRMRecordsUseCase {
	return &ListCRMRecordsUseCase{CRM: crm}
}

func (uc *ListCRMRecordsUseCase) Contacts(ctx context.Context, limit int) ([]entity.Contact, error) {
	if uc.CRM == nil {
		return nil, &ConfigurationError{Feature: "CRM records", Missing: "HUBSPOT_API_KEY"}
	}

	contacts, err := uc.CRM.ListContacts(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, &TechnicalError{Code: CodeCRM, Message: "error retrieving contacts: " + err.Error(), Err: err}
	}
	return contacts, nil
}

func (uc *ListCRMRecordsUseCase) Leads(ctx context.Context, limit int) ([]entity.Lead, error) {
	if uc.CRM == nil {
		return nil, &ConfigurationError{Feature: "CRM records", Missing: "HUBSPOT_API_KEY"}
	}

	leads, err := uc.CRM.ListLeads(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, &TechnicalError{Code: CodeCRM, Message: "error retrieving leads: " + err.Error(), Err: err}
	}
	return leads, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
