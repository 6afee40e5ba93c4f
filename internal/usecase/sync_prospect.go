package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/integration/hubspot"
)

const contactSearchLimit = 10

type SyncProspectInput struct {
	Prospect  entity.Prospect `json:"prospect"`
	PitchType string          `json:"pitch_type"`
	Subject   string          `json:"subject"`
	Body      string          `json:"body"`
}

type syncState int

const (
	stateCreateContact syncState = iota
	stateFindAndUpdate
	stateCreateLead
	stateAssociate
	stateDone
)

// syncRun carrega o estado de uma reconciliação entre os passos.
type syncRun struct {
	input     SyncProspectInput
	firstName string
	lastName  string

	state      syncState
	existing   bool
	contactID  string
	leadID     string
	leadStatus string
	result     *entity.SyncResult
}

type SyncProspectUseCase struct {
	CRM CRMGateway
	Now func() time.Time
}

func NewSyncProspectUseCase(crm CRMGateway) *SyncProspectUseCase {
	return &SyncProspectUseCase{CRM: crm, Now: time.Now}
}

// Execute reconcilia o prospect no CRM: contato (cria ou atualiza), um lead novo e a associação.
// Os passos não são transacionais: falhas depois do contato viram status parciais, sem rollback.
func (uc *SyncProspectUseCase) Execute(ctx context.Context, input SyncProspectInput) (*entity.SyncResult, error) {
	if uc.CRM == nil {
		return nil, &ConfigurationError{Feature: "CRM sync", Missing: "HUBSPOT_API_KEY"}
	}

	if err := input.Prospect.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: "validation failed: " + err.Error()}
	}

	run := &syncRun{input: input, state: stateCreateContact}
	run.firstName, run.lastName = entity.SplitName(input.Prospect.Name)

	for run.state != stateDone {
		var err error

		switch run.state {
		case stateCreateContact:
			err = uc.createContact(ctx, run)
		case stateFindAndUpdate:
			err = uc.findAndUpdate(ctx, run)
		case stateCreateLead:
			uc.createLead(ctx, run)
		case stateAssociate:
			uc.associate(ctx, run)
		}

		if err != nil {
			return nil, err
		}
	}

	return run.result, nil
}

func (uc *SyncProspectUseCase) createContact(ctx context.Context, run *syncRun) error {
	p := run.input.Prospect

	contactID, err := uc.CRM.CreateContact(ctx, map[string]string{
		"firstname":      run.firstName,
		"lastname":       run.lastName,
		"jobtitle":       p.Title,
		"company":        p.Company,
		"lifecyclestage": entity.LifecycleStageLead,
		"hs_lead_status": entity.LeadStatusNew,
	})

	switch {
	case err == nil:
		run.contactID = contactID
		run.leadStatus = entity.LeadStatusNew
		run.state = stateCreateLead
		return nil

	case errors.Is(err, hubspot.ErrDuplicateContact):
		log.Printf("📇 CRM: contato '%s' já existe, buscando para atualizar", p.Name)
		run.state = stateFindAndUpdate
		return nil

	default:
		log.Printf("❌ CRM: erro ao criar contato '%s': %v", p.Name, err)
		return &TechnicalError{Code: CodeCRM, Message: "error creating CRM contact: " + err.Error(), Err: err}
	}
}

// findAndUpdate: busca só pelo nome; o mais recente vence.
func (uc *SyncProspectUseCase) findAndUpdate(ctx context.Context, run *syncRun) error {
	p := run.input.Prospect

	matches, err := uc.CRM.SearchContacts(ctx, run.input.Prospect.FullName(), contactSearchLimit)
	if err != nil {
		log.Printf("❌ CRM: erro ao buscar contato '%s': %v", p.Name, err)
		return &TechnicalError{Code: CodeCRM, Message: "error searching CRM contact: " + err.Error(), Err: err}
	}

	if len(matches) == 0 {
		return &TechnicalError{Code: CodeContactNotFound, Message: "duplicate contact reported but no match for " + p.Name}
	}

	run.existing = true
	run.contactID = matches[0].ID
	run.leadStatus = entity.LeadStatusContacted

	err = uc.CRM.UpdateContact(ctx, run.contactID, map[string]string{
		"jobtitle":          p.Title,
		"company":           p.Company,
		"hs_lead_status":    entity.LeadStatusContacted,
		"last_contact_date": uc.now().Format("2006-01-02"),
	})
	if err != nil {
		// o lead é criado mesmo assim
		log.Printf("⚠️ CRM: falha ao atualizar contato %s: %v", run.contactID, err)
	}

	run.state = stateCreateLead
	return nil
}

func (uc *SyncProspectUseCase) createLead(ctx context.Context, run *syncRun) {
	p := run.input.Prospect

	leadID, err := uc.CRM.CreateLead(ctx, map[string]string{
		"firstname":            run.firstName,
		"lastname":             run.lastName,
		"jobtitle":             p.Title,
		"company":              p.Company,
		"hs_lead_status":       run.leadStatus,
		"pitch_type":           run.input.PitchType,
		"last_message_subject": run.input.Subject,
		"last_message_body":    run.input.Body,
	})
	if err != nil {
		log.Printf("⚠️ CRM: falha ao criar lead para contato %s: %v", run.contactID, err)

		status := entity.SyncStatusLeadCreationFailed
		if run.existing {
			status = entity.SyncStatusContactUpdatedLeadFailed
		}
		run.result = &entity.SyncResult{ContactID: run.contactID, Status: status}
		run.state = stateDone
		return
	}

	run.leadID = leadID
	run.state = stateAssociate
}

func (uc *SyncProspectUseCase) associate(ctx context.Context, run *syncRun) {
	leadID := run.leadID
	run.result = &entity.SyncResult{ContactID: run.contactID, LeadID: &leadID}
	run.state = stateDone

	if err := uc.CRM.AssociateLeadToContact(ctx, run.leadID, run.contactID); err != nil {
		log.Printf("⚠️ CRM: lead %s criado mas associação com contato %s falhou: %v", run.leadID, run.contactID, err)
		run.result.Status = entity.SyncStatusAssociationFailed
		return
	}

	if run.existing {
		run.result.Status = entity.SyncStatusUpdated
	} else {
		run.result.Status = entity.SyncStatusSuccess
	}
}

func (uc *SyncProspectUseCase) now() time.Time {
	if uc.Now == nil {
		return time.Now()
	}
	return uc.Now()
}
