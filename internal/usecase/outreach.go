package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type OutreachUseCase struct {
	Prompts   *ManagePromptsUseCase
	Generator *GenerateMessageUseCase
	Sync      *SyncProspectUseCase
	Events    EventPublisherInterface
	Mailer    DraftMailer
	Now       func() time.Time
}

func NewOutreachUseCase(
	prompts *ManagePromptsUseCase,
	generator *GenerateMessageUseCase,
	sync *SyncProspectUseCase,
	events EventPublisherInterface,
	mailer DraftMailer,
) *OutreachUseCase {
	return &OutreachUseCase{
		Prompts:   prompts,
		Generator: generator,
		Sync:      sync,
		Events:    events,
		Mailer:    mailer,
		Now:       time.Now,
	}
}

// Generate valida o prospect, resolve o template e gera a mensagem (sem CRM).
func (uc *OutreachUseCase) Generate(ctx context.Context, input GenerateInput) (*entity.Prospect, *entity.GeneratedMessage, error) {
	if errs := ValidateProspectInput(input.Name, input.Title, input.Company); len(errs) > 0 {
		return nil, nil, validationFailure(errs)
	}

	prospect, err := entity.NewProspect(input.Name, input.Title, input.Company)
	if err != nil {
		return nil, nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	prompt, err := uc.Prompts.Resolve(ctx, input.PitchType)
	if err != nil {
		return nil, nil, err
	}

	return prospect, uc.Generator.Execute(ctx, *prospect, *prompt), nil
}

// Execute: gera a mensagem, sincroniza no CRM, publica o evento e envia o rascunho.
// Só devolve erro para entrada inválida; falhas remotas ficam descritas no output.
func (uc *OutreachUseCase) Execute(ctx context.Context, input OutreachInput) (*OutreachOutput, error) {
	prospect, msg, err := uc.Generate(ctx, GenerateInput(input))
	if err != nil {
		return nil, err
	}

	out := &OutreachOutput{Message: msg}

	if msg.IsFailed() {
		out.Msg = "Failed to generate message. Please try again."
		return out, nil
	}
	out.Generated = true

	result, err := uc.Sync.Execute(ctx, SyncProspectInput{
		Prospect:  *prospect,
		PitchType: input.PitchType,
		Subject:   msg.Subject,
		Body:      msg.Body,
	})
	if err != nil {
		out.CRMError = err.Error()
		if IsConfigurationError(err) {
			out.Msg = "Message generated but couldn't add to CRM. Check HubSpot configuration."
		} else {
			out.Msg = "Message generated but CRM sync failed."
		}
		log.Printf("⚠️ Outreach para %s sem CRM: %v", prospect.Name, err)
	} else {
		out.CRM = result
		out.Msg = statusMessage(result)
	}

	if uc.Events != nil && result != nil {
		out.Published = uc.publish(ctx, *prospect, input.PitchType, msg, result)
	}

	if uc.Mailer != nil {
		if err := uc.Mailer.SendDraft(ctx, *prospect, input.PitchType, *msg); err != nil {
			log.Printf("⚠️ Rascunho não enviado por email: %v", err)
		} else {
			out.Emailed = true
		}
	}

	return out, nil
}

func (uc *OutreachUseCase) publish(ctx context.Context, p entity.Prospect, pitchType string, msg *entity.GeneratedMessage, result *entity.SyncResult) bool {
	now := time.Now()
	if uc.Now != nil {
		now = uc.Now()
	}

	event := OutreachEvent{
		EventID:    uuid.New().String(),
		OccurredAt: now,
		Name:       p.Name,
		Title:      p.Title,
		Company:    p.Company,
		PitchType:  pitchType,
		Subject:    msg.Subject,
		Body:       msg.Body,
		ModelUsed:  msg.ModelUsed,
		ContactID:  result.ContactID,
		LeadID:     result.LeadID,
		CRMStatus:  string(result.Status),
	}

	if err := uc.Events.PublishOutreach(ctx, event); err != nil {
		log.Printf("⚠️ Evento de outreach não publicado: %v", err)
		return false
	}
	return true
}

func statusMessage(r *entity.SyncResult) string {
	lead := "-"
	if r.LeadID != nil {
		lead = *r.LeadID
	}

	switch r.Status {
	case entity.SyncStatusSuccess:
		return fmt.Sprintf("Added to HubSpot CRM (Contact: %s, Lead: %s)", r.ContactID, lead)
	case entity.SyncStatusUpdated:
		return fmt.Sprintf("Updated existing contact and created new lead (Contact: %s, Lead: %s)", r.ContactID, lead)
	case entity.SyncStatusAssociationFailed:
		return fmt.Sprintf("Contact and lead created but association failed (Contact: %s, Lead: %s)", r.ContactID, lead)
	case entity.SyncStatusLeadCreationFailed:
		return fmt.Sprintf("Contact created but lead creation failed (Contact: %s)", r.ContactID)
	default:
		return "Partial success - check HubSpot for details"
	}
}
