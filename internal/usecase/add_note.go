package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type AddNoteInput struct {
	ContactID string `json:"contact_id"`
	Text      string `json:"text"`
}

type AddNoteUseCase struct {
	CRM CRMGateway
	Now func() time.Time
}

func NewAddNoteUseCase(crm CRMGateway) *AddNoteUseCase {
	return &AddNoteUseCase{CRM: crm, Now: time.Now}
}

// Execute cria a nota associada ao contato e marca notes_last_updated no contato.
func (uc *AddNoteUseCase) Execute(ctx context.Context, input AddNoteInput) (*entity.Note, error) {
	if uc.CRM == nil {
		return nil, &ConfigurationError{Feature: "CRM notes", Missing: "HUBSPOT_API_KEY"}
	}

	text := strings.TrimSpace(input.Text)
	contactID := strings.TrimSpace(input.ContactID)
	if contactID == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "contact_id is required"}
	}
	if text == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "note text is required"}
	}

	now := time.Now()
	if uc.Now != nil {
		now = uc.Now()
	}

	noteID, err := uc.CRM.CreateNote(ctx, contactID, text, now)
	if err != nil {
		log.Printf("❌ CRM: erro ao criar nota para contato %s: %v", contactID, err)
		return nil, &TechnicalError{Code: CodeCRM, Message: "error adding note: " + err.Error(), Err: err}
	}

	err = uc.CRM.UpdateContact(ctx, contactID, map[string]string{
		"notes_last_updated": now.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		log.Printf("⚠️ CRM: nota %s criada, mas notes_last_updated não foi atualizado: %v", noteID, err)
	}

	return &entity.Note{
		ID:        noteID,
		ContactID: contactID,
		Body:      text,
		Timestamp: now,
	}, nil
}
