package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	MaxOutputTokens     = 300
	SamplingTemperature = 0.7
)

type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float32
}

type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CRMGateway is the contact/lead/note surface of the CRM.
type CRMGateway interface {
	CreateContact(ctx context.Context, properties map[string]string) (string, error)
	UpdateContact(ctx context.Context, contactID string, properties map[string]string) error
	SearchContacts(ctx context.Context, query string, limit int) ([]entity.Contact, error)
	ListContacts(ctx context.Context, limit int) ([]entity.Contact, error)
	CreateLead(ctx context.Context, properties map[string]string) (string, error)
	AssociateLeadToContact(ctx context.Context, leadID, contactID string) error
	ListLeads(ctx context.Context, limit int) ([]entity.Lead, error)
	CreateNote(ctx context.Context, contactID, text string, at time.Time) (string, error)
}

type OutreachEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`

	Name      string `json:"name"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	PitchType string `json:"pitch_type"`

	Subject   string `json:"subject"`
	Body      string `json:"body"`
	ModelUsed string `json:"model_used"`

	ContactID string  `json:"contact_id"`
	LeadID    *string `json:"lead_id"`
	CRMStatus string  `json:"crm_status"`
}

type EventPublisherInterface interface {
	PublishOutreach(ctx context.Context, event OutreachEvent) error
}

type DraftMailer interface {
	SendDraft(ctx context.Context, prospect entity.Prospect, pitchType string, msg entity.GeneratedMessage) error
}
