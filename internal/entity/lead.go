package entity

import (
	"time"
)

const (
	LifecycleStageLead = "lead"

	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
)

// Contact espelha o objeto "contacts" do CRM (dono externo, chave = ID remoto).
type Contact struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstname"`
	LastName       string     `json:"lastname"`
	JobTitle       string     `json:"jobtitle"`
	Company        string     `json:"company"`
	LifecycleStage string     `json:"lifecyclestage,omitempty"`
	LeadStatus     string     `json:"hs_lead_status,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	LastContact    string     `json:"last_contact,omitempty"`
	NotesUpdated   string     `json:"notes_updated,omitempty"`
}

func (c *Contact) Name() string {
	if c.LastName == "" {
		return c.FirstName
	}
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}

// Lead is one outreach interaction; a new one is created on every sync.
type Lead struct {
	ID                 string     `json:"id"`
	FirstName          string     `json:"firstname"`
	LastName           string     `json:"lastname"`
	JobTitle           string     `json:"jobtitle"`
	Company            string     `json:"company"`
	LeadStatus         string     `json:"hs_lead_status"`
	PitchType          string     `json:"pitch_type"`
	LastMessageSubject string     `json:"last_message_subject"`
	LastMessageBody    string     `json:"last_message_body,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
}

type Note struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

type SyncStatus string

const (
	SyncStatusSuccess                  SyncStatus = "success"
	SyncStatusUpdated                  SyncStatus = "updated"
	SyncStatusAssociationFailed        SyncStatus = "association_failed"
	SyncStatusLeadCreationFailed       SyncStatus = "lead_creation_failed"
	SyncStatusContactUpdatedLeadFailed SyncStatus = "contact_updated_lead_failed"
)

// SyncResult is the terminal state of one CRM reconciliation.
type SyncResult struct {
	ContactID string     `json:"contact_id"`
	LeadID    *string    `json:"lead_id"`
	Status    SyncStatus `json:"status"`
}

func (r *SyncResult) Partial() bool {
	return r.Status != SyncStatusSuccess && r.Status != SyncStatusUpdated
}
