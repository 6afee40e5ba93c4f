package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultModel = "gpt-3.5-turbo"

var AvailableModels = []string{
	"gpt-3.5-turbo",
	"gpt-4",
	"gpt-4-turbo-preview",
	"gpt-4o",
	"gpt-4o-mini",
}

var (
	ErrPromptNotFound  = errors.New("prompt not found")
	ErrPromptNameTaken = errors.New("prompt name already exists")
	ErrLastPrompt      = errors.New("cannot delete the last prompt")
)

// Entidade: PromptTemplate
type PromptTemplate struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SystemPrompt string    `json:"system_prompt"`
	UserPrompt   string    `json:"user_prompt"` // placeholders {name}, {title}, {company}
	Model        string    `json:"model"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Factory
func NewPromptTemplate(name, systemPrompt, userPrompt, model string) (*PromptTemplate, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	p := &PromptTemplate{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Model:        model,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *PromptTemplate) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(p.SystemPrompt) == "" {
		return errors.New("system_prompt is required")
	}
	if strings.TrimSpace(p.UserPrompt) == "" {
		return errors.New("user_prompt is required")
	}
	return nil
}

// ModelOrDefault devolve o modelo configurado ou o padrão quando vazio.
func (p *PromptTemplate) ModelOrDefault() string {
	if strings.TrimSpace(p.Model) == "" {
		return DefaultModel
	}
	return p.Model
}

// PromptRepositoryInterface is the prompt store, backed by process memory or a table.
// Delete removes the template from List and FindByName; the table backing keeps the
// row with active=false. Delete refuses the last active template with ErrLastPrompt,
// checked atomically with the removal.
type PromptRepositoryInterface interface {
	List(ctx context.Context) ([]*PromptTemplate, error)
	FindByID(ctx context.Context, id string) (*PromptTemplate, error)
	FindByName(ctx context.Context, name string) (*PromptTemplate, error)
	Create(ctx context.Context, p *PromptTemplate) error
	Update(ctx context.Context, p *PromptTemplate) error
	Delete(ctx context.Context, id string) error
}

// DefaultPrompts returns fresh copies of the seeded templates.
func DefaultPrompts() []*PromptTemplate {
	seeds := []struct {
		name, system, user string
	}{
		{
			name:   "Cold Outreach",
			system: "You are a sales expert creating personalized cold outreach messages for LinkedIn Sales Navigator. Create engaging, professional messages that grab attention.",
			user: `Create a LinkedIn message for:
Name: {name}
Title: {title}
Company: {company}

Generate:
1. A compelling subject line (5-8 words)
2. A personalized message body (2-3 sentences, professional but friendly)

Focus on: Building initial connection and sparking interest.`,
		},
		{
			name:   "Follow-up",
			system: "You are a sales expert creating follow-up messages for LinkedIn Sales Navigator. Create messages that re-engage prospects professionally.",
			user: `Create a LinkedIn follow-up message for:
Name: {name}
Title: {title}
Company: {company}

Generate:
1. A compelling subject line (5-8 words)
2. A follow-up message body (2-3 sentences, acknowledging previous contact)

Focus on: Re-engaging and providing value.`,
		},
		{
			name:   "Product Demo",
			system: "You are a sales expert creating product demonstration invitation messages for LinkedIn Sales Navigator. Create messages that showcase value proposition.",
			user: `Create a LinkedIn product demo invitation for:
Name: {name}
Title: {title}
Company: {company}

Generate:
1. A compelling subject line (5-8 words)
2. A demo invitation message body (2-3 sentences, highlighting benefits)

Focus on: Demonstrating product value and scheduling demo.`,
		},
		{
			name:   "Partnership",
			system: "You are a sales expert creating partnership opportunity messages for LinkedIn Sales Navigator. Create messages that propose mutual business benefits.",
			user: `Create a LinkedIn partnership message for:
Name: {name}
Title: {title}
Company: {company}

Generate:
1. A compelling subject line (5-8 words)
2. A partnership proposal message body (2-3 sentences, highlighting mutual benefits)

Focus on: Proposing strategic partnership opportunities.`,
		},
	}

	prompts := make([]*PromptTemplate, 0, len(seeds))
	for _, s := range seeds {
		p, _ := NewPromptTemplate(s.name, s.system, s.user, DefaultModel)
		prompts = append(prompts, p)
	}
	return prompts
}
