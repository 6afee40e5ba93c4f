package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type PromptInput struct {
	Name         string `json:"name"`
	SystemPrompt string `json:"system_prompt"`
	UserPrompt   string `json:"user_prompt"`
	Model        string `json:"model"`
}

type ManagePromptsUseCase struct {
	Repo entity.PromptRepositoryInterface
}

func NewManagePromptsUseCase(repo entity.PromptRepositoryInterface) *ManagePromptsUseCase {
	return &ManagePromptsUseCase{Repo: repo}
}

func (uc *ManagePromptsUseCase) List(ctx context.Context) ([]*entity.PromptTemplate, error) {
	prompts, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, storageFailure("error listing prompts", err)
	}
	return prompts, nil
}

// Resolve encontra o template do tipo de pitch pedido.
func (uc *ManagePromptsUseCase) Resolve(ctx context.Context, pitchType string) (*entity.PromptTemplate, error) {
	p, err := uc.Repo.FindByName(ctx, strings.TrimSpace(pitchType))
	if errors.Is(err, entity.ErrPromptNotFound) {
		return nil, &DomainError{Code: CodeUnknownPitchType, Message: "unknown pitch type: " + pitchType}
	}
	if err != nil {
		return nil, storageFailure("error loading prompt", err)
	}
	return p, nil
}

func (uc *ManagePromptsUseCase) Create(ctx context.Context, input PromptInput) (*entity.PromptTemplate, error) {
	if errs := ValidatePromptInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	if err := uc.ensureNameFree(ctx, input.Name, ""); err != nil {
		return nil, err
	}

	p, err := entity.NewPromptTemplate(input.Name, input.SystemPrompt, input.UserPrompt, input.Model)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, p); err != nil {
		if errors.Is(err, entity.ErrPromptNameTaken) {
			return nil, nameTaken(p.Name)
		}
		return nil, storageFailure("error creating prompt", err)
	}

	log.Printf("📝 Prompt criado: %s (%s)", p.Name, p.Model)
	return p, nil
}

// Update altera o template; renomear só é permitido se o novo nome estiver livre.
func (uc *ManagePromptsUseCase) Update(ctx context.Context, id string, input PromptInput) (*entity.PromptTemplate, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := ValidatePromptInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	name := strings.TrimSpace(input.Name)
	if name != p.Name {
		if err := uc.ensureNameFree(ctx, name, p.ID); err != nil {
			return nil, err
		}
	}

	p.Name = name
	p.SystemPrompt = input.SystemPrompt
	p.UserPrompt = input.UserPrompt
	if strings.TrimSpace(input.Model) != "" {
		p.Model = input.Model
	}
	p.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, entity.ErrPromptNameTaken) {
			return nil, nameTaken(p.Name)
		}
		return nil, storageFailure("error updating prompt", err)
	}

	return p, nil
}

// Delete recusa remover o último template; a checagem é feita pelo store junto com a remoção.
func (uc *ManagePromptsUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.find(ctx, id)
	if err != nil {
		return err
	}

	switch err := uc.Repo.Delete(ctx, p.ID); {
	case errors.Is(err, entity.ErrLastPrompt):
		return &DomainError{Code: CodeLastPrompt, Message: "cannot delete the last prompt"}
	case errors.Is(err, entity.ErrPromptNotFound):
		return &DomainError{Code: CodePromptNotFound, Message: "prompt not found: " + id}
	case err != nil:
		return storageFailure("error deleting prompt", err)
	}

	log.Printf("🗑️ Prompt removido: %s", p.Name)
	return nil
}

// ResetDefaults volta aos quatro templates padrão. Os padrões são gravados antes da remoção
// dos demais, então o store nunca fica vazio.
func (uc *ManagePromptsUseCase) ResetDefaults(ctx context.Context) ([]*entity.PromptTemplate, error) {
	defaults := entity.DefaultPrompts()
	keep := make(map[string]bool, len(defaults))

	for _, d := range defaults {
		existing, err := uc.Repo.FindByName(ctx, d.Name)
		switch {
		case errors.Is(err, entity.ErrPromptNotFound):
			if err := uc.Repo.Create(ctx, d); err != nil {
				return nil, storageFailure("error seeding prompt", err)
			}
			keep[d.ID] = true

		case err != nil:
			return nil, storageFailure("error loading prompt", err)

		default:
			existing.SystemPrompt = d.SystemPrompt
			existing.UserPrompt = d.UserPrompt
			existing.Model = d.Model
			existing.UpdatedAt = time.Now()
			if err := uc.Repo.Update(ctx, existing); err != nil {
				return nil, storageFailure("error resetting prompt", err)
			}
			keep[existing.ID] = true
		}
	}

	current, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, storageFailure("error listing prompts", err)
	}

	for _, p := range current {
		if keep[p.ID] {
			continue
		}
		if err := uc.Repo.Delete(ctx, p.ID); err != nil {
			return nil, storageFailure("error deleting prompt", err)
		}
	}

	log.Println("🔄 Prompts restaurados para o padrão")
	return uc.List(ctx)
}

func (uc *ManagePromptsUseCase) find(ctx context.Context, id string) (*entity.PromptTemplate, error) {
	p, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrPromptNotFound) {
		return nil, &DomainError{Code: CodePromptNotFound, Message: "prompt not found: " + id}
	}
	if err != nil {
		return nil, storageFailure("error loading prompt", err)
	}
	return p, nil
}

func (uc *ManagePromptsUseCase) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := uc.Repo.FindByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, entity.ErrPromptNotFound) {
		return nil
	}
	if err != nil {
		return storageFailure("error checking prompt name", err)
	}
	if existing.ID == selfID {
		return nil
	}
	return nameTaken(name)
}

func nameTaken(name string) *DomainError {
	return &DomainError{Code: CodePromptNameTaken, Message: "prompt name '" + name + "' already exists"}
}

func storageFailure(msg string, err error) *TechnicalError {
	return &TechnicalError{Code: CodeStorage, Message: msg + ": " + err.Error(), Err: err}
}
