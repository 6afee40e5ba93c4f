package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type GenerateMessageUseCase struct {
	Completion CompletionClient
}

func NewGenerateMessageUseCase(completion CompletionClient) *GenerateMessageUseCase {
	return &GenerateMessageUseCase{Completion: completion}
}

// Execute sempre devolve uma mensagem bem formada; falhas viram o sentinel de erro.
func (uc *GenerateMessageUseCase) Execute(ctx context.Context, prospect entity.Prospect, prompt entity.PromptTemplate) *entity.GeneratedMessage {
	if uc.Completion == nil {
		cfgErr := &ConfigurationError{Feature: "message generation", Missing: "OPENAI_API_KEY"}
		log.Printf("⚠️ Geração indisponível: %v", cfgErr)
		return entity.FailedMessage(cfgErr.Error())
	}

	userPrompt, err := FormatPrompt(prompt.UserPrompt, prospect.TemplateValues())
	if err != nil {
		log.Printf("❌ Template '%s' inválido: %v", prompt.Name, err)
		return entity.FailedMessage(err.Error())
	}

	model := prompt.ModelOrDefault()

	content, err := uc.Completion.Complete(ctx, CompletionRequest{
		Model:        model,
		SystemPrompt: prompt.SystemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    MaxOutputTokens,
		Temperature:  SamplingTemperature,
	})
	if err != nil {
		log.Printf("❌ Erro ao gerar mensagem (%s): %v", model, err)
		return entity.FailedMessage(err.Error())
	}

	subject, body := ParseCompletion(content)

	return &entity.GeneratedMessage{
		Subject:     subject,
		Body:        body,
		RawResponse: content,
		ModelUsed:   model,
	}
}
