package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// ============ TESTES DA GERAÇÃO ============

var (
	testProspect = entity.Prospect{Name: "John Smith", Title: "CTO", Company: "Acme"}
	testPrompt   = entity.PromptTemplate{
		Name:         "Cold Outreach",
		SystemPrompt: "You are a sales expert.",
		UserPrompt:   "Write to {name}, {title} at {company}.",
		Model:        "gpt-4o",
	}
)

func TestGenerateMessage_Success(t *testing.T) {
	completion := new(MockCompletionClient)
	completion.On("Complete", mock.Anything, CompletionRequest{
		Model:        "gpt-4o",
		SystemPrompt: "You are a sales expert.",
		UserPrompt:   "Write to John Smith, CTO at Acme.",
		MaxTokens:    300,
		Temperature:  0.7,
	}).Return("Subject: Hello John\nMessage: Loved what Acme is doing.", nil)

	uc := NewGenerateMessageUseCase(completion)
	msg := uc.Execute(context.Background(), testProspect, testPrompt)

	assert.False(t, msg.IsFailed())
	assert.Equal(t, "Hello John", msg.Subject)
	assert.Equal(t, "Loved what Acme is doing.", msg.Body)
	assert.Equal(t, "gpt-4o", msg.ModelUsed)
	assert.Equal(t, "Subject: Hello John\nMessage: Loved what Acme is doing.", msg.RawResponse)
	completion.AssertExpectations(t)
}

func TestGenerateMessage_DefaultModel(t *testing.T) {
	completion := new(MockCompletionClient)
	completion.On("Complete", mock.Anything, mock.MatchedBy(func(req CompletionRequest) bool {
		return req.Model == entity.DefaultModel
	})).Return("Subject: Hi\nBody text", nil)

	prompt := testPrompt
	prompt.Model = ""

	msg := NewGenerateMessageUseCase(completion).Execute(context.Background(), testProspect, prompt)

	assert.Equal(t, entity.DefaultModel, msg.ModelUsed)
	completion.AssertExpectations(t)
}

// TestGenerateMessage_APIError - Teste que erro da API vira o sentinel, sem retry
func TestGenerateMessage_APIError(t *testing.T) {
	completion := new(MockCompletionClient)
	completion.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("429 quota exceeded")).Once()

	msg := NewGenerateMessageUseCase(completion).Execute(context.Background(), testProspect, testPrompt)

	assert.True(t, msg.IsFailed())
	assert.Equal(t, entity.ErrorSubject, msg.Subject)
	assert.Equal(t, entity.ErrorBody, msg.Body)
	assert.Equal(t, entity.ErrorModel, msg.ModelUsed)
	assert.Contains(t, msg.RawResponse, "429 quota exceeded")
	completion.AssertNumberOfCalls(t, "Complete", 1)
}

func TestGenerateMessage_NotConfigured(t *testing.T) {
	msg := NewGenerateMessageUseCase(nil).Execute(context.Background(), testProspect, testPrompt)

	assert.True(t, msg.IsFailed())
	assert.Contains(t, msg.RawResponse, "OPENAI_API_KEY")
}

func TestGenerateMessage_TemplateError(t *testing.T) {
	completion := new(MockCompletionClient)

	prompt := testPrompt
	prompt.UserPrompt = "Write to {first_name}"

	msg := NewGenerateMessageUseCase(completion).Execute(context.Background(), testProspect, prompt)

	assert.True(t, msg.IsFailed())
	assert.Contains(t, msg.RawResponse, "first_name")
	completion.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}
