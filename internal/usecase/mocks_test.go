package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// MockCompletionClient
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockCRMGateway
type MockCRMGateway struct {
	mock.Mock
}

func (m *MockCRMGateway) CreateContact(ctx context.Context, properties map[string]string) (string, error) {
	args := m.Called(ctx, properties)
	return args.String(0), args.Error(1)
}

func (m *MockCRMGateway) UpdateContact(ctx context.Context, contactID string, properties map[string]string) error {
	args := m.Called(ctx, contactID, properties)
	return args.Error(0)
}

func (m *MockCRMGateway) SearchContacts(ctx context.Context, query string, limit int) ([]entity.Contact, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockCRMGateway) ListContacts(ctx context.Context, limit int) ([]entity.Contact, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockCRMGateway) CreateLead(ctx context.Context, properties map[string]string) (string, error) {
	args := m.Called(ctx, properties)
	return args.String(0), args.Error(1)
}

func (m *MockCRMGateway) AssociateLeadToContact(ctx context.Context, leadID, contactID string) error {
	args := m.Called(ctx, leadID, contactID)
	return args.Error(0)
}

func (m *MockCRMGateway) ListLeads(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockCRMGateway) CreateNote(ctx context.Context, contactID, text string, at time.Time) (string, error) {
	args := m.Called(ctx, contactID, text, at)
	return args.String(0), args.Error(1)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOutreach(ctx context.Context, event OutreachEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockDraftMailer
type MockDraftMailer struct {
	mock.Mock
}

func (m *MockDraftMailer) SendDraft(ctx context.Context, prospect entity.Prospect, pitchType string, msg entity.GeneratedMessage) error {
	args := m.Called(ctx, prospect, pitchType, msg)
	return args.Error(0)
}

// MockPromptRepository
type MockPromptRepository struct {
	mock.Mock
}

func (m *MockPromptRepository) List(ctx context.Context) ([]*entity.PromptTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PromptTemplate), args.Error(1)
}

func (m *MockPromptRepository) FindByID(ctx context.Context, id string) (*entity.PromptTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PromptTemplate), args.Error(1)
}

func (m *MockPromptRepository) FindByName(ctx context.Context, name string) (*entity.PromptTemplate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PromptTemplate), args.Error(1)
}

func (m *MockPromptRepository) Create(ctx context.Context, p *entity.PromptTemplate) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPromptRepository) Update(ctx context.Context, p *entity.PromptTemplate) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPromptRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
