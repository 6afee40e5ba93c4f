package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

func TestListCRMRecords_Contacts(t *testing.T) {
	crm := new(MockCRMGateway)
	crm.On("ListContacts", mock.Anything, 50).Return([]entity.Contact{{ID: "c1"}, {ID: "c2"}}, nil)

	contacts, err := NewListCRMRecordsUseCase(crm).Contacts(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, contacts, 2)
	crm.AssertExpectations(t)
}

func TestListCRMRecords_LeadsLimitCapped(t *testing.T) {
	crm := new(MockCRMGateway)
	crm.On("ListLeads", mock.Anything, 100).Return([]entity.Lead{{ID: "l1"}}, nil)

	leads, err := NewListCRMRecordsUseCase(crm).Leads(context.Background(), 500)

	require.NoError(t, err)
	assert.Equal(t, "l1", leads[0].ID)
	crm.AssertExpectations(t)
}

func TestListCRMRecords_Errors(t *testing.T) {
	crm := new(MockCRMGateway)
	crm.On("ListLeads", mock.Anything, 10).Return(nil, errors.New("401"))

	_, err := NewListCRMRecordsUseCase(crm).Leads(context.Background(), 10)
	assert.True(t, IsTechnicalError(err))

	_, err = NewListCRMRecordsUseCase(nil).Contacts(context.Background(), 10)
	assert.True(t, IsConfigurationError(err))
}
