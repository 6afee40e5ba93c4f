package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailedMessage(t *testing.T) {
	m := FailedMessage("quota exceeded")

	assert.Equal(t, "Error generating subject", m.Subject)
	assert.Equal(t, "Error generating message body", m.Body)
	assert.Equal(t, "quota exceeded", m.RawResponse)
	assert.Equal(t, "error", m.ModelUsed)
	assert.True(t, m.IsFailed())
}

func TestIsFailed(t *testing.T) {
	var nilMsg *GeneratedMessage
	assert.True(t, nilMsg.IsFailed())

	ok := &GeneratedMessage{Subject: "Hello", Body: "World", ModelUsed: DefaultModel}
	assert.False(t, ok.IsFailed())
}

func TestSyncResultPartial(t *testing.T) {
	assert.False(t, (&SyncResult{Status: SyncStatusSuccess}).Partial())
	assert.False(t, (&SyncResult{Status: SyncStatusUpdated}).Partial())
	assert.True(t, (&SyncResult{Status: SyncStatusAssociationFailed}).Partial())
	assert.True(t, (&SyncResult{Status: SyncStatusLeadCreationFailed}).Partial())
	assert.True(t, (&SyncResult{Status: SyncStatusContactUpdatedLeadFailed}).Partial())
}

func TestContactName(t *testing.T) {
	assert.Equal(t, "John Smith", (&Contact{FirstName: "John", LastName: "Smith"}).Name())
	assert.Equal(t, "Cher", (&Contact{FirstName: "Cher"}).Name())
	assert.Equal(t, "Smith", (&Contact{LastName: "Smith"}).Name())
}
