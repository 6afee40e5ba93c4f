package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// ============ TESTES DO PARSER ============

func TestParseCompletion(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantSubject string
		wantBody    string
	}{
		{
			name:        "subject line followed by body",
			content:     "Subject: Quick question about Acme\n\nHi John, I saw your work on the data team.\nWould love to connect.",
			wantSubject: "Quick question about Acme",
			wantBody:    "Hi John, I saw your work on the data team. Would love to connect.",
		},
		{
			name:        "numbered list with quoted subject",
			content:     "1. Subject: \"Let's talk growth\"\n2. Message: Hi Jane, loved your last post.",
			wantSubject: "Let's talk growth",
			wantBody:    "Hi Jane, loved your last post.",
		},
		{
			name:        "label-only body heading is skipped",
			content:     "Subject Line: Hello there\nMessage Body:\nHi Bob,\nLet's chat.",
			wantSubject: "Hello there",
			wantBody:    "Hi Bob, Let's chat.",
		},
		{
			name:        "markdown heading before body",
			content:     "Subject: Partnership idea\n\n**Message**\nHi Ana, our teams could build something great together.",
			wantSubject: "Partnership idea",
			wantBody:    "Hi Ana, our teams could build something great together.",
		},
		{
			name:        "first subject-like line wins",
			content:     "Subject: First\nBody text here.\nSubject: Second",
			wantSubject: "First",
			wantBody:    "Body text here. Subject: Second",
		},
		{
			name:        "split on 2. when the subject line has no body",
			content:     "Here is your subject and message. 2. Body goes here",
			wantSubject: "Here is your subject and message.",
			wantBody:    "Body goes here",
		},
		{
			name:        "no markers falls back to default subject",
			content:     "Just a plain note without structure",
			wantSubject: entity.FallbackSubject,
			wantBody:    "Just a plain note without structure",
		},
		{
			name:        "subject and message words without 2. fall back",
			content:     "Subject and message pending",
			wantSubject: entity.FallbackSubject,
			wantBody:    "Subject and message pending",
		},
		{
			name:        "subject on the last line falls back",
			content:     "Hello there\nSubject: Hi",
			wantSubject: entity.FallbackSubject,
			wantBody:    "Hello there\nSubject: Hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := ParseCompletion(tt.content)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

// TestParseCompletionSubjectAfterFirstColon - Teste que o assunto é o texto depois do primeiro ':'
func TestParseCompletionSubjectAfterFirstColon(t *testing.T) {
	subjects := []string{
		"Meeting at 10:30?",
		"Re: your launch",
		"Scaling Acme: a quick idea",
	}

	for _, s := range subjects {
		subject, _ := ParseCompletion("Subject: " + s + "\nHi there, short note.")
		assert.Equal(t, s, subject)

		subject, _ = ParseCompletion("SUBJECT:   \"" + s + "\"  \nHi there, short note.")
		assert.Equal(t, s, subject)
	}
}

func TestParseCompletionIsIdempotent(t *testing.T) {
	inputs := []string{
		"Subject: Hello\nMessage: Hi there",
		"1. Subject: \"Quoted\"\n2. Message: body",
		"Here is your subject and message. 2. Body goes here",
		"nothing to see",
		"",
	}

	for _, in := range inputs {
		s1, b1 := ParseCompletion(in)
		s2, b2 := ParseCompletion(in)
		assert.Equal(t, s1, s2)
		assert.Equal(t, b1, b2)
	}
}

func TestParseCompletionNeverReturnsEmptySubject(t *testing.T) {
	inputs := []string{"", "\n\n", "subject", "message", "2.", "Subject:\nMessage:"}

	for _, in := range inputs {
		subject, _ := ParseCompletion(in)
		assert.NotEmpty(t, subject, "input %q", in)
	}
}
