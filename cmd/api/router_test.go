package main

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func testRouter(passwordHash string) http.Handler {
	prompts := usecase.NewManagePromptsUseCase(database.NewMemoryPromptRepository(entity.DefaultPrompts()))
	sync := usecase.NewSyncProspectUseCase(nil)
	outreach := usecase.NewOutreachUseCase(prompts, usecase.NewGenerateMessageUseCase(nil), sync, nil, nil)

	return newRouter(routerDeps{
		AllowedOrigins: []string{"http://localhost:5173"},
		PasswordHash:   passwordHash,
		Outreach:       handlers.NewOutreachHandler(outreach),
		CRM:            handlers.NewCRMHandler(sync, usecase.NewAddNoteUseCase(nil), usecase.NewListCRMRecordsUseCase(nil)),
		Prompts:        handlers.NewPromptHandler(prompts),
		Health:         handlers.NewHealthHandler(nil, nil, nil),
	})
}

func TestRouter_PasswordGate(t *testing.T) {
	sum := sha256.Sum256([]byte("s3cret"))
	router := testRouter(hex.EncodeToString(sum[:]))

	tests := []struct {
		path     string
		password string
		status   int
	}{
		{"/health", "", http.StatusOK},
		{"/metrics", "", http.StatusOK},
		{"/prompts", "", http.StatusUnauthorized},
		{"/prompts", "wrong", http.StatusUnauthorized},
		{"/prompts", "s3cret", http.StatusOK},
		{"/models", "s3cret", http.StatusOK},
		{"/crm/contacts", "s3cret", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.password, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.password != "" {
				req.Header.Set(middleware.PasswordHeader, tt.password)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_NoPasswordHashLocksEverything(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/prompts", nil)
	req.Header.Set(middleware.PasswordHeader, "anything")
	rec := httptest.NewRecorder()

	testRouter("").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
