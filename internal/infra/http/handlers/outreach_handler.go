package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type OutreachHandler struct {
	OutreachUC *usecase.OutreachUseCase
}

func NewOutreachHandler(uc *usecase.OutreachUseCase) *OutreachHandler {
	return &OutreachHandler{OutreachUC: uc}
}

type MessageResponse struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	ModelUsed string `json:"model_used"`
	Generated bool   `json:"generated"`
}

// Handle (POST /outreach): gera, sincroniza no CRM e publica.
func (h *OutreachHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.OutreachInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.OutreachUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	recordMessage(output.Message)
	if output.CRM != nil {
		middleware.RecordCRMSync(string(output.CRM.Status))
	} else if output.Generated {
		middleware.RecordIntegrationError("hubspot")
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleGenerate (POST /messages): só gera a mensagem, sem CRM.
func (h *OutreachHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateInput
	if !decodeJSON(w, r, &input) {
		return
	}

	_, msg, err := h.OutreachUC.Generate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	recordMessage(msg)
	writeJSON(w, http.StatusOK, MessageResponse{
		Subject:   msg.Subject,
		Body:      msg.Body,
		ModelUsed: msg.ModelUsed,
		Generated: !msg.IsFailed(),
	})
}

func recordMessage(msg *entity.GeneratedMessage) {
	if msg == nil {
		return
	}
	if msg.IsFailed() {
		middleware.RecordMessageGenerated(msg.ModelUsed, "failed")
		middleware.RecordIntegrationError("openai")
		return
	}
	middleware.RecordMessageGenerated(msg.ModelUsed, "ok")
}
