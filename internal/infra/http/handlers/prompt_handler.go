package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type PromptHandler struct {
	PromptsUC *usecase.ManagePromptsUseCase
}

func NewPromptHandler(uc *usecase.ManagePromptsUseCase) *PromptHandler {
	return &PromptHandler{PromptsUC: uc}
}

type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

// HandleList (GET /prompts)
func (h *PromptHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.PromptsUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prompts)
}

// HandleCreate (POST /prompts)
func (h *PromptHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.PromptInput
	if !decodeJSON(w, r, &input) {
		return
	}

	p, err := h.PromptsUC.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// HandleUpdate (PUT /prompts/{id})
func (h *PromptHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.PromptInput
	if !decodeJSON(w, r, &input) {
		return
	}

	p, err := h.PromptsUC.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleDelete (DELETE /prompts/{id})
func (h *PromptHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PromptsUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReset (POST /prompts/reset)
func (h *PromptHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.PromptsUC.ResetDefaults(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prompts)
}

// HandleModels (GET /models)
func (h *PromptHandler) HandleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ModelsResponse{
		Models:  entity.AvailableModels,
		Default: entity.DefaultModel,
	})
}
