package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type CRMHandler struct {
	SyncUC *usecase.SyncProspectUseCase
	NoteUC *usecase.AddNoteUseCase
	ListUC *usecase.ListCRMRecordsUseCase
}

func NewCRMHandler(sync *usecase.SyncProspectUseCase, notes *usecase.AddNoteUseCase, list *usecase.ListCRMRecordsUseCase) *CRMHandler {
	return &CRMHandler{
		SyncUC: sync,
		NoteUC: notes,
		ListUC: list,
	}
}

type SyncRequest struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	PitchType string `json:"pitch_type"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

type NoteRequest struct {
	Text string `json:"text"`
}

// HandleSync (POST /crm/sync)
func (h *CRMHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prospect, err := entity.NewProspect(req.Name, req.Title, req.Company)
	if err != nil {
		writeError(w, &usecase.DomainError{Code: usecase.CodeValidation, Message: err.Error()})
		return
	}

	result, err := h.SyncUC.Execute(r.Context(), usecase.SyncProspectInput{
		Prospect:  *prospect,
		PitchType: req.PitchType,
		Subject:   req.Subject,
		Body:      req.Body,
	})
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("hubspot")
		}
		writeError(w, err)
		return
	}

	middleware.RecordCRMSync(string(result.Status))
	writeJSON(w, http.StatusOK, result)
}

// HandleListContacts (GET /crm/contacts?limit=50)
func (h *CRMHandler) HandleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.ListUC.Contacts(r.Context(), queryLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if contacts == nil {
		contacts = []entity.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// HandleListLeads (GET /crm/leads?limit=50)
func (h *CRMHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListUC.Leads(r.Context(), queryLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

// HandleAddNote (POST /crm/contacts/{id}/notes)
func (h *CRMHandler) HandleAddNote(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.NoteUC.Execute(r.Context(), usecase.AddNoteInput{
		ContactID: chi.URLParam(r, "id"),
		Text:      req.Text,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordNoteCreated()
	writeJSON(w, http.StatusCreated, note)
}

func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
