package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeError traduz os erros dos use cases para status HTTP.
func writeError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	var ce *usecase.ConfigurationError
	var te *usecase.TechnicalError

	switch {
	case errors.As(err, &de):
		writeErrorResponse(w, domainStatus(de.Code), de.Code, de.Message)
	case errors.As(err, &ce):
		writeErrorResponse(w, http.StatusServiceUnavailable, "NOT_CONFIGURED", ce.Error())
	case errors.As(err, &te):
		log.Printf("❌ %s: %v", te.Code, err)
		status := http.StatusInternalServerError
		if te.Code == usecase.CodeCRM || te.Code == usecase.CodeContactNotFound {
			status = http.StatusBadGateway
		}
		writeErrorResponse(w, status, te.Code, te.Message)
	default:
		log.Printf("❌ Erro inesperado: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func domainStatus(code string) int {
	switch code {
	case usecase.CodePromptNotFound:
		return http.StatusNotFound
	case usecase.CodePromptNameTaken:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return false
	}
	return true
}
