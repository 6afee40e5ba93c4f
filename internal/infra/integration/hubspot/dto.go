package hubspot

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateContact é devolvido quando o CRM recusa o contato por valor duplicado.
var ErrDuplicateContact = errors.New("hubspot: contact already exists")

// APIError carries the status and body of a rejected call.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubspot: %s: %d - %s", e.Operation, e.StatusCode, e.Body)
}

type objectInput struct {
	Properties   map[string]string   `json:"properties"`
	Associations []associationInput `json:"associations,omitempty"`
}

type associationInput struct {
	To    associationTarget `json:"to"`
	Types []associationType `json:"types"`
}

type associationTarget struct {
	ID string `json:"id"`
}

type associationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}

type object struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
	Archived   bool              `json:"archived"`
}

type objectPage struct {
	Results []object `json:"results"`
}

type searchRequest struct {
	Query        string        `json:"query"`
	Limit        int           `json:"limit"`
	After        int           `json:"after"`
	Sorts        []searchSort  `json:"sorts"`
	Properties   []string      `json:"properties"`
	FilterGroups []filterGroup `json:"filterGroups"`
}

// filterGroup é OR entre grupos, AND entre filtros do grupo. A busca por nome não usa filtros.
type filterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value,omitempty"`
}

type searchSort struct {
	PropertyName string `json:"propertyName"`
	Direction    string `json:"direction"`
}

type errorResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

func parseTimestamp(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil
	}
	return &t
}
