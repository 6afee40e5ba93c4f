package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	DefaultBaseURL = "https://api.hubapi.com"

	// HUBSPOT_DEFINED note → contact
	noteToContactAssociationType = 202
	leadToContactAssociation     = "lead_to_contact"
)

var contactListProperties = []string{
	"firstname", "lastname", "company", "jobtitle", "createdate", "notes_last_updated", "last_contact_date",
}

var leadListProperties = []string{
	"firstname", "lastname", "company", "jobtitle", "pitch_type", "last_message_subject", "hs_lead_status", "createdate",
}

type Client struct {
	apiToken string
	baseURL  string
	http     *http.Client
}

func NewClient(apiToken, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiToken: apiToken,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     http.DefaultClient,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.apiToken != ""
}

// CreateContact cria o contato e devolve o ID remoto. Duplicidade vira ErrDuplicateContact.
func (c *Client) CreateContact(ctx context.Context, properties map[string]string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", objectInput{Properties: properties})
	if err != nil {
		return "", err
	}

	if isDuplicate(status, body) {
		return "", fmt.Errorf("%w: %s", ErrDuplicateContact, errorMessage(body))
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return "", &APIError{Operation: "create contact", StatusCode: status, Body: string(body)}
	}

	var result object
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("hubspot: decode contact: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("hubspot: contact created without id")
	}

	log.Printf("✅ HubSpot: Novo contato criado: %s", result.ID)
	return result.ID, nil
}

func (c *Client) UpdateContact(ctx context.Context, contactID string, properties map[string]string) error {
	status, body, err := c.do(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+url.PathEscape(contactID), objectInput{Properties: properties})
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return &APIError{Operation: "update contact", StatusCode: status, Body: string(body)}
	}
	return nil
}

// SearchContacts busca por texto livre, mais recentes primeiro.
func (c *Client) SearchContacts(ctx context.Context, query string, limit int) ([]entity.Contact, error) {
	req := searchRequest{
		Query:        query,
		Limit:        limit,
		After:        0,
		Sorts:        []searchSort{{PropertyName: "createdate", Direction: "DESCENDING"}},
		Properties:   []string{"firstname", "lastname", "company", "jobtitle"},
		FilterGroups: []filterGroup{},
	}

	status, body, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", req)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, &APIError{Operation: "search contacts", StatusCode: status, Body: string(body)}
	}

	var page objectPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("hubspot: decode search: %w", err)
	}

	contacts := make([]entity.Contact, 0, len(page.Results))
	for _, o := range page.Results {
		contacts = append(contacts, contactFromObject(o))
	}
	return contacts, nil
}

// ListContacts lists the first page of contacts sorted newest first.
func (c *Client) ListContacts(ctx context.Context, limit int) ([]entity.Contact, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("properties", strings.Join(contactListProperties, ","))

	status, body, err := c.do(ctx, http.MethodGet, "/crm/v3/objects/contacts?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, &APIError{Operation: "list contacts", StatusCode: status, Body: string(body)}
	}

	var page objectPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("hubspot: decode contacts: %w", err)
	}

	contacts := make([]entity.Contact, 0, len(page.Results))
	for _, o := range page.Results {
		contacts = append(contacts, contactFromObject(o))
	}

	// A API não ordena a listagem básica.
	sort.SliceStable(contacts, func(a, b int) bool {
		ca, cb := contacts[a].CreatedAt, contacts[b].CreatedAt
		if ca == nil || cb == nil {
			return ca != nil
		}
		return ca.After(*cb)
	})
	return contacts, nil
}

// CreateLead exige 201; qualquer outro status é falha.
func (c *Client) CreateLead(ctx context.Context, properties map[string]string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/leads", objectInput{Properties: properties})
	if err != nil {
		return "", err
	}

	if status != http.StatusCreated {
		return "", &APIError{Operation: "create lead", StatusCode: status, Body: string(body)}
	}

	var result object
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("hubspot: decode lead: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("hubspot: lead created without id")
	}

	log.Printf("✅ HubSpot: Lead criado #%s", result.ID)
	return result.ID, nil
}

func (c *Client) AssociateLeadToContact(ctx context.Context, leadID, contactID string) error {
	path := fmt.Sprintf("/crm/v3/objects/leads/%s/associations/contacts/%s/%s",
		url.PathEscape(leadID), url.PathEscape(contactID), leadToContactAssociation)

	status, body, err := c.do(ctx, http.MethodPut, path, nil)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return &APIError{Operation: "associate lead", StatusCode: status, Body: string(body)}
	}
	return nil
}

func (c *Client) ListLeads(ctx context.Context, limit int) ([]entity.Lead, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("properties", strings.Join(leadListProperties, ","))
	q.Set("sorts", "createdate:desc")

	status, body, err := c.do(ctx, http.MethodGet, "/crm/v3/objects/leads?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, &APIError{Operation: "list leads", StatusCode: status, Body: string(body)}
	}

	var page objectPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("hubspot: decode leads: %w", err)
	}

	leads := make([]entity.Lead, 0, len(page.Results))
	for _, o := range page.Results {
		leads = append(leads, leadFromObject(o))
	}
	return leads, nil
}

// CreateNote cria a nota já associada ao contato.
func (c *Client) CreateNote(ctx context.Context, contactID, text string, at time.Time) (string, error) {
	input := objectInput{
		Properties: map[string]string{
			"hs_note_body": text,
			"hs_timestamp": strconv.FormatInt(at.UnixMilli(), 10),
		},
		Associations: []associationInput{
			{
				To: associationTarget{ID: contactID},
				Types: []associationType{
					{AssociationCategory: "HUBSPOT_DEFINED", AssociationTypeID: noteToContactAssociationType},
				},
			},
		},
	}

	status, body, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/notes", input)
	if err != nil {
		return "", err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return "", &APIError{Operation: "create note", StatusCode: status, Body: string(body)}
	}

	var result object
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("hubspot: decode note: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("hubspot: note created without id")
	}

	return result.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("hubspot: encode payload: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("hubspot: build request: %w", err)
	}
	c.addAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("hubspot: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("hubspot: read response: %w", err)
	}

	return resp.StatusCode, body, nil
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func isDuplicate(status int, body []byte) bool {
	if status == http.StatusConflict {
		return true
	}
	if status < 400 {
		return false
	}
	s := string(body)
	return strings.Contains(s, "Contact already exists") || strings.Contains(s, "DUPLICATE_VALUE")
}

func errorMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(body)
}

func contactFromObject(o object) entity.Contact {
	p := o.Properties
	created := parseTimestamp(p["createdate"])
	if created == nil {
		created = parseTimestamp(o.CreatedAt)
	}
	return entity.Contact{
		ID:             o.ID,
		FirstName:      p["firstname"],
		LastName:       p["lastname"],
		JobTitle:       p["jobtitle"],
		Company:        p["company"],
		LifecycleStage: p["lifecyclestage"],
		LeadStatus:     p["hs_lead_status"],
		CreatedAt:      created,
		LastContact:    p["last_contact_date"],
		NotesUpdated:   p["notes_last_updated"],
	}
}

func leadFromObject(o object) entity.Lead {
	p := o.Properties
	created := parseTimestamp(p["createdate"])
	if created == nil {
		created = parseTimestamp(o.CreatedAt)
	}
	return entity.Lead{
		ID:                 o.ID,
		FirstName:          p["firstname"],
		LastName:           p["lastname"],
		JobTitle:           p["jobtitle"],
		Company:            p["company"],
		LeadStatus:         p["hs_lead_status"],
		PitchType:          p["pitch_type"],
		LastMessageSubject: p["last_message_subject"],
		LastMessageBody:    p["last_message_body"],
		CreatedAt:          created,
	}
}
