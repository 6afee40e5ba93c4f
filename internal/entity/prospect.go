package entity

import (
	"errors"
	"strings"
)

// Entidade: Prospect (transiente, espelhado no CRM como Contact)
type Prospect struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

func NewProspect(name, title, company string) (*Prospect, error) {
	p := &Prospect{
		Name:    strings.TrimSpace(name),
		Title:   strings.TrimSpace(title),
		Company: strings.TrimSpace(company),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Prospect) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(p.Company) == "" {
		return errors.New("company is required")
	}
	return nil
}

// SplitName separa "John Smith" em ("John", "Smith"); nomes de uma palavra ficam sem sobrenome.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// FullName is the search query used to locate an existing contact.
func (p *Prospect) FullName() string {
	first, last := SplitName(p.Name)
	return strings.TrimSpace(first + " " + last)
}

// TemplateValues are the placeholder values for a prompt's user template.
func (p *Prospect) TemplateValues() map[string]string {
	return map[string]string{
		"name":    p.Name,
		"title":   p.Title,
		"company": p.Company,
	}
}
