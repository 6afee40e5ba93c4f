package usecase

import "github.com/xavierca1/ligue-outreach/internal/entity"

type OutreachInput struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	PitchType string `json:"pitch_type"`
}

type OutreachOutput struct {
	Message   *entity.GeneratedMessage `json:"message"`
	Generated bool                     `json:"generated"`
	CRM       *entity.SyncResult       `json:"crm"`
	CRMError  string                   `json:"crm_error,omitempty"`
	Published bool                     `json:"published"`
	Emailed   bool                     `json:"emailed"`
	Msg       string                   `json:"msg"`
}

type GenerateInput struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	PitchType string `json:"pitch_type"`
}
