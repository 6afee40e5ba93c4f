package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const draftTemplate = `<html>
<body style="font-family: Arial, sans-serif;">
  <p><strong>{{.PitchType}}</strong> para {{.Name}} ({{.Title}} @ {{.Company}})</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <p>{{.Body}}</p>
  <hr>
  <p style="color: #888; font-size: 12px;">Gerado com {{.Model}}</p>
</body>
</html>`

var draft = template.Must(template.New("draft").Parse(draftTemplate))

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendDraft manda a mensagem gerada para a caixa do vendedor, pronta para copiar no LinkedIn.
func (s *EmailSender) SendDraft(ctx context.Context, p entity.Prospect, pitchType string, msg entity.GeneratedMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := renderDraft(DraftEmailData{
		Name:      p.Name,
		Title:     p.Title,
		Company:   p.Company,
		PitchType: pitchType,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Model:     msg.ModelUsed,
	})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("[Rascunho] %s - %s", p.Name, msg.Subject))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func renderDraft(data DraftEmailData) (string, error) {
	var body bytes.Buffer
	if err := draft.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}
