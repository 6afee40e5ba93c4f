package entity

const (
	ErrorSubject    = "Error generating subject"
	ErrorBody       = "Error generating message body"
	ErrorModel      = "error"
	FallbackSubject = "Follow up on LinkedIn"
)

// GeneratedMessage is derived per request and never persisted.
type GeneratedMessage struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	RawResponse string `json:"raw_response"`
	ModelUsed   string `json:"model_used"`
}

// FailedMessage is the sentinel returned when generation could not reach the model.
func FailedMessage(reason string) *GeneratedMessage {
	return &GeneratedMessage{
		Subject:     ErrorSubject,
		Body:        ErrorBody,
		RawResponse: reason,
		ModelUsed:   ErrorModel,
	}
}

// IsFailed reports whether m is the generation-failure sentinel.
func (m *GeneratedMessage) IsFailed() bool {
	return m == nil || m.Subject == ErrorSubject
}
