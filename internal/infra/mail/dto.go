package mail

type DraftEmailData struct {
	Name      string
	Title     string
	Company   string
	PitchType string
	Subject   string
	Body      string
	Model     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}
