package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// outreachTemplate wraps the AI-drafted body. The draft is plain text written
// for the client; only a discreet signature is appended.
var outreachTemplate = template.Must(template.New("outreach").Parse(`{{.Body}}

—
Elysian Estates · Private Client Desk
This correspondence is confidential and intended only for {{.Name}}.
`))

type outreachEmailData struct {
	Name string
	Body string
}

func (s *EmailSender) SendOutreach(to, name, subject, body string) error {
	var rendered bytes.Buffer
	if err := outreachTemplate.Execute(&rendered, outreachEmailData{Name: name, Body: body}); err != nil {
		return fmt.Errorf("render outreach email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", rendered.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}
