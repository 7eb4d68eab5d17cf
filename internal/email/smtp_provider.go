package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP server configuration.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer *TemplateManager
}

// NewSMTPProvider creates the SMTP provider.
func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", config.Port)
	}

	renderer, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}, nil
}

// Send delivers a prepared message.
func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	if p.config.FromName != "" {
		from = m.FormatAddress(from, p.config.FromName)
	}

	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

// SendWithTemplate renders templateName and delivers the result.
func (p *SMTPProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	email.HTMLBody = htmlBody
	return p.Send(email)
}

// SendWelcome sends the post-registration welcome message.
func (p *SMTPProvider) SendWelcome(to string, fullName string) error {
	return p.SendWithTemplate("welcome", TemplateData{"FullName": fullName}, &Email{
		To:      []string{to},
		Subject: "¡Bienvenido a la plataforma de investigaciones!",
	})
}

// Close releases provider resources. gomail dials per message, nothing to
// release.
func (p *SMTPProvider) Close() error {
	return nil
}
