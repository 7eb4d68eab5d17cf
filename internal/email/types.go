package email

// Email is one outgoing message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the email templates.
type TemplateData map[string]interface{}

// Provider sends email. Failures are reported but never fail the request
// that triggered the send.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendWithTemplate renders templateName with data and delivers it.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// SendWelcome sends the post-registration welcome message.
	SendWelcome(to string, fullName string) error

	// Close releases provider resources.
	Close() error
}
