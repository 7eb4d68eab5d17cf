package app

import (
	"lye_backend/internal/email"
	"lye_backend/internal/logger"
)

// MockEmailProvider logs outgoing mail instead of sending it. Used when
// SMTP is not configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("[MOCK EMAIL] Send", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, e *email.Email) error {
	logger.Info("[MOCK EMAIL] SendWithTemplate", "to", e.To, "template", templateName)
	return nil
}

func (m *MockEmailProvider) SendWelcome(to string, fullName string) error {
	logger.Info("[MOCK EMAIL] SendWelcome", "to", to, "name", fullName)
	return nil
}

func (m *MockEmailProvider) Close() error { return nil }
