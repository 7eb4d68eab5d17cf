package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager renders the built-in email templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

const welcomeTemplate = `
<html>
<body>
  <h2>¡Bienvenido, {{.FullName}}!</h2>
  <p>Tu cuenta en la plataforma de investigaciones estudiantiles fue creada.</p>
  <p>Ya puedes subir tus trabajos y explorar las investigaciones de otros estudiantes.</p>
</body>
</html>`

// NewTemplateManager creates a manager preloaded with the built-in
// templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	if err := tm.AddTemplate("welcome", welcomeTemplate); err != nil {
		return nil, err
	}
	return tm, nil
}

// AddTemplate parses and registers a template under name.
func (tm *TemplateManager) AddTemplate(name string, text string) error {
	tpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
