package email

// Provider is the outbound email interface. Callers treat failures as a
// status, never as a fatal error; delivery is strictly best effort.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers it.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
