package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used by the notification service.
const (
	TemplateWelcomeApplicant = "welcome_applicant"
	TemplateWelcomeEmployer  = "welcome_employer"
	TemplateNewJob           = "new_job"
)

const welcomeApplicantHTML = `Hello,
<br>
Thank you for signing up for the Job Portal! We're excited to have you with us. Here are your login credentials to get started:
<br><br>
- <b>Username</b>: {{.Username}}
- <b>Password</b>: {{.Password}}
<br><br>
Please log in at your earliest convenience. You can now explore various job opportunities, submit applications, and post reviews.
<br><br>
Best of luck in your job search,<br>
The Job Portal Team
`

const welcomeEmployerHTML = `Hello,
<br>
Welcome to the Job Portal! We're thrilled to have you on board. Here are your login credentials:
<br><br>
<b>Username</b>: {{.Username}}
<br>
<b>Password</b>: {{.Password}}
<br><br>
Upon logging in, you'll have access to features tailored for you, including:
<br><br>
<b>Post New Jobs:</b> Advertise open positions and find talented candidates.
<br>
<b>Review Applications:</b> Manage applications submitted for each position.
<br><br>
Should you have any questions, our support team is here to assist you.
<br><br>
Best regards,<br>
The Job Portal Team
`

const newJobHTML = `Hello,
<br>
A new job has just been posted on the Job Portal:
<br><br>
<b>Title</b>: {{.Title}}
<br>
<b>Description</b>: {{.Description}}
<br>
<b>Location</b>: {{.Location}}
<br>
<b>Pay</b>: {{.Pay}}
<br><br>
Log in to apply before the position is filled.
<br><br>
Best regards,<br>
The Job Portal Team
`

// TemplateManager is a threadsafe TemplateRenderer over html/template.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the portal's templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}

	builtin := map[string]string{
		TemplateWelcomeApplicant: welcomeApplicantHTML,
		TemplateWelcomeEmployer:  welcomeEmployerHTML,
		TemplateNewJob:           newJobHTML,
	}
	for name, body := range builtin {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Render executes a named template with data.
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

// AddTemplate registers a template under a name.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
