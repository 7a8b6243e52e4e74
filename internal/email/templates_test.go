package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_RendersBuiltins(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render(TemplateWelcomeApplicant, TemplateData{
		"Username": "alice",
		"Password": "secret123",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "secret123")
	assert.Contains(t, body, "Thank you for signing up")

	body, err = tm.Render(TemplateWelcomeEmployer, TemplateData{
		"Username": "acme",
		"Password": "hunter2",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "acme")
	assert.Contains(t, body, "Post New Jobs")

	body, err = tm.Render(TemplateNewJob, TemplateData{
		"Title":       "Backend Engineer",
		"Description": "Write Go services",
		"Location":    "Raleigh, NC",
		"Pay":         45,
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "Raleigh, NC")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("no_such_template", TemplateData{})
	assert.ErrorContains(t, err, "template not found")
}

func TestTemplateManager_AddTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	require.NoError(t, tm.AddTemplate("custom", "Hi {{.Name}}"))
	body, err := tm.Render("custom", TemplateData{"Name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Hi Bob", body)

	err = tm.AddTemplate("broken", "Hi {{.Name")
	assert.Error(t, err)
}
