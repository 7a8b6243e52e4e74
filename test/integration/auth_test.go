package integration

import (
	"net/http"
	"net/url"
	"testing"

	"jobportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_AdminHardcodedCredentials(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.LoginAs(t, client, "admin", "admin")

	// The admin session grants access to the user list.
	res, body := ts.SendForm(t, client, http.MethodGet, "/view-users", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Users")
}

func TestLogin_ValidUser(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "alice", "secret123", models.UserRoleApplicant)
	ts.LoginAs(t, client, "alice", "secret123")

	res, _ := ts.SendForm(t, client, http.MethodGet, "/home", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "alice", "secret123", models.UserRoleApplicant)

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "wrongpassword")

	res, body := ts.SendForm(t, client, http.MethodPost, "/login", form)

	// The login page is re-rendered in place with the error message.
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Invalid Credentials. Please try again.")
}

func TestLogin_UnknownUsername(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	form := url.Values{}
	form.Set("username", "nobody")
	form.Set("password", "whatever")

	res, body := ts.SendForm(t, client, http.MethodPost, "/login", form)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Invalid Credentials. Please try again.")
}

func TestSignup_CreatesUserAndRedirects(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	form := url.Values{}
	form.Set("email", "bob@example.com")
	form.Set("full-name", "Bob Builder")
	form.Set("username", "bob")
	form.Set("password", "canwefixit")
	form.Set("type", "employer")

	res, _ := ts.SendForm(t, client, http.MethodPost, "/signup", form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))

	var user models.User
	err := ts.DB.Where("user_name = ?", "bob").First(&user).Error
	require.NoError(t, err)
	assert.Equal(t, "Bob Builder", user.Name)
	assert.Equal(t, models.UserRoleEmployer, user.Type)
	// Passwords are stored verbatim in this system.
	assert.Equal(t, "canwefixit", user.Password)

	ts.LoginAs(t, client, "bob", "canwefixit")
}

func TestSignup_DuplicateUsername(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "carol", "original", models.UserRoleApplicant)

	form := url.Values{}
	form.Set("email", "carol2@example.com")
	form.Set("full-name", "Carol Two")
	form.Set("username", "carol")
	form.Set("password", "different")
	form.Set("type", "applicant")

	res, body := ts.SendForm(t, client, http.MethodPost, "/signup", form)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Username already taken. Please choose a different one.")

	var count int64
	ts.DB.Model(&models.User{}).Where("user_name = ?", "carol").Count(&count)
	assert.Equal(t, int64(1), count)

	// The existing account is untouched.
	var user models.User
	ts.DB.Where("user_name = ?", "carol").First(&user)
	assert.Equal(t, "original", user.Password)
}

func TestProtectedRoutes_RequireLogin(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	for _, path := range []string{"/home", "/view-jobs", "/add-job", "/pageContent", "/review"} {
		res, _ := ts.SendForm(t, client, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusFound, res.StatusCode, "path %s", path)
		assert.Equal(t, "/login", res.Header.Get("Location"), "path %s", path)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "dave", "pass", models.UserRoleApplicant)
	ts.LoginAs(t, client, "dave", "pass")

	res, _ := ts.SendForm(t, client, http.MethodGet, "/logout", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))

	res, _ = ts.SendForm(t, client, http.MethodGet, "/home", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))
}
