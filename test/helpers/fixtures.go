package helpers

import (
	"net/http"
	"net/url"
	"testing"

	"jobportal/internal/models"
)

// CreateUser inserts a user row directly, bypassing the signup flow.
func (ts *TestServer) CreateUser(t *testing.T, username, password string, role models.UserRole) *models.User {
	user := &models.User{
		UserName: username,
		Name:     "Test " + username,
		Email:    username + "@jobportal.test",
		Password: password,
		Type:     role,
	}
	if err := ts.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

// CreateJob inserts a job posting owned by the given employer.
func (ts *TestServer) CreateJob(t *testing.T, employer, title string) *models.Job {
	pay := 25
	job := &models.Job{
		Title:       title,
		Description: "Test description for " + title,
		Location:    "Raleigh, NC",
		Pay:         &pay,
		EmployerID:  employer,
	}
	if err := ts.DB.Create(job).Error; err != nil {
		t.Fatalf("failed to create job %s: %v", title, err)
	}
	return job
}

// CreateReview inserts an employer review row.
func (ts *TestServer) CreateReview(t *testing.T, jobTitle, body string) *models.Review {
	review := &models.Review{
		Department:     "Engineering",
		Locations:      "Remote",
		JobTitle:       jobTitle,
		JobDescription: "Builds things",
		HourlyPay:      30,
		Benefits:       "Health insurance",
		Review:         body,
		Rating:         4,
		Recommendation: 1,
	}
	if err := ts.DB.Create(review).Error; err != nil {
		t.Fatalf("failed to create review for %s: %v", jobTitle, err)
	}
	return review
}

// LoginAs authenticates the client through the login form and fails the test
// unless the portal redirects to /home.
func (ts *TestServer) LoginAs(t *testing.T, client *http.Client, username, password string) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	res, _ := ts.SendForm(t, client, http.MethodPost, "/login", form)
	if res.StatusCode != http.StatusFound {
		t.Fatalf("login as %s: expected redirect, got status %d", username, res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/home" {
		t.Fatalf("login as %s: expected redirect to /home, got %s", username, loc)
	}
}
