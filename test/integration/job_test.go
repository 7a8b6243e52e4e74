package integration

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"jobportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJob_AsEmployer(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.LoginAs(t, client, "acme", "pass")

	form := url.Values{}
	form.Set("title", "Backend Engineer")
	form.Set("description", "Write Go services")
	form.Set("location", "Raleigh, NC")
	form.Set("pay", "45")

	res, _ := ts.SendForm(t, client, http.MethodPost, "/add-job", form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/home", res.Header.Get("Location"))

	var job models.Job
	err := ts.DB.Where("title = ?", "Backend Engineer").First(&job).Error
	require.NoError(t, err)
	assert.Equal(t, "acme", job.EmployerID)
	require.NotNil(t, job.Pay)
	assert.Equal(t, 45, *job.Pay)
}

func TestAddJob_NonEmployerRedirected(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	ts.LoginAs(t, client, "alice", "pass")

	res, _ := ts.SendForm(t, client, http.MethodGet, "/add-job", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/home", res.Header.Get("Location"))

	form := url.Values{}
	form.Set("title", "Sneaky Posting")
	form.Set("description", "Should never exist")
	form.Set("location", "Nowhere")

	res, _ = ts.SendForm(t, client, http.MethodPost, "/add-job", form)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/home", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.Job{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestViewJobs_EmployerBarred(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.LoginAs(t, client, "acme", "pass")

	res, _ := ts.SendForm(t, client, http.MethodGet, "/view-jobs", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/home", res.Header.Get("Location"))
}

func TestViewJobs_ShowsPostings(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	ts.CreateJob(t, "acme", "Backend Engineer")
	ts.CreateJob(t, "acme", "Frontend Engineer")

	ts.LoginAs(t, client, "alice", "pass")
	res, body := ts.SendForm(t, client, http.MethodGet, "/view-jobs", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "Frontend Engineer")
}

func TestApply_CreatesApplication(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	job := ts.CreateJob(t, "acme", "Backend Engineer")

	ts.LoginAs(t, client, "alice", "pass")
	res, _ := ts.SendForm(t, client, http.MethodPost, fmt.Sprintf("/apply/%d", job.JobID), nil)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/view-jobs", res.Header.Get("Location"))

	var application models.Application
	err := ts.DB.Where("job_id = ? AND user_name = ?", job.JobID, "alice").First(&application).Error
	require.NoError(t, err)
}

func TestAddJob_BlankPayStaysNull(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.LoginAs(t, client, "acme", "pass")

	form := url.Values{}
	form.Set("title", "Volunteer Coordinator")
	form.Set("description", "Organize volunteers")
	form.Set("location", "Durham, NC")
	form.Set("pay", "")

	res, _ := ts.SendForm(t, client, http.MethodPost, "/add-job", form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/home", res.Header.Get("Location"))

	var job models.Job
	require.NoError(t, ts.DB.Where("title = ?", "Volunteer Coordinator").First(&job).Error)
	assert.Nil(t, job.Pay)
}

func TestApply_NonexistentJobStillRecorded(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	ts.LoginAs(t, client, "alice", "pass")

	// No job existence check: the application row is created anyway.
	res, _ := ts.SendForm(t, client, http.MethodPost, "/apply/9999", nil)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/view-jobs", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.Application{}).Where("job_id = ? AND user_name = ?", 9999, "alice").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestApply_DuplicateCreatesSecondRow(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	job := ts.CreateJob(t, "acme", "Backend Engineer")

	ts.LoginAs(t, client, "alice", "pass")
	for i := 0; i < 2; i++ {
		res, _ := ts.SendForm(t, client, http.MethodPost, fmt.Sprintf("/apply/%d", job.JobID), nil)
		require.Equal(t, http.StatusFound, res.StatusCode)
		assert.Equal(t, "/view-jobs", res.Header.Get("Location"))
	}

	// Duplicates are not rejected; the view layer merely hides the button.
	var count int64
	ts.DB.Model(&models.Application{}).Where("job_id = ? AND user_name = ?", job.JobID, "alice").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestJobRoutes_NonNumericIDIs404(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	ts.LoginAs(t, client, "alice", "pass")

	for _, req := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/apply/abc"},
		{http.MethodGet, "/apply-job/abc"},
		{http.MethodPost, "/delete-job/abc"},
	} {
		res, _ := ts.SendForm(t, client, req.method, req.path, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode, "%s %s", req.method, req.path)
	}

	var count int64
	ts.DB.Model(&models.Application{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteJob_AsAdmin(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	job := ts.CreateJob(t, "acme", "Backend Engineer")

	ts.LoginAs(t, client, "admin", "admin")
	res, _ := ts.SendForm(t, client, http.MethodPost, fmt.Sprintf("/delete-job/%d", job.JobID), nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/view-jobs", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.Job{}).Where("job_id = ?", job.JobID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteJob_NonexistentID(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.CreateJob(t, "acme", "Backend Engineer")

	ts.LoginAs(t, client, "admin", "admin")
	res, _ := ts.SendForm(t, client, http.MethodPost, "/delete-job/9999", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/view-jobs", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.Job{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteJob_NonAdminDenied(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	job := ts.CreateJob(t, "acme", "Backend Engineer")

	ts.LoginAs(t, client, "acme", "pass")
	res, _ := ts.SendForm(t, client, http.MethodPost, fmt.Sprintf("/delete-job/%d", job.JobID), nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Job{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestViewApplicants_ScopedToEmployer(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.CreateUser(t, "globex", "pass", models.UserRoleEmployer)
	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	ts.CreateUser(t, "eve", "pass", models.UserRoleApplicant)

	acmeJob := ts.CreateJob(t, "acme", "Acme Backend Engineer")
	globexJob := ts.CreateJob(t, "globex", "Globex Analyst")
	require.NoError(t, ts.DB.Create(&models.Application{JobID: acmeJob.JobID, UserName: "alice"}).Error)
	require.NoError(t, ts.DB.Create(&models.Application{JobID: globexJob.JobID, UserName: "eve"}).Error)

	client := ts.NewClient(t)
	ts.LoginAs(t, client, "acme", "pass")
	res, body := ts.SendForm(t, client, http.MethodGet, "/view-applicants", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "alice")
	assert.NotContains(t, body, "eve")

	// The admin sees every application.
	adminClient := ts.NewClient(t)
	ts.LoginAs(t, adminClient, "admin", "admin")
	res, body = ts.SendForm(t, adminClient, http.MethodGet, "/view-applicants", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "eve")
}
