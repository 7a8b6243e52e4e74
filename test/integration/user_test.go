package integration

import (
	"net/http"
	"testing"

	"jobportal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestViewUsers_AdminOnly(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)

	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)

	adminClient := ts.NewClient(t)
	ts.LoginAs(t, adminClient, "admin", "admin")
	res, body := ts.SendForm(t, adminClient, http.MethodGet, "/view-users", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "acme")

	userClient := ts.NewClient(t)
	ts.LoginAs(t, userClient, "alice", "pass")
	res, _ = ts.SendForm(t, userClient, http.MethodGet, "/view-users", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/home", res.Header.Get("Location"))
}

func TestDeleteUser_AsAdmin(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)

	ts.LoginAs(t, client, "admin", "admin")
	res, _ := ts.SendForm(t, client, http.MethodPost, "/delete_user/alice", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/view-users", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.User{}).Where("user_name = ?", "alice").Count(&count)
	assert.Equal(t, int64(0), count)

	ts.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUser_LeavesOwnedRowsBehind(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "acme", "pass", models.UserRoleEmployer)
	ts.CreateJob(t, "acme", "Backend Engineer")

	ts.LoginAs(t, client, "admin", "admin")
	res, _ := ts.SendForm(t, client, http.MethodPost, "/delete_user/acme", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)

	// Deleting a user does not cascade to their postings.
	var jobs int64
	ts.DB.Model(&models.Job{}).Count(&jobs)
	assert.Equal(t, int64(1), jobs)
}

func TestDeleteUser_Nonexistent(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)

	ts.LoginAs(t, client, "admin", "admin")
	res, _ := ts.SendForm(t, client, http.MethodPost, "/delete_user/ghost", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/view-users", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUser_NonAdminDenied(t *testing.T) {
	ts := getTestServer(t)
	ts.ClearTables(t)
	client := ts.NewClient(t)

	ts.CreateUser(t, "alice", "pass", models.UserRoleApplicant)
	ts.CreateUser(t, "bob", "pass", models.UserRoleApplicant)

	ts.LoginAs(t, client, "alice", "pass")
	res, _ := ts.SendForm(t, client, http.MethodPost, "/delete_user/bob", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/home", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(2), count)
}
