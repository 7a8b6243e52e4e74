package validator

import (
	"testing"

	"jobportal/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() dto.SignupRequest {
	return dto.SignupRequest{
		Email:    "alice@example.com",
		Name:     "Alice Example",
		Username: "alice",
		Password: "secret123",
		Role:     "applicant",
	}
}

func TestValidate_ValidSignup(t *testing.T) {
	v := New()
	req := validSignup()
	assert.NoError(t, v.Validate(req))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	v := New()
	req := validSignup()
	req.Username = ""

	err := v.Validate(req)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// Errors are keyed by form field name, not Go field name.
	assert.Equal(t, "This field is required", verr.Errors["username"])
}

func TestValidate_BadEmail(t *testing.T) {
	v := New()
	req := validSignup()
	req.Email = "not-an-email"

	err := v.Validate(req)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
}

func TestValidate_UserRoleRule(t *testing.T) {
	v := New()

	for _, role := range []string{"applicant", "employer"} {
		req := validSignup()
		req.Role = role
		assert.NoError(t, v.Validate(req), "role %s", role)
	}

	for _, role := range []string{"admin", "manager", ""} {
		req := validSignup()
		req.Role = role

		err := v.Validate(req)
		require.Error(t, err, "role %q", role)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Errors, "type")
	}
}

func TestValidate_RatingBounds(t *testing.T) {
	v := New()

	req := dto.AddReviewRequest{
		JobTitle:       "Backend Engineer",
		JobDescription: "Builds things",
		Department:     "Engineering",
		Locations:      "Remote",
		HourlyPay:      30,
		Benefits:       "Health insurance",
		Review:         "solid team",
		Rating:         6,
		Recommendation: 1,
	}

	err := v.Validate(req)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Must be at most 5", verr.Errors["rating"])

	req.Rating = 5
	assert.NoError(t, v.Validate(req))
}

func TestValidationError_First(t *testing.T) {
	verr := &ValidationError{Errors: map[string]string{"username": "This field is required"}}
	assert.Equal(t, "username: This field is required", verr.First())

	empty := &ValidationError{Errors: map[string]string{}}
	assert.Equal(t, "Invalid input.", empty.First())
}
