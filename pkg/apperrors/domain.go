package apperrors

import "net/http"

// Predefined errors for the portal's business rules. Services return these;
// handlers translate them into flashes, redirects or re-rendered forms.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid Credentials. Please try again.",
	http.StatusUnauthorized,
)

var ErrUsernameTaken = New(
	CodeAlreadyExists,
	"auth",
	"Username already taken. Please choose a different one.",
	http.StatusConflict,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found.",
	http.StatusNotFound,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found.",
	http.StatusNotFound,
)

var ErrReviewNotFound = New(
	CodeNotFound,
	"reviews",
	"Review not found.",
	http.StatusNotFound,
)

var ErrAlreadyUpvoted = New(
	CodeConflict,
	"reviews",
	"You have already upvoted this review.",
	http.StatusConflict,
)

var ErrExperienceExists = New(
	CodeAlreadyExists,
	"experience",
	"Experience already exists. Please update it instead.",
	http.StatusConflict,
)

var ErrExperienceNotFound = New(
	CodeNotFound,
	"experience",
	"No experience found. Please add your experience first.",
	http.StatusNotFound,
)
