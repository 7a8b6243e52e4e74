package dto

type AddJobRequest struct {
	Title       string `form:"title" validate:"required,max=120"`
	Description string `form:"description" validate:"required,max=500"`
	Location    string `form:"location" validate:"required,max=120"`

	// Bound as a string so a submitted-but-blank field stays distinguishable
	// from 0; blank means no pay stored.
	Pay string `form:"pay" validate:"omitempty,number"`
}
