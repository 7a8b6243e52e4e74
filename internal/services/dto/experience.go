package dto

type ExperienceRequest struct {
	LinkedinURL    string `form:"linkedin_url" validate:"omitempty,max=200"`
	CoverLetter    string `form:"cover_letter" validate:"omitempty,max=1000"`
	PrevExperience string `form:"prev_experience" validate:"omitempty,max=1000"`
}
