package dto

type AddReviewRequest struct {
	JobTitle       string `form:"job_title" validate:"required,max=64"`
	JobDescription string `form:"job_description" validate:"required,max=120"`
	Department     string `form:"department" validate:"required,max=64"`
	Locations      string `form:"locations" validate:"required,max=120"`
	HourlyPay      int    `form:"hourly_pay" validate:"gte=0"`
	Benefits       string `form:"benefits" validate:"required,max=120"`
	Review         string `form:"review" validate:"required,max=500"`
	Rating         int    `form:"rating" validate:"gte=1,lte=5"`
	Recommendation int    `form:"recommendation" validate:"gte=0,lte=1"`
}

type SearchReviewsRequest struct {
	Search string `form:"search"`
}
