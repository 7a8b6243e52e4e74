package dto

// Form field names match the HTML templates.

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type SignupRequest struct {
	Email    string `form:"email" validate:"required,email,max=64"`
	Name     string `form:"full-name" validate:"required,max=64"`
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required,max=64"`
	Role     string `form:"type" validate:"required,userrole"`
}
