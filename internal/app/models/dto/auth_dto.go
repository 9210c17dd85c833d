package dto

// LoginForm represents login credentials
type LoginForm struct {
	Username   string `form:"username" json:"username" binding:"required"`
	Password   string `form:"password" json:"password" binding:"required"`
	RememberMe bool   `form:"remember_me" json:"rememberMe"`
}

// RegisterForm represents a self-service registration submission
type RegisterForm struct {
	Username  string `form:"username" json:"username" binding:"required,min=4,max=20"`
	Email     string `form:"email" json:"email" binding:"required,email"`
	Password  string `form:"password" json:"password" binding:"required,min=6"`
	Password2 string `form:"password2" json:"password2" binding:"required,eqfield=Password"`
}
