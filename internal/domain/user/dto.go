package user

type CreateUserInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	Email       *string `json:"email"`
	FullName    *string `json:"full_name"`
	OldPassword *string `json:"old_password"`
	NewPassword *string `json:"new_password"`
	Status      *string `json:"status"`
}
