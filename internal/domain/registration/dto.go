package registration

type CreateRegistrationDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Role  Role   `json:"role" binding:"required"`
}

type RejectRegistrationDTO struct {
	Reason string `json:"reason" binding:"required"`
}

type Filter struct {
	Status *Status
	Role   *Role
}
