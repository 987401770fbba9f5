package employee

type CreateEmployeeDTO struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

type UpdateEmployeeDTO struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Designation *string `json:"designation"`
	Department  *string `json:"department"`
	Status      *Status `json:"status"`
}

type Filter struct {
	Status     *Status
	Department *string
}
