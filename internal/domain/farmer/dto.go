package farmer

type CreateFarmerDTO struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	State    string `json:"state" binding:"required"`
	District string `json:"district" binding:"required"`
	Region   string `json:"region"`
}

type UpdateFarmerDTO struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	State    *string `json:"state"`
	District *string `json:"district"`
	Region   *string `json:"region"`
}

type KycActionDTO struct {
	Reason string `json:"reason"`
}

type AssignFarmersDTO struct {
	FarmerIDs  []uint `json:"farmer_ids" binding:"required"`
	EmployeeID uint   `json:"employee_id" binding:"required"`
}

// Filter holds optional equality constraints for list queries.
// Nil fields impose no constraint; present fields AND together.
type Filter struct {
	State              *string
	District           *string
	Region             *string
	KycStatus          *KycStatus
	AssignmentStatus   *AssignmentStatus
	AssignedEmployeeID *uint
}
