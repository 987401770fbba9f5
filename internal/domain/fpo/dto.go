package fpo

type CreateFPODTO struct {
	Name           string `json:"name" binding:"required"`
	RegistrationNo string `json:"registration_no" binding:"required"`
	State          string `json:"state" binding:"required"`
	District       string `json:"district" binding:"required"`
	ContactPerson  string `json:"contact_person"`
	ContactPhone   string `json:"contact_phone"`
	MemberCount    int    `json:"member_count"`
}

type UpdateFPODTO struct {
	Name          *string `json:"name"`
	State         *string `json:"state"`
	District      *string `json:"district"`
	ContactPerson *string `json:"contact_person"`
	ContactPhone  *string `json:"contact_phone"`
	MemberCount   *int    `json:"member_count"`
}
