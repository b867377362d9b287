package dto

type CreateTeamDTO struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description"`
	MemberIDs   []string `json:"memberIds"`
}

type UpdateTeamDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Description *string `json:"description,omitempty"`
}

type MembershipDTO struct {
	UserID string `json:"userId" validate:"required"`
}
