package dto

type CreateUserDTO struct {
	Name   string  `json:"name" validate:"required,min=2"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar *string `json:"avatar,omitempty"`
	TeamID *string `json:"teamId,omitempty"`
	Role   string  `json:"role" validate:"required,oneof=Technician Manager Employee"`
}

type UpdateUserDTO struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar *string `json:"avatar,omitempty"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=Technician Manager Employee"`
}
