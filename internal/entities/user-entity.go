package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type User struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     null.String `json:"email,omitempty"`
	Avatar    null.String `json:"avatar,omitempty"`
	TeamID    null.String `json:"teamId,omitempty"`
	Role      UserRole    `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
