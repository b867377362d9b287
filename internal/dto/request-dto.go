package dto

import "gearguard/internal/entities"

type CreateRequestDTO struct {
	Subject              string   `json:"subject" validate:"required,min=3"`
	EquipmentID          string   `json:"equipmentId" validate:"required"`
	Type                 string   `json:"type" validate:"required,oneof=Corrective Preventive"`
	ScheduledDate        *string  `json:"scheduledDate,omitempty" validate:"omitempty,isodate,preventive_schedule"`
	Duration             *float64 `json:"duration,omitempty" validate:"omitempty,gt=0"`
	AssignedTechnicianID *string  `json:"assignedTechnicianId,omitempty"`
}

type UpdateRequestDTO struct {
	Subject              *string  `json:"subject,omitempty" validate:"omitempty,min=3"`
	ScheduledDate        *string  `json:"scheduledDate,omitempty" validate:"omitempty,isodate"`
	Duration             *float64 `json:"duration,omitempty" validate:"omitempty,gt=0"`
	AssignedTechnicianID *string  `json:"assignedTechnicianId,omitempty"`
}

// MoveRequestDTO drives the lifecycle endpoint. Duration may accompany the
// move to Repaired when none was recorded yet.
type MoveRequestDTO struct {
	NewStatus string   `json:"newStatus" validate:"required,oneof=New 'In Progress' Repaired Scrap"`
	Duration  *float64 `json:"duration,omitempty" validate:"omitempty,gt=0"`
}

// RequestViewDTO is a request enriched with resolved display names. A
// reference to a deleted entity renders as "Not found" instead of failing.
type RequestViewDTO struct {
	entities.MaintenanceRequest
	EquipmentName  string  `json:"equipmentName"`
	TeamName       string  `json:"teamName"`
	TechnicianName string  `json:"technicianName,omitempty"`
	Progress       float64 `json:"progress"`
}

type RequestFilter struct {
	Status      string
	Type        string
	EquipmentID string
	Limit       uint64
	Offset      uint64
}
