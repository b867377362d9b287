package dto

type CreateEquipmentDTO struct {
	Name                string `json:"name" validate:"required,min=2"`
	SerialNumber        string `json:"serialNumber" validate:"required"`
	PurchaseDate        string `json:"purchaseDate" validate:"omitempty,isodate"`
	WarrantyInfo        string `json:"warrantyInfo"`
	Location            string `json:"location" validate:"required"`
	Department          string `json:"department"`
	AssignedEmployee    string `json:"assignedEmployee"`
	MaintenanceTeamID   string `json:"maintenanceTeamId" validate:"required"`
	DefaultTechnicianID string `json:"defaultTechnicianId"`
	Category            string `json:"category" validate:"required,oneof=Manufacturing Transportation Computing Office Other"`
}

type UpdateEquipmentDTO struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=2"`
	SerialNumber        *string `json:"serialNumber,omitempty"`
	PurchaseDate        *string `json:"purchaseDate,omitempty" validate:"omitempty,isodate"`
	WarrantyInfo        *string `json:"warrantyInfo,omitempty"`
	Location            *string `json:"location,omitempty"`
	Department          *string `json:"department,omitempty"`
	AssignedEmployee    *string `json:"assignedEmployee,omitempty"`
	MaintenanceTeamID   *string `json:"maintenanceTeamId,omitempty"`
	DefaultTechnicianID *string `json:"defaultTechnicianId,omitempty"`
	Category            *string `json:"category,omitempty" validate:"omitempty,oneof=Manufacturing Transportation Computing Office Other"`
	Status              *string `json:"status,omitempty" validate:"omitempty,oneof=Active Scrapped"`
}

type EquipmentFilter struct {
	Name     string
	Category string
	Status   string
	Limit    uint64
	Offset   uint64
}
