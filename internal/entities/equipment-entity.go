package entities

import "time"

type Equipment struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	SerialNumber        string            `json:"serialNumber"`
	PurchaseDate        string            `json:"purchaseDate"`
	WarrantyInfo        string            `json:"warrantyInfo"`
	Location            string            `json:"location"`
	Department          string            `json:"department"`
	AssignedEmployee    string            `json:"assignedEmployee"`
	MaintenanceTeamID   string            `json:"maintenanceTeamId"`
	DefaultTechnicianID string            `json:"defaultTechnicianId"`
	Category            EquipmentCategory `json:"category"`
	Status              EquipmentStatus   `json:"status"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}
