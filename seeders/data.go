package seeders

import (
	"github.com/aarondl/null/v8"

	"gearguard/internal/entities"
)

// Demo dataset with fixed ids. The equipment count guards the whole seed,
// so re-running against a populated database changes nothing.

func demoTeams() []entities.MaintenanceTeam {
	return []entities.MaintenanceTeam{
		{
			ID:          "team-a",
			Name:        "Mechanical Team",
			Description: "Specializes in mechanical repairs and maintenance",
			MemberIDs:   []string{"tech-1", "tech-2"},
		},
		{
			ID:          "team-b",
			Name:        "Electrical Team",
			Description: "Specializes in electrical and control systems",
			MemberIDs:   []string{"tech-3"},
		},
	}
}

func demoUsers() []entities.User {
	return []entities.User{
		{ID: "tech-1", Name: "John Doe", Role: entities.RoleTechnician, TeamID: null.StringFrom("team-a")},
		{ID: "tech-2", Name: "Jane Smith", Role: entities.RoleTechnician, TeamID: null.StringFrom("team-a")},
		{ID: "tech-3", Name: "Mike Ross", Role: entities.RoleTechnician, TeamID: null.StringFrom("team-b")},
		{ID: "mgr-1", Name: "Harvey Specter", Role: entities.RoleManager},
	}
}

func demoEquipment() []entities.Equipment {
	return []entities.Equipment{
		{
			ID:                  "eq-1",
			Name:                "CNC Milling Machine",
			SerialNumber:        "CNC-2023-001",
			PurchaseDate:        "2023-01-15",
			WarrantyInfo:        "Expires 2025-01-15",
			Location:            "Factory Floor A",
			Department:          "Production",
			AssignedEmployee:    "Robert Chen",
			MaintenanceTeamID:   "team-a",
			DefaultTechnicianID: "tech-1",
			Category:            entities.CategoryManufacturing,
			Status:              entities.EquipmentStatusActive,
		},
		{
			ID:                  "eq-2",
			Name:                "Central Server Rack",
			SerialNumber:        "SRV-882-X",
			PurchaseDate:        "2022-06-20",
			WarrantyInfo:        "Lifetime Support",
			Location:            "IT Server Room",
			Department:          "IT",
			AssignedEmployee:    "Sarah Connor",
			MaintenanceTeamID:   "team-b",
			DefaultTechnicianID: "tech-3",
			Category:            entities.CategoryComputing,
			Status:              entities.EquipmentStatusActive,
		},
	}
}

func demoRequests() []entities.MaintenanceRequest {
	return []entities.MaintenanceRequest{
		{
			ID:          "req-1",
			Subject:     "Hydraulic leak check",
			EquipmentID: "eq-1",
			Type:        entities.RequestTypePreventive,
			Status:      entities.RequestStatusNew,
		},
		{
			ID:                   "req-2",
			Subject:              "Server overheating",
			EquipmentID:          "eq-2",
			Type:                 entities.RequestTypeCorrective,
			Status:               entities.RequestStatusInProgress,
			AssignedTechnicianID: null.StringFrom("tech-3"),
		},
	}
}
