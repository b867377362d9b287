package dto

import "gearguard/internal/entities"

type CountByGroup struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStatsDTO is everything the dashboard and reports pages chart.
type DashboardStatsDTO struct {
	TotalEquipment     int            `json:"totalEquipment"`
	ActiveEquipment    int            `json:"activeEquipment"`
	OpenRequests       int            `json:"openRequests"`
	TypeDistribution   []CountByGroup `json:"typeDistribution"`
	StatusDistribution []CountByGroup `json:"statusDistribution"`
	TeamWorkload       []CountByGroup `json:"teamWorkload"`
	CategoryDemand     []CountByGroup `json:"categoryDemand"`
	ResolutionRate     int            `json:"resolutionRate"`
	PreventiveRatio    int            `json:"preventiveRatio"`
	ScrapRate          int            `json:"scrapRate"`
}

// KanbanColumnDTO groups requests under one workflow status.
type KanbanColumnDTO struct {
	Status   entities.RequestStatus `json:"status"`
	Requests []RequestViewDTO       `json:"requests"`
}

// CalendarDayDTO lists the requests falling on one calendar day.
type CalendarDayDTO struct {
	Date     string           `json:"date"`
	Requests []RequestViewDTO `json:"requests"`
}

// ReportRowDTO is one flattened row of the requests report (and the xlsx
// export).
type ReportRowDTO struct {
	RequestID      string  `json:"requestId"`
	Subject        string  `json:"subject"`
	EquipmentName  string  `json:"equipmentName"`
	TeamName       string  `json:"teamName"`
	TechnicianName string  `json:"technicianName"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	ScheduledDate  string  `json:"scheduledDate"`
	DurationHours  float64 `json:"durationHours"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}
