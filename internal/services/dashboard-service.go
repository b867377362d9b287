package services

import (
	"math"
	"sort"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/store"
)

// SnapshotProvider hands out the current state snapshot. The store
// implements it; tests substitute fixed snapshots.
type SnapshotProvider interface {
	Snapshot() store.Snapshot
}

type DashboardServiceInterface interface {
	Stats() dto.DashboardStatsDTO
	Kanban() []dto.KanbanColumnDTO
	Calendar(month string) []dto.CalendarDayDTO
	RequestViews() []dto.RequestViewDTO
}

// DashboardService derives every chart, board and calendar from the store
// snapshot. All aggregations are recomputed from scratch on each call, so
// reading never changes the numbers.
type DashboardService struct {
	provider SnapshotProvider
}

func NewDashboardService(provider SnapshotProvider) DashboardServiceInterface {
	return &DashboardService{provider: provider}
}

func (s *DashboardService) Stats() dto.DashboardStatsDTO {
	snap := s.provider.Snapshot()

	stats := dto.DashboardStatsDTO{
		TotalEquipment: len(snap.Equipment),
	}
	for _, eq := range snap.Equipment {
		if eq.Status == entities.EquipmentStatusActive {
			stats.ActiveEquipment++
		}
	}

	equipmentByID := make(map[string]entities.Equipment, len(snap.Equipment))
	for _, eq := range snap.Equipment {
		equipmentByID[eq.ID] = eq
	}
	teamNames := make(map[string]string, len(snap.Teams))
	for _, team := range snap.Teams {
		teamNames[team.ID] = team.Name
	}

	typeCounts := map[string]int{}
	statusCounts := map[string]int{}
	teamCounts := map[string]int{}
	categoryCounts := map[string]int{}
	repaired, scrap, preventive := 0, 0, 0

	for _, req := range snap.Requests {
		typeCounts[string(req.Type)]++
		statusCounts[string(req.Status)]++
		if req.Open() {
			stats.OpenRequests++
		}
		switch req.Status {
		case entities.RequestStatusRepaired:
			repaired++
		case entities.RequestStatusScrap:
			scrap++
		}
		if req.Type == entities.RequestTypePreventive {
			preventive++
		}

		// workload and demand resolve through the equipment; requests whose
		// equipment is gone are left out
		if eq, ok := equipmentByID[req.EquipmentID]; ok {
			categoryCounts[string(eq.Category)]++
			if name, ok := teamNames[eq.MaintenanceTeamID]; ok {
				teamCounts[name]++
			}
		}
	}

	stats.TypeDistribution = toCountGroups(typeCounts)
	stats.StatusDistribution = toCountGroups(statusCounts)
	stats.TeamWorkload = toCountGroups(teamCounts)
	stats.CategoryDemand = toCountGroups(categoryCounts)

	total := len(snap.Requests)
	stats.ResolutionRate = percentage(repaired, total)
	stats.ScrapRate = percentage(scrap, total)
	stats.PreventiveRatio = percentage(preventive, total)
	return stats
}

// Kanban groups every request under its workflow column, columns in
// declaration order and always all four present.
func (s *DashboardService) Kanban() []dto.KanbanColumnDTO {
	views := s.RequestViews()

	columns := make([]dto.KanbanColumnDTO, 0, len(entities.RequestStatuses))
	for _, status := range entities.RequestStatuses {
		column := dto.KanbanColumnDTO{Status: status, Requests: []dto.RequestViewDTO{}}
		for _, view := range views {
			if view.Status == status {
				column.Requests = append(column.Requests, view)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

// Calendar places each request on exactly one day: its scheduled date when
// set, the creation date otherwise. A month filter of the form "2026-08"
// narrows the result; empty returns everything.
func (s *DashboardService) Calendar(month string) []dto.CalendarDayDTO {
	views := s.RequestViews()

	byDay := map[string][]dto.RequestViewDTO{}
	for _, view := range views {
		day := view.CalendarDate()
		if month != "" && !strings.HasPrefix(day, month) {
			continue
		}
		byDay[day] = append(byDay[day], view)
	}

	days := make([]dto.CalendarDayDTO, 0, len(byDay))
	for day, requests := range byDay {
		days = append(days, dto.CalendarDayDTO{Date: day, Requests: requests})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// RequestViews resolves display names for every request. A dangling
// reference renders as "Not found" rather than erroring.
func (s *DashboardService) RequestViews() []dto.RequestViewDTO {
	snap := s.provider.Snapshot()

	equipmentByID := make(map[string]entities.Equipment, len(snap.Equipment))
	for _, eq := range snap.Equipment {
		equipmentByID[eq.ID] = eq
	}
	teamNames := make(map[string]string, len(snap.Teams))
	for _, team := range snap.Teams {
		teamNames[team.ID] = team.Name
	}
	userNames := make(map[string]string, len(snap.Users))
	for _, user := range snap.Users {
		userNames[user.ID] = user.Name
	}

	views := make([]dto.RequestViewDTO, 0, len(snap.Requests))
	for _, req := range snap.Requests {
		view := dto.RequestViewDTO{
			MaintenanceRequest: req,
			EquipmentName:      "Not found",
			TeamName:           "Not found",
			Progress:           float64(req.Status.ProgressIndex()+1) / float64(len(entities.RequestStatuses)),
		}
		if eq, ok := equipmentByID[req.EquipmentID]; ok {
			view.EquipmentName = eq.Name
			if name, ok := teamNames[eq.MaintenanceTeamID]; ok {
				view.TeamName = name
			}
		}
		if req.AssignedTechnicianID.Valid {
			if name, ok := userNames[req.AssignedTechnicianID.String]; ok {
				view.TechnicianName = name
			} else {
				view.TechnicianName = "Not found"
			}
		}
		views = append(views, view)
	}
	return views
}

func toCountGroups(counts map[string]int) []dto.CountByGroup {
	groups := make([]dto.CountByGroup, 0, len(counts))
	for name, count := range counts {
		groups = append(groups, dto.CountByGroup{Name: name, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
