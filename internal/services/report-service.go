package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"gearguard/internal/dto"
)

type ReportServiceInterface interface {
	ReportRows() []dto.ReportRowDTO
	BuildWorkbook() (*excelize.File, error)
}

// ReportService flattens the requests report and renders the xlsx export.
type ReportService struct {
	dashboard DashboardServiceInterface
}

func NewReportService(dashboard DashboardServiceInterface) ReportServiceInterface {
	return &ReportService{dashboard: dashboard}
}

func (s *ReportService) ReportRows() []dto.ReportRowDTO {
	views := s.dashboard.RequestViews()

	rows := make([]dto.ReportRowDTO, 0, len(views))
	for _, view := range views {
		row := dto.ReportRowDTO{
			RequestID:      view.ID,
			Subject:        view.Subject,
			EquipmentName:  view.EquipmentName,
			TeamName:       view.TeamName,
			TechnicianName: view.TechnicianName,
			Type:           string(view.Type),
			Status:         string(view.Status),
			ScheduledDate:  view.ScheduledDate.String,
			CreatedAt:      view.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      view.UpdatedAt.Format(time.RFC3339),
		}
		if view.Duration.Valid {
			row.DurationHours = view.Duration.Float64
		}
		rows = append(rows, row)
	}
	return rows
}

var reportHeader = []interface{}{
	"Request ID", "Subject", "Equipment", "Team", "Technician",
	"Type", "Status", "Scheduled Date", "Duration (h)", "Created At", "Updated At",
}

func (s *ReportService) BuildWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Requests"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &reportHeader); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(reportHeader))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return nil, err
	}

	for i, row := range s.ReportRows() {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.RequestID, row.Subject, row.EquipmentName, row.TeamName, row.TechnicianName,
			row.Type, row.Status, row.ScheduledDate, row.DurationHours, row.CreatedAt, row.UpdatedAt,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}
	return f, nil
}
