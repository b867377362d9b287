package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRowsFlattenViews(t *testing.T) {
	dashboard := NewDashboardService(&fixedSnapshot{snap: demoSnapshot()})
	s := NewReportService(dashboard)

	rows := s.ReportRows()
	require.Len(t, rows, 3)
	assert.Equal(t, "req-1", rows[0].RequestID)
	assert.Equal(t, "CNC Milling Machine", rows[0].EquipmentName)
	assert.Equal(t, "Mechanical Team", rows[0].TeamName)
	assert.Equal(t, "Preventive", rows[0].Type)
	assert.Equal(t, 3.0, rows[2].DurationHours)
}

func TestBuildWorkbook(t *testing.T) {
	dashboard := NewDashboardService(&fixedSnapshot{snap: demoSnapshot()})
	s := NewReportService(dashboard)

	f, err := s.BuildWorkbook()
	require.NoError(t, err)
	defer f.Close()

	subject, err := f.GetCellValue("Requests", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Hydraulic leak check", subject)

	status, err := f.GetCellValue("Requests", "G4")
	require.NoError(t, err)
	assert.Equal(t, "Repaired", status)
}
