package entities

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestCalendarDatePrefersSchedule(t *testing.T) {
	created := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

	scheduled := MaintenanceRequest{
		Type:          RequestTypePreventive,
		ScheduledDate: null.StringFrom("2024-03-10"),
		CreatedAt:     created,
	}
	assert.Equal(t, "2024-03-10", scheduled.CalendarDate())

	unscheduled := MaintenanceRequest{
		Type:      RequestTypeCorrective,
		CreatedAt: created,
	}
	assert.Equal(t, "2024-02-01", unscheduled.CalendarDate())
}

func TestOpen(t *testing.T) {
	assert.True(t, (&MaintenanceRequest{Status: RequestStatusNew}).Open())
	assert.True(t, (&MaintenanceRequest{Status: RequestStatusInProgress}).Open())
	assert.False(t, (&MaintenanceRequest{Status: RequestStatusRepaired}).Open())
	assert.False(t, (&MaintenanceRequest{Status: RequestStatusScrap}).Open())
}
