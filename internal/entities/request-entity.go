package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type MaintenanceRequest struct {
	ID                   string        `json:"id"`
	Subject              string        `json:"subject"`
	EquipmentID          string        `json:"equipmentId"`
	Type                 RequestType   `json:"type"`
	ScheduledDate        null.String   `json:"scheduledDate,omitempty"`
	Duration             null.Float64  `json:"duration,omitempty"`
	AssignedTechnicianID null.String   `json:"assignedTechnicianId,omitempty"`
	Status               RequestStatus `json:"status"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// Open reports whether the request still needs work (not in a terminal
// state).
func (r *MaintenanceRequest) Open() bool {
	return r.Status != RequestStatusRepaired && r.Status != RequestStatusScrap
}

// CalendarDate is the day the request shows up on the calendar: the
// scheduled date when one is set, otherwise the creation date. A request is
// placed exactly once.
func (r *MaintenanceRequest) CalendarDate() string {
	if r.ScheduledDate.Valid && r.ScheduledDate.String != "" {
		return r.ScheduledDate.String
	}
	return r.CreatedAt.Format("2006-01-02")
}
