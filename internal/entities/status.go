package entities

type EquipmentStatus string

const (
	EquipmentStatusActive   EquipmentStatus = "Active"
	EquipmentStatusScrapped EquipmentStatus = "Scrapped"
)

type EquipmentCategory string

const (
	CategoryManufacturing  EquipmentCategory = "Manufacturing"
	CategoryTransportation EquipmentCategory = "Transportation"
	CategoryComputing      EquipmentCategory = "Computing"
	CategoryOffice         EquipmentCategory = "Office"
	CategoryOther          EquipmentCategory = "Other"
)

type UserRole string

const (
	RoleTechnician UserRole = "Technician"
	RoleManager    UserRole = "Manager"
	RoleEmployee   UserRole = "Employee"
)

type RequestType string

const (
	RequestTypeCorrective RequestType = "Corrective"
	RequestTypePreventive RequestType = "Preventive"
)

type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "New"
	RequestStatusInProgress RequestStatus = "In Progress"
	RequestStatusRepaired   RequestStatus = "Repaired"
	RequestStatusScrap      RequestStatus = "Scrap"
)

// RequestStatuses is the declaration order used by the kanban board and the
// progress indicator.
var RequestStatuses = []RequestStatus{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusRepaired,
	RequestStatusScrap,
}

// allowedTransitions is the full edge set of the request workflow. Anything
// not listed here is rejected.
var allowedTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusNew:        {RequestStatusInProgress, RequestStatusScrap},
	RequestStatusInProgress: {RequestStatusRepaired, RequestStatusScrap},
}

func (s RequestStatus) Valid() bool {
	for _, status := range RequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransition reports whether the workflow permits moving from s to next.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s RequestStatus) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// ProgressIndex is the linear position of s among the four statuses,
// exposed as (index+1)/4 for display. Scrap reached from New shows a full
// bar; that is a known display quirk, not a workflow fact.
func (s RequestStatus) ProgressIndex() int {
	for i, status := range RequestStatuses {
		if s == status {
			return i
		}
	}
	return 0
}
