package events

// Collection names as stored in the database and used on the wire.
const (
	CollectionEquipment = "equipment"
	CollectionTeams     = "teams"
	CollectionUsers     = "users"
	CollectionRequests  = "requests"
)

// Collections lists every collection the store tracks.
var Collections = []string{
	CollectionEquipment,
	CollectionTeams,
	CollectionUsers,
	CollectionRequests,
}

// CollectionChanged fires after any successful insert, update or delete in
// a collection. Listeners reload the collection; the event itself carries
// no rows.
type CollectionChanged struct {
	Collection string
}

func (e CollectionChanged) Name() string { return e.Collection + ".changed" }

// ChangedEventName builds the bus event name for a collection.
func ChangedEventName(collection string) string { return collection + ".changed" }

// MaintenanceDue fires when the preventive sweep finds requests scheduled
// for the current day.
type MaintenanceDue struct {
	RequestIDs []string
}

func (e MaintenanceDue) Name() string { return "maintenance.due" }
