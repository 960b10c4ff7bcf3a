package datastore

// Collection names used across the system.
const (
	CollectionRequests      = "requests"
	CollectionCriteria      = "criteria"
	CollectionTimeline      = "timeline"
	CollectionBatches       = "batches"
	CollectionNotifications = "notifications"
	CollectionUsers         = "users"
	CollectionWorkTypes     = "work_types"
)

// Store persists ordered JSON document collections. Load fills out (a
// pointer to a slice) with the collection's documents, auto-initializing a
// missing collection to empty. Save atomically replaces the whole
// collection; on failure the previously committed state stays intact.
type Store interface {
	Load(collection string, out interface{}) error
	Save(collection string, docs interface{}) error
}
