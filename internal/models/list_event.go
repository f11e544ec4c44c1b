package models

// List event operations
const (
	ListCreated = "list_created"
	ListUpdated = "list_updated"
	ListDeleted = "list_deleted"
)

// ListEvent is published whenever a list changes
type ListEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp
	ListID    string `json:"list_id"`   // Affected list
	Username  string `json:"username"`  // List owner
	Operation string `json:"operation"` // One of ListCreated, ListUpdated, ListDeleted
}
