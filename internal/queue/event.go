// Package queue defines the change-notification messages broadcast over
// the message broker after every successful state write, plus the
// publisher and the background consumer.
package queue

// StoreChangedEvent is published to the store.changed queue after a state
// write.  It carries enough for downstream consumers to log or re-read
// without querying the database.
type StoreChangedEvent struct {
	Entity     string `json:"entity"`      // "session", "student", "instructor", "settings", "payroll"
	Action     string `json:"action"`      // "created", "updated", "deleted"
	EntityID   string `json:"entity_id"`   // id of the changed record, when known
	OccurredAt string `json:"occurred_at"` // RFC 3339 timestamp
}
