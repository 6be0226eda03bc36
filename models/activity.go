package models

import "time"

// Index describes an admin event emitted on submit/delete for cache
// invalidation and the notifier.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	Message    string `json:"message,omitempty"`
}

// Activity is one audit-trail record.
type Activity struct {
	UserID     string    `json:"userid" bson:"userid"`
	Action     string    `json:"action" bson:"action"`
	EntityType string    `json:"entity_type" bson:"entity_type"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	Outcome    string    `json:"outcome" bson:"outcome"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
