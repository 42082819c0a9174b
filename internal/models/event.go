package models

const (
	EventItemCreated = "item:created"
	EventItemDeleted = "item:deleted"
	EventItemUpdated = "item:updated"
)

// Event is pushed to connected clients when items change.
type Event struct {
	Type    string `json:"type" msgpack:"type"`
	Item    *Item  `json:"item,omitempty" msgpack:"item,omitempty"`
	ItemID  int64  `json:"id,omitempty" msgpack:"id,omitempty"`
	Private *bool  `json:"private,omitempty" msgpack:"private,omitempty"`
}
