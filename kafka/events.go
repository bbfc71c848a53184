package kafka

import "time"

// EntityDeletedEvent is emitted when a character, planet or user is removed
type EntityDeletedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	EntityID   uint      `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// FavoriteChangedEvent is emitted when a favorite is added or removed
type FavoriteChangedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	UserID       uint      `json:"user_id"`
	FavoriteType string    `json:"favorite_type"`
	FavoriteID   uint      `json:"favorite_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypePeopleDeleted   = "people.deleted"
	EventTypePlanetDeleted   = "planet.deleted"
	EventTypeUserDeleted     = "user.deleted"
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
)

// Kafka topics
const (
	TopicStarwarsEvents = "starwars-events"
)
