package models

// Event types published to Kafka
const (
	EventDreamCreated = "dream.created"
	EventMatchCreated = "match.created"
)

// Event represents a domain event, including its type, subject and timestamp.
type Event struct {
	EventID   string `json:"event_id"`            // EventID is a unique identifier for the event.
	Type      string `json:"type"`                // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"`           // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    string `json:"user_id"`             // UserID is the user who caused the event.
	SubjectID string `json:"subject_id"`          // SubjectID is the dream or match the event is about.
	TargetID  string `json:"target_id,omitempty"` // TargetID is the other user of a match.
}
