// Package outbox implements the transactional outbox: events are scheduled
// in the same database transaction as the state change that causes them, and
// a background publisher drains them to the broker afterwards.
package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is one row of the outbox log. Rows are write-once except for the
// sent flag; created_at defines the drain order.
type Message struct {
	ID        uuid.UUID       `db:"id"`
	EventType string          `db:"event_type"`
	Payload   json.RawMessage `db:"payload"`
	Sent      bool            `db:"sent"`
	CreatedAt time.Time       `db:"created_at"`
}

func NewMessage(eventType string, payload json.RawMessage) Message {
	return Message{
		ID:        uuid.New(),
		EventType: eventType,
		Payload:   payload,
	}
}
