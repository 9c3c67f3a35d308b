package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventOrderCreated = "order.created"

// Event is the envelope published to Kafka after a successful write.
type Event struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// OrderCreatedPayload is the payload for EventOrderCreated.
type OrderCreatedPayload struct {
	OrderID    int    `json:"order_id"`
	CustomerID int    `json:"customer_id"`
	Date       string `json:"date"`
}

func newEvent(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	}, nil
}
