package services

import (
	"encoding/json"
	"log"
	"time"
)

// EventsExchange is the exchange review and comment events are published to.
const EventsExchange = "reviews"

// EventPublisher sends a message to an exchange. *rabbitmq.Client
// satisfies it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// Event describes a completed review or comment mutation.
type Event struct {
	Type     string    `json:"type"`
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	ItemID   string    `json:"item_id,omitempty"`
	ReviewID string    `json:"review_id,omitempty"`
	Rating   *float64  `json:"rating,omitempty"`
	At       time.Time `json:"at"`
}

// publishEvent is best effort: failures are logged and never change the
// outcome of the mutation that triggered it.
func publishEvent(publisher EventPublisher, event Event) {
	if publisher == nil {
		return
	}
	event.At = time.Now().UTC()

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event.Type, err)
		return
	}
	if err := publisher.Publish(EventsExchange, event.Type, body); err != nil {
		log.Printf("Warning: failed to publish %s event for %s: %v", event.Type, event.ID, err)
	}
}
