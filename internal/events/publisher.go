package events

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// Topics for fleet state-change events.
const (
	TopicBookings    = "carcircle/bookings"
	TopicMaintenance = "carcircle/maintenance"
)

// Event describes a state change on a collection record.
type Event struct {
	Action string `json:"action"` // "created", "updated", "deleted"
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// Publisher emits fleet events. Publishing is best effort and must never
// fail or delay the request that triggered it.
type Publisher interface {
	Publish(topic string, event Event)
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

// Publish discards the event.
func (NoopPublisher) Publish(string, Event) {}

// MQTTPublisher publishes events to an MQTT broker with QoS 0.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to the broker and returns a publisher.
func NewMQTTPublisher(brokerURL string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("carcircle-backend").
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect error: %w", token.Error())
	}
	return &MQTTPublisher{client: client}, nil
}

// Publish marshals the event and fires it at the topic without waiting
// for delivery.
func (p *MQTTPublisher) Publish(topic string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).WithField("topic", topic).Error("failed to marshal event")
		return
	}

	token := p.client.Publish(topic, 0, false, payload)
	go func() {
		if token.Wait() && token.Error() != nil {
			log.WithError(token.Error()).WithField("topic", topic).Warn("failed to publish event")
		}
	}()
}

// Disconnect closes the broker connection.
func (p *MQTTPublisher) Disconnect() {
	p.client.Disconnect(250)
}
