package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/shared/timezone"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCompleted = "booking.completed"
	TypeBookingCancelled = "booking.cancelled"
	TypePaymentRecorded  = "payment.recorded"
)

// Event is a lifecycle notification emitted after a state change has been
// committed. Consumers must tolerate duplicates; delivery is best effort.
type Event struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, eventType, entityID string, payload any)
}

// New returns a kafka-backed publisher when the broker is configured, and a
// no-op one otherwise. Callers never branch on the setting themselves.
func New(cfg *config.Config, client kafka.Client) Publisher {
	if !cfg.Kafka.Enable {
		return &noopPublisher{}
	}

	return &kafkaPublisher{cfg: cfg, client: client}
}

type kafkaPublisher struct {
	cfg    *config.Config
	client kafka.Client
}

// Publish sends the event on the configured topic. Failures are logged and
// swallowed: the owning state change has already been committed, so the
// operation must not be failed retroactively.
func (p *kafkaPublisher) Publish(ctx context.Context, eventType, entityID string, payload any) {
	event := Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}

	message := kafka.Message{
		Key:   entityID,
		Value: event,
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.Topic, message); err != nil {
		log.Error().
			Err(err).
			Str("eventType", eventType).
			Str("entityId", entityID).
			Msg("failed to publish event")

		return
	}

	log.Info().
		Str("eventType", eventType).
		Str("entityId", entityID).
		Msg("event published")
}

type noopPublisher struct{}

func (p *noopPublisher) Publish(_ context.Context, _, _ string, _ any) {}
