package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/internal/events"
)

type captureClient struct {
	topic    string
	messages []kafka.Message
	err      error
}

func (c *captureClient) SendMessages(_ context.Context, topic string, messages ...kafka.Message) error {
	c.topic = topic
	c.messages = append(c.messages, messages...)

	return c.err
}

func TestPublisher_Publish(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "frontdesk.events"

	client := &captureClient{}
	publisher := events.New(cfg, client)

	publisher.Publish(context.Background(), events.TypeBookingCreated, "booking-1", map[string]string{"room_id": "RM101"})

	assert.Equal(t, "frontdesk.events", client.topic)
	assert.Len(t, client.messages, 1)
	assert.Equal(t, "booking-1", client.messages[0].Key)

	event, ok := client.messages[0].Value.(events.Event)
	assert.True(t, ok)
	assert.Equal(t, events.TypeBookingCreated, event.Type)
	assert.Equal(t, "booking-1", event.EntityID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestPublisher_PublishSwallowsBrokerErrors(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "frontdesk.events"

	client := &captureClient{err: errors.New("broker unreachable")}
	publisher := events.New(cfg, client)

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), events.TypePaymentRecorded, "payment-1", nil)
	})
}

func TestPublisher_DisabledIsNoop(t *testing.T) {
	cfg := &config.Config{}

	client := &captureClient{}
	publisher := events.New(cfg, client)

	publisher.Publish(context.Background(), events.TypeBookingCancelled, "booking-2", nil)

	assert.Empty(t, client.messages)
}
