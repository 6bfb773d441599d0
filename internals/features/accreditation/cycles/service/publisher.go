// file: internals/features/accreditation/cycles/service/publisher.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const EventSnapshotCreated = "simulation.snapshot.created"

type SnapshotEvent struct {
	Type           string    `json:"type"`
	SnapshotID     uuid.UUID `json:"snapshot_id"`
	CycleID        uuid.UUID `json:"cycle_id"`
	LamID          uuid.UUID `json:"lam_id"`
	TotalScore     float64   `json:"total_score"`
	PredictedLevel string    `json:"predicted_level"`
	Trigger        string    `json:"trigger"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventPublisher meneruskan event ke kolaborator notifikasi di luar engine.
type EventPublisher interface {
	PublishSnapshot(ctx context.Context, ev SnapshotEvent) error
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) PublishSnapshot(context.Context, SnapshotEvent) error { return nil }
func (NoopPublisher) Close() error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per snapshot, keyed by cycle id.
type KafkaPublisher struct {
	w messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{w: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}}
}

func (p *KafkaPublisher) PublishSnapshot(ctx context.Context, ev SnapshotEvent) error {
	if ev.Type == "" {
		ev.Type = EventSnapshotCreated
	}
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode snapshot event: %w", err)
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.CycleID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
		},
	})
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }
