// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/tripwise/internal/breaker"
	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
)

// Publisher publishes domain events through a circuit breaker.
type Publisher struct {
	publisher message.Publisher
	breaker   *breaker.Breaker[struct{}]
	mu        sync.RWMutex
	closed    bool
}

// NewPublisher wraps pub. The breaker trips on sustained publish failures
// so a dead broker does not add latency to every request.
func NewPublisher(pub message.Publisher, cfg config.BreakerConfig) *Publisher {
	return &Publisher{
		publisher: pub,
		breaker:   breaker.New[struct{}]("event-publisher", cfg),
	}
}

// PublishRecommendationServed publishes ev. A missing event id is generated.
func (p *Publisher) PublishRecommendationServed(ctx context.Context, ev *models.RecommendationServed) error {
	if ev != nil && ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if err := validateServed(ev); err != nil {
		return err
	}
	return p.publish(ctx, TopicRecommendationServed, ev.EventID, ev.UserID, ev)
}

// PublishQuestionnaireSubmitted publishes ev. A missing event id is generated.
func (p *Publisher) PublishQuestionnaireSubmitted(ctx context.Context, ev *models.QuestionnaireSubmitted) error {
	if ev != nil && ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if err := validateSubmitted(ev); err != nil {
		return err
	}
	return p.publish(ctx, TopicQuestionnaireSubmitted, ev.EventID, ev.UserID, ev)
}

func (p *Publisher) publish(ctx context.Context, topic, eventID, userID string, payload interface{}) (err error) {
	defer func() { metrics.RecordEventPublished(topic, err) }()

	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return ErrPublisherClosed
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	msg := message.NewMessage(eventID, data)
	msg.Metadata.Set(MetadataEventType, topic)
	msg.Metadata.Set(MetadataUserID, userID)
	msg.Metadata.Set(natsgo.MsgIdHdr, eventID)
	correlationID := logging.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = eventID
	}
	middleware.SetCorrelationID(correlationID, msg)

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.publisher.Publish(topic, msg)
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	logging.CtxDebug(ctx).Str("topic", topic).Str("event_id", eventID).Msg("Event published")
	return nil
}

// Close stops further publishing. The underlying publisher belongs to the
// Bus and is not closed here.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
