// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package events

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
)

// Handler names.
const (
	HandlerPersistRecommendations = "persist-recommendations"
	HandlerQuestionnaireAudit     = "questionnaire-audit"
)

// Recorder persists served recommendations.
// Satisfied by *database.DB.
type Recorder interface {
	RecordRecommendationServed(ctx context.Context, ev *models.RecommendationServed) error
}

// RouterConfig holds the consumer router settings.
type RouterConfig struct {
	CloseTimeout         time.Duration
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64
}

// DefaultRouterConfig returns production defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CloseTimeout:         30 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     5 * time.Second,
		RetryMultiplier:      2.0,
	}
}

// RouterConfigFrom derives the router settings from the events config.
func RouterConfigFrom(cfg *config.EventsConfig) RouterConfig {
	rc := DefaultRouterConfig()
	if cfg.RouterCloseTimeout > 0 {
		rc.CloseTimeout = cfg.RouterCloseTimeout
	}
	if cfg.RouterRetryCount >= 0 {
		rc.RetryMaxRetries = cfg.RouterRetryCount
	}
	if cfg.RouterRetryInitialInterval > 0 {
		rc.RetryInitialInterval = cfg.RouterRetryInitialInterval
	}
	return rc
}

// RouterStats counts handler outcomes since the router was built.
type RouterStats struct {
	Persisted int64
	Dropped   int64
	Failed    int64
	Audited   int64
}

// Router consumes Tripwise events.
type Router struct {
	router   *message.Router
	recorder Recorder
	logger   watermill.LoggerAdapter

	persisted atomic.Int64
	dropped   atomic.Int64
	failed    atomic.Int64
	audited   atomic.Int64
}

// NewRouter builds a router with Recoverer and Retry middleware and the
// Tripwise handlers registered on sub.
func NewRouter(cfg RouterConfig, sub message.Subscriber, recorder Recorder, logger watermill.LoggerAdapter) (*Router, error) {
	if sub == nil {
		return nil, fmt.Errorf("subscriber is required")
	}
	if recorder == nil {
		return nil, fmt.Errorf("recorder is required")
	}
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	wmRouter, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	r := &Router{
		router:   wmRouter,
		recorder: recorder,
		logger:   logger,
	}

	wmRouter.AddMiddleware(
		middleware.CorrelationID,
		r.ackExhausted,
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      cfg.RetryMaxRetries,
			InitialInterval: cfg.RetryInitialInterval,
			MaxInterval:     cfg.RetryMaxInterval,
			Multiplier:      cfg.RetryMultiplier,
			Logger:          logger,
		}.Middleware,
	)

	wmRouter.AddConsumerHandler(HandlerPersistRecommendations, TopicRecommendationServed, sub, r.skipMalformed(TopicRecommendationServed, r.persistRecommendation))
	wmRouter.AddConsumerHandler(HandlerQuestionnaireAudit, TopicQuestionnaireSubmitted, sub, r.skipMalformed(TopicQuestionnaireSubmitted, r.auditQuestionnaire))

	return r, nil
}

func (r *Router) persistRecommendation(msg *message.Message) error {
	ev, err := DecodeRecommendationServed(msg.Payload)
	if err != nil {
		return err
	}
	if err := r.recorder.RecordRecommendationServed(msg.Context(), ev); err != nil {
		return fmt.Errorf("record event %s: %w", ev.EventID, err)
	}
	r.persisted.Add(1)
	return nil
}

func (r *Router) auditQuestionnaire(msg *message.Message) error {
	ev, err := DecodeQuestionnaireSubmitted(msg.Payload)
	if err != nil {
		return err
	}
	r.audited.Add(1)
	r.logger.Info("Questionnaire submitted", watermill.LogFields{
		"event_id":     ev.EventID,
		"month":        ev.Month,
		"no_of_people": ev.PartySize,
	})
	return nil
}

// skipMalformed acks payloads that can never be processed instead of
// handing them to the Retry middleware.
func (r *Router) skipMalformed(topic string, h message.NoPublishHandlerFunc) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		err := h(msg)
		metrics.RecordEventConsumed(topic, err)
		if errors.Is(err, ErrInvalidEvent) {
			r.dropped.Add(1)
			r.logger.Error("Dropping malformed event", err, watermill.LogFields{"topic": topic, "message_uuid": msg.UUID})
			return nil
		}
		return err
	}
}

// ackExhausted acks a message once retries are exhausted. A nacked message
// would be redelivered forever and block the topic.
func (r *Router) ackExhausted(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		out, err := h(msg)
		if err != nil {
			r.failed.Add(1)
			r.logger.Error("Event handling failed after retries, dropping", err, watermill.LogFields{
				"message_uuid":   msg.UUID,
				"correlation_id": middleware.MessageCorrelationID(msg),
			})
			return nil, nil
		}
		return out, nil
	}
}

// Run blocks until ctx is canceled or Close is called. A Router runs once.
func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running is closed once all handlers are subscribed.
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

// Close stops the router, waiting up to CloseTimeout for in-flight messages.
func (r *Router) Close() error {
	return r.router.Close()
}

// Stats returns handler outcome counters.
func (r *Router) Stats() RouterStats {
	return RouterStats{
		Persisted: r.persisted.Load(),
		Dropped:   r.dropped.Load(),
		Failed:    r.failed.Load(),
		Audited:   r.audited.Load(),
	}
}
