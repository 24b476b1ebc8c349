// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/tomtom215/tripwise/internal/config"
)

// Bus backends.
const (
	BackendInProcess = "gochannel"
	BackendNATS      = "nats"
)

const (
	inProcessBuffer   = 256
	subscriberCount   = 2
	ackWaitTimeout    = 30 * time.Second
	maxDeliver        = 5
	maxAckPending     = 256
	reconnectBufBytes = 8 * 1024 * 1024
)

// Bus is the publisher and subscriber pair shared by the process.
type Bus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	backend    string
	closers    []func() error
}

// NewInProcessBus returns a bus backed by a Watermill gochannel.
// Messages published while nothing is subscribed are dropped.
func NewInProcessBus(logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: inProcessBuffer}, logger)
	return &Bus{
		publisher:  ch,
		subscriber: ch,
		backend:    BackendInProcess,
		closers:    []func() error{ch.Close},
	}
}

// NewBus selects the backend from configuration.
func NewBus(ctx context.Context, cfg *config.EventsConfig, logger watermill.LoggerAdapter) (*Bus, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if !cfg.NATS.Enabled {
		return NewInProcessBus(logger), nil
	}
	if !cfg.NATS.Embedded {
		return newNATSBus(ctx, &cfg.NATS, cfg.RouterCloseTimeout, logger)
	}

	embedded, err := StartEmbeddedServer(cfg.NATS.URL, cfg.NATS.StoreDir)
	if err != nil {
		return nil, err
	}
	natsCfg := cfg.NATS
	natsCfg.URL = embedded.ClientURL()
	logger.Info("Embedded NATS server started", watermill.LogFields{"url": natsCfg.URL, "store_dir": natsCfg.StoreDir})

	bus, err := newNATSBus(ctx, &natsCfg, cfg.RouterCloseTimeout, logger)
	if err != nil {
		_ = embedded.Close()
		return nil, err
	}
	// Clients close before the server.
	bus.closers = append(bus.closers, embedded.Close)
	return bus, nil
}

func newNATSBus(ctx context.Context, cfg *config.NATSConfig, closeTimeout time.Duration, logger watermill.LoggerAdapter) (*Bus, error) {
	if err := ensureStream(ctx, cfg); err != nil {
		return nil, err
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOptions(cfg, logger, "publisher"),
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			Disabled:      false,
			AutoProvision: false, // stream created by ensureStream
			TrackMsgId:    true,
			PublishOptions: []natsgo.PubOpt{
				natsgo.RetryAttempts(3),
				natsgo.RetryWait(100 * time.Millisecond),
			},
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              cfg.URL,
		QueueGroupPrefix: cfg.QueueGroup,
		SubscribersCount: subscriberCount,
		AckWaitTimeout:   ackWaitTimeout,
		CloseTimeout:     closeTimeout,
		NatsOptions:      natsOptions(cfg, logger, "subscriber"),
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			Disabled:      false,
			AutoProvision: false,
			AckAsync:      false,
			SubscribeOptions: []natsgo.SubOpt{
				natsgo.MaxDeliver(maxDeliver),
				natsgo.MaxAckPending(maxAckPending),
				natsgo.AckWait(ackWaitTimeout),
				natsgo.DeliverNew(),
				natsgo.BindStream(cfg.StreamName),
			},
			DurablePrefix: cfg.DurableName,
		},
	}, logger)
	if err != nil {
		_ = pub.Close() // construction already failed
		return nil, fmt.Errorf("create watermill subscriber: %w", err)
	}

	return &Bus{
		publisher:  pub,
		subscriber: sub,
		backend:    BackendNATS,
		closers:    []func() error{pub.Close, sub.Close},
	}, nil
}

func natsOptions(cfg *config.NATSConfig, logger watermill.LoggerAdapter, role string) []natsgo.Option {
	return []natsgo.Option{
		natsgo.Name("tripwise-" + role),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.ReconnectBufSize(reconnectBufBytes),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, watermill.LogFields{"role": role})
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"role": role, "url": nc.ConnectedUrl()})
		}),
	}
}

// ensureStream connects once to create or update the JetStream stream.
func ensureStream(ctx context.Context, cfg *config.NATSConfig) error {
	nc, err := natsgo.Connect(cfg.URL, natsgo.Name("tripwise-stream-init"), natsgo.Timeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("create JetStream context: %w", err)
	}

	initializer := NewStreamInitializer(js, StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{SubjectWildcard},
		MaxAge:   cfg.StreamMaxAge,
	})
	return initializer.EnsureStream(ctx)
}

// Publisher returns the raw Watermill publisher.
func (b *Bus) Publisher() message.Publisher {
	return b.publisher
}

// Subscriber returns the raw Watermill subscriber.
func (b *Bus) Subscriber() message.Subscriber {
	return b.subscriber
}

// Backend reports BackendInProcess or BackendNATS.
func (b *Bus) Backend() string {
	return b.backend
}

// Close closes the publisher and subscriber.
func (b *Bus) Close() error {
	var errs []error
	for _, closeFn := range b.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
