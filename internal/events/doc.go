// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package events carries Tripwise domain events over Watermill.

Two events exist:

	tripwise.recommendation.served      one per recommendation list returned
	tripwise.questionnaire.submitted    one per questionnaire upsert

Payloads are JSON (goccy/go-json) and always carry a uuid event id, which
is also used as the Watermill message UUID and the NATS Nats-Msg-Id header
so JetStream can drop duplicate publishes.

# Backends

The Bus holds a Watermill publisher and subscriber pair. By default it is an
in-process gochannel. With events.nats.enabled the bus connects to NATS
JetStream through watermill-nats, after making sure the stream that owns the
tripwise.> subjects exists:

	bus, err := events.NewBus(ctx, &cfg.Events, logging.NewWatermillLogger())
	if err != nil {
	    return err
	}
	defer bus.Close()

With events.nats.embedded as well, NewBus first starts a single-node
JetStream server (nats-server) on the host and port of events.nats.url and
connects to it. Bus.Close stops the server after the clients.

# Publishing

Publisher wraps the bus publisher in a circuit breaker. Publishing is
best-effort from the caller's point of view: the recommendation engine logs
and counts publish failures but never fails a request because of them.

# Consuming

Router is a Watermill message.Router with Recoverer and Retry middleware.
Its handlers persist served recommendations through a Recorder (the DuckDB
store) for the popularity analytics. Malformed payloads are logged and
dropped. Store failures are retried and then dropped with an error log.

A Router cannot be restarted once it has stopped, so the supervisor service
takes a factory and builds a fresh router on every restart.
*/
package events
