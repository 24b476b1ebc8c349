// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package services

import (
	"context"
	"errors"
	"fmt"
)

// EventRouter is the lifecycle of a message router. Satisfied by *events.Router.
type EventRouter interface {
	Run(ctx context.Context) error
	Close() error
}

// RouterFactory builds a fresh router. A stopped Watermill router cannot be
// run again, so every restart needs a new instance.
type RouterFactory func() (EventRouter, error)

// errRouterStopped is returned when the router exits while ctx is still live.
var errRouterStopped = errors.New("event router stopped unexpectedly")

// EventRouterService runs the event consumers under supervision.
//
// Each Serve call builds a router from the factory, runs it until ctx is
// canceled, and closes it. A router that exits early is reported as an
// error so the supervisor restarts it with backoff.
type EventRouterService struct {
	factory RouterFactory
	name    string
}

// NewEventRouterService returns a service building routers with factory.
func NewEventRouterService(factory RouterFactory) *EventRouterService {
	return &EventRouterService{factory: factory, name: "event-router"}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	router, err := s.factory()
	if err != nil {
		return fmt.Errorf("build event router: %w", err)
	}
	defer router.Close()

	runErr := router.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if runErr != nil {
		return fmt.Errorf("event router: %w", runErr)
	}
	return errRouterStopped
}

func (s *EventRouterService) String() string {
	return s.name
}
