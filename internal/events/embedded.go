// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package events

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/nats-io/nats-server/v2/server"
)

const (
	defaultNATSPort   = 4222
	embeddedReadyWait = 30 * time.Second
	embeddedMaxBytes  = 1024 * 1024
)

// EmbeddedServer is a single-node JetStream server running in-process.
// It lets one Tripwise instance use the durable NATS bus without an
// external broker.
type EmbeddedServer struct {
	server *server.Server
}

// StartEmbeddedServer starts a JetStream server listening on the host and
// port of listenURL. Port 0 picks a free port. The call blocks until the
// server accepts clients.
func StartEmbeddedServer(listenURL, storeDir string) (*EmbeddedServer, error) {
	host, port, err := listenAddr(listenURL)
	if err != nil {
		return nil, err
	}

	opts := &server.Options{
		ServerName: "tripwise-events",
		Host:       host,
		Port:       port,
		JetStream:  true,
		StoreDir:   storeDir,
		MaxPayload: embeddedMaxBytes,
		NoSigs:     true,
		NoLog:      true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return nil, fmt.Errorf("create NATS server: %w", err)
	}
	go ns.Start()

	if !ns.ReadyForConnections(embeddedReadyWait) {
		ns.Shutdown()
		return nil, fmt.Errorf("NATS server not ready within %s", embeddedReadyWait)
	}
	return &EmbeddedServer{server: ns}, nil
}

// ClientURL is the URL clients connect to.
func (s *EmbeddedServer) ClientURL() string {
	return s.server.ClientURL()
}

// JetStreamEnabled reports whether JetStream came up.
func (s *EmbeddedServer) JetStreamEnabled() bool {
	return s.server.JetStreamEnabled()
}

// Close stops the server and waits for it to exit.
func (s *EmbeddedServer) Close() error {
	s.server.Shutdown()
	s.server.WaitForShutdown()
	return nil
}

func listenAddr(rawURL string) (string, int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, fmt.Errorf("parse NATS URL: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", 0, fmt.Errorf("NATS URL %q has no host", rawURL)
	}
	if u.Port() == "" {
		return host, defaultNATSPort, nil
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return "", 0, fmt.Errorf("NATS URL port %q: %w", u.Port(), err)
	}
	if port == 0 {
		port = server.RANDOM_PORT
	}
	return host, port, nil
}
