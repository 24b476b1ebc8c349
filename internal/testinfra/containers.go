// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
)

var (
	dockerOnce sync.Once
	dockerUp   bool
)

// IsDockerAvailable reports whether `docker info` succeeds. The check runs
// once per test binary.
func IsDockerAvailable() bool {
	dockerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		dockerUp = exec.CommandContext(ctx, "docker", "info").Run() == nil
	})
	return dockerUp
}

// SkipIfNoDocker skips t on machines without a reachable Docker daemon.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()
	if !IsDockerAvailable() {
		t.Skip("docker not available")
	}
}

// CleanupContainer terminates c, logging rather than failing on error so
// that cleanup never masks the test result. A nil container is ignored.
func CleanupContainer(t *testing.T, ctx context.Context, c testcontainers.Container) {
	t.Helper()
	if c == nil {
		return
	}
	if err := testcontainers.TerminateContainer(c, testcontainers.StopContext(ctx)); err != nil {
		t.Logf("terminate %s: %v", c.GetContainerID(), err)
	}
}

// MappedAddress returns the host:port the container's port is published on.
func MappedAddress(ctx context.Context, c testcontainers.Container, port string) (string, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return "", fmt.Errorf("mapped port %s: %w", port, err)
	}
	return net.JoinHostPort(host, mapped.Port()), nil
}
