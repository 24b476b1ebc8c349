// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// urlRule describes what a configured URL may contain.
type urlRule struct {
	schemes   []string
	allowPath bool
}

var (
	// Provider base URLs: the client appends the resource path.
	baseURLRule = urlRule{schemes: []string{"http", "https"}}

	// The hotel listing is configured as its full endpoint.
	endpointURLRule = urlRule{schemes: []string{"http", "https"}, allowPath: true}

	natsURLRule = urlRule{schemes: []string{"nats", "tls", "ws", "wss"}, allowPath: true}
)

func (r urlRule) check(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if !slices.Contains(r.schemes, u.Scheme) {
		return fmt.Errorf("scheme must be one of %s, got %q", strings.Join(r.schemes, ", "), u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required (e.g. localhost:4222 or api.example.com)")
	}
	if !r.allowPath && u.Path != "" && u.Path != "/" {
		return fmt.Errorf("should be a base URL, remove path %s", u.Path)
	}
	if u.RawQuery != "" {
		return fmt.Errorf("should not carry query parameters, remove ?%s", u.RawQuery)
	}
	return nil
}

// validateHTTPURL checks a provider base URL: http(s), a host, and nothing
// after an optional trailing slash.
func validateHTTPURL(rawURL, fieldName string) error {
	if err := baseURLRule.check(rawURL); err != nil {
		return fmt.Errorf("%s %w", fieldName, err)
	}
	return nil
}

// validateEndpointURL is validateHTTPURL with a path allowed.
func validateEndpointURL(rawURL, fieldName string) error {
	if err := endpointURLRule.check(rawURL); err != nil {
		return fmt.Errorf("%s %w", fieldName, err)
	}
	return nil
}

func validateNATSURL(rawURL string) error {
	return natsURLRule.check(rawURL)
}
