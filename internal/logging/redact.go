// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package logging

import (
	"net/url"
	"strings"
)

const (
	redacted      = "***"
	redactedParam = "REDACTED"
)

// secretParams are query parameters that carry provider credentials.
var secretParams = map[string]bool{
	"key":     true,
	"appid":   true,
	"api_key": true,
	"apikey":  true,
	"token":   true,
}

// RedactSecret masks a credential, showing only its first and last four
// characters. Short values are masked entirely.
func RedactSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 12 {
		return redacted
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

// RedactUserID shortens a user ID so log lines can be correlated without
// storing the full identifier.
func RedactUserID(userID string) string {
	if userID == "" {
		return ""
	}
	if len(userID) <= 8 {
		return redacted
	}
	return userID[:4] + "..." + userID[len(userID)-4:]
}

// RedactURL masks credential query parameters in rawURL. An unparseable
// URL is replaced entirely.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return redacted
	}
	q := u.Query()
	changed := false
	for name := range q {
		if secretParams[strings.ToLower(name)] {
			q.Set(name, redactedParam)
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// TruncateError shortens an error message for log fields and API details.
func TruncateError(msg string, maxLen int) string {
	if len(msg) <= maxLen {
		return msg
	}
	return msg[:maxLen] + "..."
}
