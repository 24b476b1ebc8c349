// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/tripwise/internal/breaker"
	"github.com/tomtom215/tripwise/internal/cache"
	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/metrics"
)

const userAgent = "tripwise/1.0"

// client is the transport shared by every provider: a resty client with
// retries, an outbound rate limiter, a circuit breaker, and a response cache.
type client struct {
	name     string
	cfg      config.ProviderConfig
	http     *resty.Client
	limiter  *rate.Limiter
	breaker  *breaker.Breaker[*resty.Response]
	store    cache.Store
	ttl      time.Duration
	needsKey bool
}

type clientOptions struct {
	name       string
	provider   config.ProviderConfig
	timeout    time.Duration
	retryCount int
	breaker    config.BreakerConfig
	store      cache.Store
	ttl        time.Duration
	needsKey   bool
	bearer     bool
}

func newClient(o clientOptions) *client {
	httpClient := resty.New().
		SetBaseURL(o.provider.BaseURL).
		SetTimeout(o.timeout).
		SetRetryCount(o.retryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})
	httpClient.JSONMarshal = json.Marshal
	httpClient.JSONUnmarshal = json.Unmarshal
	if o.bearer && o.provider.APIKey != "" {
		httpClient.SetAuthToken(o.provider.APIKey)
	}

	limit := rate.Inf
	if o.provider.RateLimit > 0 {
		limit = rate.Limit(o.provider.RateLimit)
	}
	burst := o.provider.Burst
	if burst < 1 {
		burst = 1
	}

	store := o.store
	if store == nil {
		store = cache.Disabled{}
	}

	return &client{
		name:     o.name,
		cfg:      o.provider,
		http:     httpClient,
		limiter:  rate.NewLimiter(limit, burst),
		breaker:  breaker.New[*resty.Response](o.name+"-api", o.breaker, breaker.WithExpectedErrors(ErrCityNotFound, ErrNoRoute, errNoHotels, context.Canceled)),
		store:    store,
		ttl:      o.ttl,
		needsKey: o.needsKey,
	}
}

// available reports whether the provider may be called at all.
func (c *client) available() bool {
	if !c.cfg.Enabled || c.cfg.BaseURL == "" {
		return false
	}
	return !c.needsKey || c.cfg.APIKey != ""
}

// get performs a GET through the limiter and breaker and returns the body of
// a 2xx response. classify maps non-2xx responses to errors; it may return
// sentinel errors such as ErrCityNotFound.
func (c *client) get(ctx context.Context, path string, params map[string]string, classify func(*resty.Response) error) ([]byte, error) {
	if !c.available() {
		return nil, fmt.Errorf("%s: %w", c.name, ErrDisabled)
	}

	if !c.limiter.Allow() {
		metrics.ProviderRateLimitWaits.WithLabelValues(c.name).Inc()
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: rate limit wait: %w", c.name, err)
		}
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(path)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return resp, classify(resp)
		}
		return resp, nil
	})
	metrics.RecordProviderRequest(c.name, time.Since(start), err)

	if err != nil {
		url := path
		if resp != nil && resp.Request != nil && resp.Request.RawRequest != nil {
			url = logging.RedactURL(resp.Request.RawRequest.URL.String())
		}
		logging.Ctx(ctx).Debug().Err(err).Str("provider", c.name).Str("url", url).Msg("Provider request failed")
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	return resp.Body(), nil
}

// statusError is the default classify function.
func (c *client) statusError(resp *resty.Response) error {
	return &StatusError{Provider: c.name, StatusCode: resp.StatusCode()}
}

// cached returns the cached value for key or calls fetch and stores its
// result. Cache failures are logged and otherwise ignored.
func cached[T any](ctx context.Context, c *client, namespace, key string, fetch func(context.Context) (T, error)) (T, error) {
	var out T
	hit, err := c.store.Get(ctx, namespace, key, &out)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("namespace", namespace).Msg("Provider cache read failed")
	}
	if hit {
		return out, nil
	}

	out, err = fetch(ctx)
	if err != nil {
		return out, err
	}
	if err := c.store.Set(ctx, namespace, key, out, c.ttl); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("namespace", namespace).Msg("Provider cache write failed")
	}
	return out, nil
}

func decode(name string, body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%s: decode response: %w", name, err)
	}
	return nil
}
