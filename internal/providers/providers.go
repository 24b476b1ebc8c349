// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package providers

import (
	"time"

	"github.com/tomtom215/tripwise/internal/cache"
	"github.com/tomtom215/tripwise/internal/config"
)

// Set groups the provider clients the recommendation engine depends on.
type Set struct {
	Distance *DistanceClient
	Transit  *TransitClient
	Weather  *WeatherClient
	Hotels   *HotelsClient
}

// New builds every provider client from configuration. store may be nil,
// in which case responses are not cached.
func New(cfg *config.ProvidersConfig, cacheCfg *config.CacheConfig, store cache.Store) *Set {
	if !cacheCfg.Enabled {
		store = nil
	}
	return &Set{
		Distance: NewDistanceClient(cfg, cacheCfg, store),
		Transit:  NewTransitClient(cfg, cacheCfg, store),
		Weather:  NewWeatherClient(cfg, cacheCfg, store),
		Hotels:   NewHotelsClient(cfg, cacheCfg, store),
	}
}

// NewDistanceClient creates the Distance Matrix client.
func NewDistanceClient(cfg *config.ProvidersConfig, cacheCfg *config.CacheConfig, store cache.Store) *DistanceClient {
	return &DistanceClient{c: newClient(baseOptions("distance", cfg, cfg.Distance, store, cacheCfg.DistanceTTL, true))}
}

// NewTransitClient creates the Directions client used for transit fares.
func NewTransitClient(cfg *config.ProvidersConfig, cacheCfg *config.CacheConfig, store cache.Store) *TransitClient {
	return &TransitClient{c: newClient(baseOptions("transit", cfg, cfg.Transit, store, cacheCfg.TransitTTL, true))}
}

// NewWeatherClient creates the OpenWeather client.
func NewWeatherClient(cfg *config.ProvidersConfig, cacheCfg *config.CacheConfig, store cache.Store) *WeatherClient {
	return &WeatherClient{c: newClient(baseOptions("weather", cfg, cfg.Weather, store, cacheCfg.WeatherTTL, true))}
}

// NewHotelsClient creates the hotel listing client. The API key is optional.
func NewHotelsClient(cfg *config.ProvidersConfig, cacheCfg *config.CacheConfig, store cache.Store) *HotelsClient {
	o := baseOptions("hotels", cfg, cfg.Hotels, store, cacheCfg.HotelsTTL, false)
	o.bearer = true
	return &HotelsClient{c: newClient(o)}
}

func baseOptions(name string, cfg *config.ProvidersConfig, p config.ProviderConfig, store cache.Store, ttl time.Duration, needsKey bool) clientOptions {
	return clientOptions{
		name:       name,
		provider:   p,
		timeout:    cfg.Timeout,
		retryCount: cfg.RetryCount,
		breaker:    cfg.Breaker,
		store:      store,
		ttl:        ttl,
		needsKey:   needsKey,
	}
}
