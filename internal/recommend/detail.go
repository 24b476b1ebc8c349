// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tomtom215/tripwise/internal/database"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
	"github.com/tomtom215/tripwise/internal/providers"
	"github.com/tomtom215/tripwise/internal/recommend/budget"
)

// DestinationDetail returns the enriched view of one destination for userID.
// The trip origin and party size come from the user's questionnaire.
func (e *Engine) DestinationDetail(ctx context.Context, userID string, destinationID int64) (*models.DestinationDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	dest, err := e.deps.Catalog.GetDestination(ctx, destinationID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrDestinationNotFound, destinationID)
	}
	if err != nil {
		return nil, fmt.Errorf("load destination: %w", err)
	}

	q, err := e.questionnaire(ctx, userID)
	if err != nil {
		return nil, err
	}

	guides, err := e.deps.Catalog.GuidesForDestination(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("load guides: %w", err)
	}
	views := make([]models.GuideView, len(guides))
	for i, g := range guides {
		views[i] = models.GuideView{Guide: g, PhotoURL: GuidePhotoURL(g.ID)}
	}

	detail := &models.DestinationDetail{
		Destination: dest,
		Activities:  dest.Activities(),
		Guides:      views,
		ImageURL:    DestinationImageURL(dest.ID),
	}

	var (
		wg      sync.WaitGroup
		leg     *models.TripLeg
		legErr  error
		fc      []models.DailyForecast
		fcErr   error
		hotels  []models.Hotel
		hotErr  error
		fare    *models.Fare
		fareErr error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		leg, legErr = e.lookupDistance(ctx, q.Start, dest.Location)
	}()
	go func() {
		defer wg.Done()
		fc, fcErr = e.lookupForecast(ctx, dest.Name)
	}()
	go func() {
		defer wg.Done()
		hotels, hotErr = e.lookupHotels(ctx, dest.Name)
	}()
	go func() {
		defer wg.Done()
		fare, fareErr = e.lookupTransit(ctx, q.Start, dest.Location)
	}()
	wg.Wait()

	detail.Unavailable = []string{}
	degrade := func(lookup string, err error) {
		detail.Unavailable = append(detail.Unavailable, lookup)
		metrics.RecordFallback(lookup)
		if !errors.Is(err, providers.ErrDisabled) {
			logging.CtxWarn(ctx).Err(err).Str("lookup", lookup).Int64("destination_id", destinationID).Msg("enrichment lookup failed")
		}
	}

	costLeg := estimatedLeg(q.Start, dest.Location)
	if legErr != nil {
		degrade(LookupDistance, legErr)
	} else {
		detail.Distance = leg
		costLeg = *leg
	}
	if fcErr != nil {
		degrade(LookupWeather, fcErr)
	} else {
		detail.Forecast = fc
	}
	if hotErr != nil {
		degrade(LookupHotels, hotErr)
	} else {
		detail.Hotels = hotels
	}
	if fareErr != nil {
		degrade(LookupTransit, fareErr)
	} else {
		detail.TransitFare = fare
	}

	costs, err := budget.ModeCosts(costLeg.DistanceKM, q.PartySize)
	if err != nil {
		return nil, fmt.Errorf("mode costs: %w", err)
	}
	mc := transportCosts(costs.Rounded())
	detail.ModeCosts = &mc

	return detail, nil
}

func (e *Engine) lookupDistance(ctx context.Context, origin, dest models.Coordinates) (*models.TripLeg, error) {
	if e.deps.Distances == nil {
		return nil, providers.ErrDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, e.cfg.LookupTimeout)
	defer cancel()
	leg, err := e.deps.Distances.Distance(ctx, origin, dest)
	if err != nil {
		return nil, err
	}
	return &leg, nil
}

func (e *Engine) lookupForecast(ctx context.Context, city string) ([]models.DailyForecast, error) {
	if e.deps.Weather == nil {
		return nil, providers.ErrDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, e.cfg.LookupTimeout)
	defer cancel()
	return e.deps.Weather.Forecast(ctx, city)
}

func (e *Engine) lookupHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	if e.deps.Hotels == nil {
		return nil, providers.ErrDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, e.cfg.LookupTimeout)
	defer cancel()
	return e.deps.Hotels.Hotels(ctx, city)
}

func (e *Engine) lookupTransit(ctx context.Context, origin, dest models.Coordinates) (*models.Fare, error) {
	if e.deps.Transit == nil {
		return nil, providers.ErrDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, e.cfg.LookupTimeout)
	defer cancel()
	return e.deps.Transit.TransitFare(ctx, origin, dest)
}
