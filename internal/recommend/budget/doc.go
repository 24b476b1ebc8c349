// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package budget estimates trip costs from distance and party size.
//
// # Transport Suitability
//
// Each of the four transport modes gets an unnormalized weight that is the
// product of a distance term and a party-size term. Both terms use the
// Cauchy (Lorentzian) shape 1/(1+((x-x0)/w)^2), peaking at the mode's
// preferred distance or group size. Transit uses a rising distance term
// 1/(1+(50/D)^2) instead, so it dominates long trips and is zero at D=0.
// The four weights are normalized into a probability distribution.
//
//	mode         distance center  party optimum  party width  capacity  rate/km
//	bicycle      0 km             6              3            2         7.5
//	car          50 km            7              3            5         20
//	private_bus  150 km           35             10           30        72
//	transit      (rising)         10             5            50        2
//
// # Budget
//
// Vehicle counts are fractional (N / capacity). The expected transport cost
// is the suitability-weighted sum of per-mode costs, and the trip budget adds
// the on-site cost for every traveler:
//
//	budget = round( sum_m P(m) * (N/cap_m) * rate_m * D  +  N * avgOnSiteCost )
//
// Rounding is half to even.
//
// # Monotonicity
//
// The blend is not monotonic over the whole domain. Longer trips shift
// probability toward cheaper per-km modes, so for distances beyond roughly
// 160 km the budget can fall as distance grows. The same effect makes the
// budget drop with party size at larger distances once the bus becomes likely.
// Callers that need an upper bound should use ModeCosts directly.
//
// All functions are pure and safe for concurrent use.
package budget
