// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package budget

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSuitability_ReferencePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		distance float64
		party    int
		want     Probabilities
	}{
		{
			name:     "100km party of 4",
			distance: 100,
			party:    4,
			want: Probabilities{
				Bicycle:    0.30115437625123603,
				Car:        0.3480006125569839,
				PrivateBus: 0.06559860745654739,
				Transit:    0.2852464037352327,
			},
		},
		{
			name:     "zero distance party of 10",
			distance: 0,
			party:    10,
			want: Probabilities{
				Bicycle:    0.4486314954383181,
				Car:        0.49847943937590905,
				PrivateBus: 0.05288906518577285,
				Transit:    0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Suitability(tt.distance, tt.party)
			if err != nil {
				t.Fatalf("Suitability() error = %v", err)
			}
			for _, m := range Modes {
				if !approxEqual(got.Of(m), tt.want.Of(m), 1e-9) {
					t.Errorf("P(%s) = %v, want %v", m, got.Of(m), tt.want.Of(m))
				}
			}
		})
	}
}

func TestSuitability_Distribution(t *testing.T) {
	t.Parallel()

	distances := []float64{0, 0.5, 1, 10, 49.9, 50, 100, 150, 300, 1000, 1e6}
	for _, d := range distances {
		for n := 1; n <= 60; n++ {
			p, err := Suitability(d, n)
			if err != nil {
				t.Fatalf("Suitability(%v, %d) error = %v", d, n, err)
			}
			if !approxEqual(p.Sum(), 1, 1e-9) {
				t.Errorf("Suitability(%v, %d) sums to %v", d, n, p.Sum())
			}
			for _, m := range Modes {
				if v := p.Of(m); v < 0 || v > 1 {
					t.Errorf("Suitability(%v, %d) P(%s) = %v out of [0,1]", d, n, m, v)
				}
			}
		}
	}
}

func TestSuitability_TransitZeroAtOrigin(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 100; n++ {
		p, err := Suitability(0, n)
		if err != nil {
			t.Fatalf("Suitability(0, %d) error = %v", n, err)
		}
		if p.Transit != 0 {
			t.Errorf("Suitability(0, %d).Transit = %v, want 0", n, p.Transit)
		}
	}
}

func TestSuitability_TransitGrowsWithDistance(t *testing.T) {
	t.Parallel()

	near, _ := Suitability(10, 10)
	far, _ := Suitability(1000, 10)
	if far.Transit <= near.Transit {
		t.Errorf("transit share at 1000km (%v) should exceed share at 10km (%v)", far.Transit, near.Transit)
	}
}

func TestSuitability_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		distance float64
		party    int
		wantErr  error
	}{
		{"negative distance", -1, 4, ErrInvalidDistance},
		{"NaN distance", math.NaN(), 4, ErrInvalidDistance},
		{"infinite distance", math.Inf(1), 4, ErrInvalidDistance},
		{"zero party", 10, 0, ErrInvalidPartySize},
		{"negative party", 10, -3, ErrInvalidPartySize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Suitability(tt.distance, tt.party)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Suitability() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestModeCosts(t *testing.T) {
	t.Parallel()

	costs, err := ModeCosts(100, 4)
	if err != nil {
		t.Fatalf("ModeCosts() error = %v", err)
	}
	want := Costs{Bicycle: 1500, Car: 1600, PrivateBus: 960, Transit: 16}
	for _, m := range Modes {
		if !approxEqual(costs.Of(m), want.Of(m), 1e-9) {
			t.Errorf("cost(%s) = %v, want %v", m, costs.Of(m), want.Of(m))
		}
	}

	single := map[Mode]func(float64, int) (float64, error){
		Bicycle:    CostForBicycle,
		Car:        CostForCar,
		PrivateBus: CostForPrivateBus,
		Transit:    CostForTransit,
	}
	for m, fn := range single {
		got, err := fn(100, 4)
		if err != nil {
			t.Fatalf("CostFor%s() error = %v", m, err)
		}
		if !approxEqual(got, want.Of(m), 1e-9) {
			t.Errorf("CostFor%s(100, 4) = %v, want %v", m, got, want.Of(m))
		}
	}

	if _, err := CostForCar(-5, 4); !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("CostForCar(-5) error = %v, want ErrInvalidDistance", err)
	}
}

func TestModeCosts_FractionalVehicles(t *testing.T) {
	t.Parallel()

	// One traveler occupies a fifth of a car.
	got, err := CostForCar(10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(got, 40, eps) {
		t.Errorf("CostForCar(10, 1) = %v, want 40", got)
	}
}

func TestCosts_Rounded(t *testing.T) {
	t.Parallel()

	c := Costs{Bicycle: 2.5, Car: 3.5, PrivateBus: 10.49, Transit: 0.5}.Rounded()
	want := Costs{Bicycle: 2, Car: 4, PrivateBus: 10, Transit: 0}
	if c != want {
		t.Errorf("Rounded() = %+v, want %+v", c, want)
	}
}

func TestEstimate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		avgCost  float64
		distance float64
		party    int
		want     int
	}{
		{"baseline", 50, 100, 4, 1276},
		{"zero distance is on-site only", 50, 0, 10, 500},
		{"couple long trip", 3500, 120, 2, 7546},
		{"solo short trip", 0, 10, 1, 37},
		{"large group", 1200, 250, 30, 51967},
		{"short hop", 50, 10, 4, 350},
		{"car range", 50, 50, 4, 843},
		{"bus range", 50, 200, 4, 1613},
		{"transit range", 50, 400, 4, 1335},
		{"nothing to pay", 0, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Estimate(tt.avgCost, tt.distance, tt.party)
			if err != nil {
				t.Fatalf("Estimate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Estimate(%v, %v, %d) = %d, want %d", tt.avgCost, tt.distance, tt.party, got, tt.want)
			}
		})
	}
}

func TestEstimate_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := Estimate(50, -1, 4); !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("negative distance error = %v", err)
	}
	if _, err := Estimate(50, 10, 0); !errors.Is(err, ErrInvalidPartySize) {
		t.Errorf("zero party error = %v", err)
	}
	if _, err := Estimate(-1, 10, 2); err == nil {
		t.Error("negative on-site cost should fail")
	}
}

// The blend is only monotonic in distance up to the point where the bus and
// transit modes take over; within that range a longer trip never costs less.
func TestEstimate_MonotonicInShortDistance(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 50; n++ {
		prev := -1.0
		for step := 0; step <= 1500; step++ {
			d := float64(step) / 10
			cost, err := ExpectedTransportCost(d, n)
			if err != nil {
				t.Fatal(err)
			}
			if cost < prev-1e-9 {
				t.Fatalf("party %d: cost at %.1f km (%v) below previous (%v)", n, d, cost, prev)
			}
			prev = cost
		}
	}
}

func TestEstimate_MonotonicInPartySizeNearby(t *testing.T) {
	t.Parallel()

	for d := 0; d <= 60; d++ {
		prev := -1.0
		for n := 1; n <= 100; n++ {
			cost, err := ExpectedTransportCost(float64(d), n)
			if err != nil {
				t.Fatal(err)
			}
			total := cost + float64(n)*50
			if total < prev-1e-9 {
				t.Fatalf("distance %d: budget for %d travelers (%v) below previous (%v)", d, n, total, prev)
			}
			prev = total
		}
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	want := []string{"bicycle", "car", "private_bus", "transit"}
	for i, m := range Modes {
		if m.String() != want[i] {
			t.Errorf("Mode(%d).String() = %q, want %q", i, m.String(), want[i])
		}
	}
	if Capacity(PrivateBus) != 30 || RatePerKM(Bicycle) != 7.5 {
		t.Error("unexpected mode table constants")
	}
}

func BenchmarkEstimate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Estimate(50, 100, 4)
	}
}
