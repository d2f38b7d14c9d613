// Package load normalizes heterogeneous load inputs (distributed intervals
// and point loads at fractional span positions) into a single evaluable
// Model the solver can integrate.
package load

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidLoadRange is returned when a distributed-load interval
	// lies outside the span or is reversed (x0 > x1).
	ErrInvalidLoadRange = errors.New("load: distributed interval outside span")

	// ErrInvalidLoadPosition is returned when a point load's fractional
	// position falls outside [0, 1].
	ErrInvalidLoadPosition = errors.New("load: point position outside [0, 1]")
)

// Distributed is a constant-intensity load over [Start, End] ⊆ [0, L].
// Intensity is force per unit length (N/m), positive downward.
// Overlapping intervals add.
type Distributed struct {
	Start     float64 // m
	End       float64 // m
	Intensity float64 // N/m
}

// Point is a concentrated transverse load at fractional span position
// Position ∈ [0, 1]. Magnitude in N, positive downward.
type Point struct {
	Position  float64
	Magnitude float64 // N
	Label     string
}

// ResolvedPoint is a point load mapped to its absolute span coordinate.
type ResolvedPoint struct {
	X         float64 // m
	Magnitude float64 // N
	Label     string
}

// Model is the aggregated, validated load layout for one span.
// It is built once by Aggregate and read-only afterwards.
type Model struct {
	span        float64
	distributed []Distributed
	points      []ResolvedPoint
}

// Aggregate validates every load against the span and returns a Model.
// Point loads are resolved to x = t·span and sorted by position; loads at
// equal positions keep their input (editing) order.
func Aggregate(distributed []Distributed, points []Point, span float64) (*Model, error) {
	for _, d := range distributed {
		if d.Start > d.End {
			return nil, fmt.Errorf("%w: [%.4g, %.4g] reversed", ErrInvalidLoadRange, d.Start, d.End)
		}
		if d.Start < 0 || d.End > span {
			return nil, fmt.Errorf("%w: [%.4g, %.4g] not within [0, %.4g]", ErrInvalidLoadRange, d.Start, d.End, span)
		}
	}
	resolved := make([]ResolvedPoint, 0, len(points))
	for _, p := range points {
		if p.Position < 0 || p.Position > 1 {
			return nil, fmt.Errorf("%w: t=%.4g", ErrInvalidLoadPosition, p.Position)
		}
		resolved = append(resolved, ResolvedPoint{X: p.Position * span, Magnitude: p.Magnitude, Label: p.Label})
	}
	sort.SliceStable(resolved, func(i, j int) bool { return resolved[i].X < resolved[j].X })

	m := &Model{span: span, points: resolved}
	m.distributed = append(m.distributed, distributed...)
	return m, nil
}

// Span returns the span length the model was validated against.
func (m *Model) Span() float64 { return m.span }

// DensityAt evaluates the summed load density w(x) in N/m. Positions not
// covered by any interval contribute zero; overlapping intervals sum.
func (m *Model) DensityAt(x float64) float64 {
	var w float64
	for _, d := range m.distributed {
		if x >= d.Start && x <= d.End {
			w += d.Intensity
		}
	}
	return w
}

// Points returns the resolved point loads sorted by position.
func (m *Model) Points() []ResolvedPoint {
	out := make([]ResolvedPoint, len(m.points))
	copy(out, m.points)
	return out
}

// TotalForce returns the exact resultant of all loads (N), integrating the
// distributed intervals in closed form.
func (m *Model) TotalForce() float64 {
	var total float64
	for _, d := range m.distributed {
		total += d.Intensity * (d.End - d.Start)
	}
	for _, p := range m.points {
		total += p.Magnitude
	}
	return total
}

// MomentAboutOrigin returns the exact first moment of all loads about
// x = 0 (N·m), used for the support reaction balance.
func (m *Model) MomentAboutOrigin() float64 {
	var moment float64
	for _, d := range m.distributed {
		// resultant acts at the interval midpoint
		moment += d.Intensity * (d.End - d.Start) * (d.Start + d.End) / 2
	}
	for _, p := range m.points {
		moment += p.Magnitude * p.X
	}
	return moment
}
