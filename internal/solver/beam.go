// Package solver computes the static Euler-Bernoulli response of a simply
// supported beam: support reactions, shear, bending moment, deflection and
// the bending-stress field over the cross-section depth.
package solver

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/material"
	"github.com/alexiusacademia/gobeam/internal/section"
)

var (
	// ErrInvalidMesh is returned when the requested mesh has fewer than
	// two nodes.
	ErrInvalidMesh = errors.New("solver: mesh density below minimum of 2 nodes")

	// ErrMeshTooFine is returned when a requested resolution exceeds the
	// hard upper bounds, keeping solve time bounded.
	ErrMeshTooFine = errors.New("solver: mesh resolution above hard limit")

	// ErrIllConditionedSpan is returned for a non-positive span length or
	// flexural rigidity.
	ErrIllConditionedSpan = errors.New("solver: non-positive span or flexural rigidity")
)

// Resolution caps. Inputs are user-controlled; anything above these is
// rejected with ErrMeshTooFine rather than ground through.
const (
	MaxMeshNodes     = 200_000
	MaxStressSamples = 10_000
)

// Beam is a simply supported prismatic beam: pinned at x = 0 and x = Span.
type Beam struct {
	Span     float64 // L (m)
	Material material.Material
	Section  section.Section
}

// NewSimplySupported validates span and flexural rigidity and returns the
// beam. Material and Section are assumed to have been validated by their
// own constructors; EI is re-checked here so an invalid combination cannot
// reach the integrators.
func NewSimplySupported(span float64, mat material.Material, sec section.Section) (Beam, error) {
	b := Beam{Span: span, Material: mat, Section: sec}
	if span <= 0 {
		return Beam{}, fmt.Errorf("%w: L=%.4g m", ErrIllConditionedSpan, span)
	}
	if b.EI() <= 0 {
		return Beam{}, fmt.Errorf("%w: EI=%.4g N·m²", ErrIllConditionedSpan, b.EI())
	}
	return b, nil
}

// EI returns the flexural rigidity E·I (N·m²).
func (b Beam) EI() float64 {
	return b.Material.Youngs * b.Section.Inertia
}
