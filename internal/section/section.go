// Package section derives cross-section properties for the supported
// section families. The family set is a closed tagged variant: adding a
// shape means adding a Kind, its parameter struct and its derivation,
// not subclassing.
package section

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when a section parameter is non-positive
// or physically inconsistent (e.g. wall thickness at least half the outer
// dimension). Matched with errors.Is.
var ErrInvalidGeometry = errors.New("section: invalid geometry")

// Kind tags a section family.
type Kind string

const (
	IShape      Kind = "ishape"
	Rectangular Kind = "rectangular"
	SquareTube  Kind = "tube"
	Circular    Kind = "circular"
)

// Section holds a section family together with its derived properties.
// Area, Inertia and ExtremeFiber are computed once at construction and
// satisfy A > 0, I > 0, c > 0 for every section a builder returns.
type Section struct {
	Kind Kind

	// Derived properties (SI units)
	Area         float64 // A (m²)
	Inertia      float64 // I about the bending axis (m⁴)
	ExtremeFiber float64 // c - neutral axis to outermost fiber (m)

	// Overall depth of the section (m); spans [-c, +c] about the
	// neutral axis for every supported family.
	Depth float64
}

// IShapeParams describes a doubly symmetric I-section. All dimensions in m.
type IShapeParams struct {
	Depth           float64 // h - total depth
	FlangeWidth     float64 // bf
	FlangeThickness float64 // tf
	WebThickness    float64 // tw
}

// RectParams describes a solid rectangle. Dimensions in m.
type RectParams struct {
	Width  float64 // b
	Height float64 // h
}

// TubeParams describes a square hollow section. Dimensions in m.
type TubeParams struct {
	OuterWidth    float64 // b - outside width
	WallThickness float64 // t
}

// CircParams describes a solid circular bar. Dimension in m.
type CircParams struct {
	Diameter float64 // d
}

// BuildIShape composes the section from its three constituent rectangles:
// full enclosing rectangle minus the two voids beside the web.
func BuildIShape(p IShapeParams) (Section, error) {
	if p.Depth <= 0 || p.FlangeWidth <= 0 || p.FlangeThickness <= 0 || p.WebThickness <= 0 {
		return Section{}, fmt.Errorf("%w: I-shape dimensions must be positive", ErrInvalidGeometry)
	}
	if 2*p.FlangeThickness >= p.Depth {
		return Section{}, fmt.Errorf("%w: flange thickness %.4g m ≥ half depth", ErrInvalidGeometry, p.FlangeThickness)
	}
	if p.WebThickness >= p.FlangeWidth {
		return Section{}, fmt.Errorf("%w: web thickness %.4g m ≥ flange width", ErrInvalidGeometry, p.WebThickness)
	}
	h, bf, tf, tw := p.Depth, p.FlangeWidth, p.FlangeThickness, p.WebThickness
	hw := h - 2*tf // clear web depth
	area := 2*bf*tf + hw*tw
	inertia := (bf*math.Pow(h, 3) - (bf-tw)*math.Pow(hw, 3)) / 12
	return Section{Kind: IShape, Area: area, Inertia: inertia, ExtremeFiber: h / 2, Depth: h}, nil
}

// BuildRectangular derives a solid rectangle: A = b·h, I = b·h³/12.
func BuildRectangular(p RectParams) (Section, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return Section{}, fmt.Errorf("%w: rectangle dimensions must be positive", ErrInvalidGeometry)
	}
	area := p.Width * p.Height
	inertia := p.Width * math.Pow(p.Height, 3) / 12
	return Section{Kind: Rectangular, Area: area, Inertia: inertia, ExtremeFiber: p.Height / 2, Depth: p.Height}, nil
}

// BuildSquareTube derives a square hollow section as outer square minus
// inner square about the shared centroid.
func BuildSquareTube(p TubeParams) (Section, error) {
	if p.OuterWidth <= 0 || p.WallThickness <= 0 {
		return Section{}, fmt.Errorf("%w: tube dimensions must be positive", ErrInvalidGeometry)
	}
	if 2*p.WallThickness >= p.OuterWidth {
		return Section{}, fmt.Errorf("%w: wall thickness %.4g m ≥ half outer width", ErrInvalidGeometry, p.WallThickness)
	}
	b, t := p.OuterWidth, p.WallThickness
	inner := b - 2*t
	area := b*b - inner*inner
	inertia := (math.Pow(b, 4) - math.Pow(inner, 4)) / 12
	return Section{Kind: SquareTube, Area: area, Inertia: inertia, ExtremeFiber: b / 2, Depth: b}, nil
}

// BuildCircular derives a solid circular bar: A = πd²/4, I = πd⁴/64.
func BuildCircular(p CircParams) (Section, error) {
	if p.Diameter <= 0 {
		return Section{}, fmt.Errorf("%w: diameter must be positive", ErrInvalidGeometry)
	}
	d := p.Diameter
	area := math.Pi * d * d / 4
	inertia := math.Pi * math.Pow(d, 4) / 64
	return Section{Kind: Circular, Area: area, Inertia: inertia, ExtremeFiber: d / 2, Depth: d}, nil
}
