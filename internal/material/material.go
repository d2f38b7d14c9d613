package material

import (
	"errors"
	"fmt"
)

// ErrInvalidMaterial is returned when a material property is outside its
// physical range (E, G, fy must be positive; density must be non-negative).
var ErrInvalidMaterial = errors.New("material: invalid material property")

// Material holds the elastic and strength properties of a beam material.
// All values are in SI units. A Material is created once from user input
// and treated as read-only afterwards.
type Material struct {
	Name          string
	Youngs        float64 // E - elastic modulus (Pa)
	Shear         float64 // G - shear modulus (Pa)
	Density       float64 // ρ (kg/m³)
	YieldStrength float64 // fy (Pa)
}

// New validates the properties and returns an immutable Material.
func New(name string, youngs, shear, density, yieldStrength float64) (Material, error) {
	if youngs <= 0 {
		return Material{}, fmt.Errorf("%w: E=%.3g Pa", ErrInvalidMaterial, youngs)
	}
	if shear <= 0 {
		return Material{}, fmt.Errorf("%w: G=%.3g Pa", ErrInvalidMaterial, shear)
	}
	if density < 0 {
		return Material{}, fmt.Errorf("%w: ρ=%.3g kg/m³", ErrInvalidMaterial, density)
	}
	if yieldStrength <= 0 {
		return Material{}, fmt.Errorf("%w: fy=%.3g Pa", ErrInvalidMaterial, yieldStrength)
	}
	return Material{
		Name:          name,
		Youngs:        youngs,
		Shear:         shear,
		Density:       density,
		YieldStrength: yieldStrength,
	}, nil
}

// Common structural steel grades (GB 50017 nominal values).
var presets = map[string]Material{
	"Q235": {Name: "Q235", Youngs: 206e9, Shear: 79e9, Density: 7850, YieldStrength: 235e6},
	"Q345": {Name: "Q345", Youngs: 206e9, Shear: 79e9, Density: 7850, YieldStrength: 345e6},
	"Q420": {Name: "Q420", Youngs: 206e9, Shear: 79e9, Density: 7850, YieldStrength: 420e6},
}

// Preset returns a catalogued steel grade by name.
func Preset(name string) (Material, error) {
	m, ok := presets[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: unknown grade %q", ErrInvalidMaterial, name)
	}
	return m, nil
}
