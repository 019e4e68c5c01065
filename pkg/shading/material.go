// Package shading implements the material parameter bundle, the Phong
// lighting kernel, Schlick reflectance, and the light model (point,
// directional, jittered area).
package shading

import (
	"grinder/pkg/color"
	gmath "grinder/pkg/math"
	"grinder/pkg/pattern"
)

// Material bundles the per-channel procedural mappings a shape's
// surface is shaded with. Reflective and Transparency are ordinary
// (non-pointer) mappings defaulting to zero — a near-zero scalar value
// reads as "non-reflective"/"non-transparent", so no nil-ness tracking
// is needed.
type Material struct {
	Color     pattern.Mapping
	Ambient   pattern.Mapping
	Diffuse   pattern.Mapping
	Specular  pattern.Mapping
	Shininess pattern.Mapping

	Reflective   pattern.Mapping
	Transparency pattern.Mapping

	RefractiveIndex float64
}

// DefaultMaterial matches the conventional Phong starting point: a
// matte white surface with a modest specular highlight.
func DefaultMaterial() Material {
	return Material{
		Color:           pattern.NewUniform(color.White),
		Ambient:         scalar(0.1),
		Diffuse:         scalar(0.9),
		Specular:        scalar(0.9),
		Shininess:       scalar(200.0),
		Reflective:      scalar(0.0),
		Transparency:    scalar(0.0),
		RefractiveIndex: 1.0,
	}
}

func scalar(v float64) pattern.Mapping {
	return pattern.NewUniform(color.New(v, v, v))
}

const reflectiveEpsilon = 1e-5

func (m Material) IsReflective(objectPoint gmath.Point3D) bool {
	return m.Reflective.AtScalar(objectPoint) > reflectiveEpsilon
}

func (m Material) IsTransparent(objectPoint gmath.Point3D) bool {
	return m.Transparency.AtScalar(objectPoint) > reflectiveEpsilon
}
