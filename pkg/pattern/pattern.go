// Package pattern implements procedural color/scalar fields sampled
// in a shape's object space: uniform, stripes, checkers, gradient, and
// rings. The set is closed and small, so variants are a tagged sum
// rather than an interface per kind.
package pattern

import (
	"math"

	gmath "grinder/pkg/math"

	"grinder/pkg/color"
)

type Kind int

const (
	Uniform Kind = iota
	Stripes
	Checkers
	Gradient
	Rings
)

// Mapping is a single procedural field. Values holds the palette used
// by Stripes/Checkers/Rings (indexed mod len(Values)), the two
// endpoints used by Gradient, or the single value used by Uniform.
// Transform is the pattern's own transform; its inverse is applied
// after the shape's object-space inverse.
type Mapping struct {
	Kind      Kind
	Values    []color.Color
	Transform gmath.Transform
}

func NewUniform(c color.Color) Mapping {
	return Mapping{Kind: Uniform, Values: []color.Color{c}, Transform: gmath.Identity()}
}

func NewStripes(transform gmath.Transform, values ...color.Color) Mapping {
	return Mapping{Kind: Stripes, Values: values, Transform: transform}
}

func NewCheckers(transform gmath.Transform, values ...color.Color) Mapping {
	return Mapping{Kind: Checkers, Values: values, Transform: transform}
}

func NewGradient(transform gmath.Transform, a, b color.Color) Mapping {
	return Mapping{Kind: Gradient, Values: []color.Color{a, b}, Transform: transform}
}

func NewRings(transform gmath.Transform, values ...color.Color) Mapping {
	return Mapping{Kind: Rings, Values: values, Transform: transform}
}

const epsilon = 1e-5

// At samples the mapping at a point already in the shape's object
// space; the pattern's own inverse transform is applied here.
func (m Mapping) At(objectPoint gmath.Point3D) color.Color {
	pp := m.Transform.Inverse().MulPoint(objectPoint)

	switch m.Kind {
	case Uniform:
		return m.Values[0]
	case Stripes:
		i := wrapIndex(math.Floor(pp.X+epsilon), len(m.Values))
		return m.Values[i]
	case Checkers:
		sum := math.Floor(pp.X+epsilon) + math.Floor(pp.Y+epsilon) + math.Floor(pp.Z+epsilon)
		i := wrapIndex(sum, len(m.Values))
		return m.Values[i]
	case Gradient:
		a, b := m.Values[0], m.Values[1]
		frac := pp.X - math.Floor(pp.X-epsilon)
		return a.Add(b.Sub(a).Scale(frac))
	case Rings:
		d := math.Sqrt(pp.X*pp.X + pp.Z*pp.Z)
		i := wrapIndex(math.Floor(d), len(m.Values))
		return m.Values[i]
	default:
		return color.Black
	}
}

// AtScalar samples a single-channel mapping (ambient/diffuse/specular/
// shininess) by taking the red channel of the evaluated color. Scalar
// mappings are typically constructed with NewUniform(color.New(v,v,v)).
func (m Mapping) AtScalar(objectPoint gmath.Point3D) float64 {
	return m.At(objectPoint).R
}

func wrapIndex(v float64, n int) int {
	if n == 0 {
		return 0
	}
	i := int(v) % n
	if i < 0 {
		i += n
	}
	return i
}
