package shading

import (
	"math"

	"grinder/pkg/color"
	gmath "grinder/pkg/math"
)

type LightKind int

const (
	PointLight LightKind = iota
	DirectionalLight
	AreaLight
)

type AttenuationKind int

const (
	AttenuationNone AttenuationKind = iota
	AttenuationLinear
	AttenuationSquared
)

// Light is a tagged union over the three supported light variants.
// Only the fields relevant to Kind are meaningful.
type Light struct {
	Kind      LightKind
	Intensity color.Color

	// Point / Area
	Position Point3DAlias

	// Directional
	Direction gmath.Vector3D

	// Area: a parallelogram spanned by UVec, VVec from Position,
	// subdivided into USteps x VSteps cells with Jitter samples each.
	UVec, VVec     gmath.Vector3D
	USteps, VSteps int
	Jitter         int

	Attenuation AttenuationKind
}

// Point3DAlias avoids a stutter-y `gmath.Point3D` on every Light
// field; it is exactly gmath.Point3D.
type Point3DAlias = gmath.Point3D

func NewPointLight(position gmath.Point3D, intensity color.Color, attenuation AttenuationKind) Light {
	return Light{Kind: PointLight, Position: position, Intensity: intensity, Attenuation: attenuation}
}

func NewDirectionalLight(direction gmath.Vector3D, intensity color.Color) Light {
	return Light{Kind: DirectionalLight, Direction: direction.Normalize(), Intensity: intensity}
}

func NewAreaLight(corner gmath.Point3D, uVec, vVec gmath.Vector3D, uSteps, vSteps, jitter int, intensity color.Color, attenuation AttenuationKind) Light {
	return Light{
		Kind: AreaLight, Position: corner, UVec: uVec, VVec: vVec,
		USteps: uSteps, VSteps: vSteps, Jitter: jitter,
		Intensity: intensity, Attenuation: attenuation,
	}
}

// LightSample is one independent point-light-like contribution:
// direction toward the light, distance to it, and intensity already
// scaled by distance attenuation and (for area lights) sample count.
type LightSample struct {
	Direction gmath.Vector3D
	Distance  float64
	Intensity color.Color
}

func attenuationFactor(kind AttenuationKind, d float64) float64 {
	switch kind {
	case AttenuationLinear:
		return 10.0 / d
	case AttenuationSquared:
		return 100.0 / (d * d)
	default:
		return 1.0
	}
}

// SamplesFrom produces the independent point-light samples a shaded
// point should accumulate contributions from. rng is only consulted
// for area lights' jitter offsets.
func (l Light) SamplesFrom(point gmath.Point3D, rng *gmath.XorShift32) []LightSample {
	switch l.Kind {
	case PointLight:
		delta := l.Position.Sub(point)
		d := delta.Length()
		factor := attenuationFactor(l.Attenuation, d)
		return []LightSample{{
			Direction: delta.Normalize(),
			Distance:  d,
			Intensity: l.Intensity.Scale(factor),
		}}

	case DirectionalLight:
		return []LightSample{{
			Direction: l.Direction.Scale(-1),
			Distance:  math.Inf(1),
			// A directional light has no distance to attenuate over, so
			// its intensity passes through unscaled regardless of the
			// Attenuation field.
			Intensity: l.Intensity,
		}}

	case AreaLight:
		uSteps, vSteps, jitter := maxI(l.USteps, 1), maxI(l.VSteps, 1), maxI(l.Jitter, 1)
		count := uSteps * vSteps * jitter
		samples := make([]LightSample, 0, count)
		for u := 0; u < uSteps; u++ {
			for v := 0; v < vSteps; v++ {
				for j := 0; j < jitter; j++ {
					ju := (float64(u) + rng.Float64()) / float64(uSteps)
					jv := (float64(v) + rng.Float64()) / float64(vSteps)
					samplePos := l.Position.Add(l.UVec.Scale(ju)).Add(l.VVec.Scale(jv))
					delta := samplePos.Sub(point)
					d := delta.Length()
					factor := attenuationFactor(l.Attenuation, d)
					samples = append(samples, LightSample{
						Direction: delta.Normalize(),
						Distance:  d,
						Intensity: l.Intensity.Scale(factor / float64(count)),
					})
				}
			}
		}
		return samples
	}
	return nil
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}
