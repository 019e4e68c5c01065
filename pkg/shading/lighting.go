package shading

import (
	"math"

	"grinder/pkg/color"
	gmath "grinder/pkg/math"
)

// AmbientTerm is the surface's unconditional ambient contribution,
// independent of any single light sample.
func AmbientTerm(m Material, objectPoint gmath.Point3D) color.Color {
	surfaceColor := m.Color.At(objectPoint)
	ambient := m.Ambient.AtScalar(objectPoint)
	return surfaceColor.Scale(ambient)
}

// DiffuseSpecular evaluates just the diffuse+specular contribution of
// one light sample, with no shadow attenuation and no ambient term —
// callers summing several samples of the same light (an area light's
// jittered grid) add ambient once, not once per sample.
func DiffuseSpecular(m Material, objectPoint gmath.Point3D, eye, normal gmath.Vector3D, sample LightSample) color.Color {
	surfaceColor := m.Color.At(objectPoint)
	diffuseCoef := m.Diffuse.AtScalar(objectPoint)
	specularCoef := m.Specular.AtScalar(objectPoint)
	shininess := m.Shininess.AtScalar(objectPoint)

	lightDotNormal := sample.Direction.Dot(normal)
	if lightDotNormal <= 0 {
		return color.Black
	}

	diffuseTerm := surfaceColor.Mul(sample.Intensity).Scale(diffuseCoef * lightDotNormal)
	specularTerm := color.Black

	reflectv := sample.Direction.Negate().Reflect(normal)
	reflectDotEye := reflectv.Dot(eye)
	if reflectDotEye > 0 {
		specularTerm = sample.Intensity.Scale(specularCoef * math.Pow(reflectDotEye, shininess))
	}
	return diffuseTerm.Add(specularTerm)
}

// Lighting evaluates the full Phong kernel for a single light sample
// already in object/world space. shadowFactor is 1.0 for fully lit,
// 0.0 for fully shadowed, and may be any value in between for an
// area-light's averaged soft shadow.
func Lighting(m Material, objectPoint gmath.Point3D, eye, normal gmath.Vector3D, sample LightSample, shadowFactor float64) color.Color {
	ambientTerm := AmbientTerm(m, objectPoint)
	if shadowFactor <= 0 {
		return ambientTerm
	}
	lit := DiffuseSpecular(m, objectPoint, eye, normal, sample).Scale(shadowFactor)
	return ambientTerm.Add(lit)
}
