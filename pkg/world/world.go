// Package world assembles shapes and lights into a scene and
// implements the recursive ray-color pipeline: nearest-hit queries,
// shadow tests, Phong shading summed across lights, and the
// reflection/refraction recursion bounded by a depth budget.
package world

import (
	"math"

	"grinder/pkg/color"
	"grinder/pkg/geometry"
	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// MaxRecursionDepth is the default remaining-bounces budget a fresh
// camera ray is given.
const MaxRecursionDepth = 5

// World holds the flat (already-transformed) set of root shapes and
// the lights illuminating them. Shapes added to a Group are NOT added
// to a World directly; only the Group itself is.
type World struct {
	objects []geometry.Shape
	bounded []geometry.BoundedShape
	bvh     *geometry.BVHNode
	built   bool

	Lights []shading.Light
}

func New() *World {
	return &World{}
}

func (w *World) AddObject(s geometry.Shape) {
	w.objects = append(w.objects, s)
	w.bounded = append(w.bounded, geometry.BoundedShape{Shape: s, LocalAABB: geometry.WorldBounds(s)})
	w.built = false
}

func (w *World) AddLight(l shading.Light) {
	w.Lights = append(w.Lights, l)
}

func (w *World) Objects() []geometry.Shape { return w.objects }

func (w *World) build() {
	if w.built {
		return
	}
	w.bvh = geometry.BuildBVH(w.bounded)
	w.built = true
}

// Intersect finds the nearest shape-space intersection of ray against
// every root object in the world.
func (w *World) Intersect(ray gmath.Ray) (geometry.Intersection, bool) {
	w.build()
	if w.bvh == nil {
		return geometry.Intersection{}, false
	}

	best := geometry.Intersection{}
	found := false
	it := geometry.NewBVHIterator(w.bvh, w.bounded, ray)
	for {
		shape, ok := it.Next()
		if !ok {
			break
		}
		candidate, hit := geometry.Intersect(shape, ray)
		if hit && (!found || candidate.T < best.T) {
			best = candidate
			found = true
		}
	}
	return best, found
}

// occluded reports whether anything lies strictly between point and a
// target that is `distance` away along direction.
func (w *World) occluded(point gmath.Point3D, direction gmath.Vector3D, distance float64) bool {
	origin := point.Add(direction.Scale(geometry.SelfHitEpsilon))
	ray := gmath.Ray{Origin: origin, Direction: direction}
	hit, ok := w.Intersect(ray)
	return ok && hit.T < distance
}

// ShadowFactor returns the fraction of light reaching point that is
// NOT blocked: 1 for fully lit, 0 for fully shadowed, and a fraction
// in between for an area light partially occluded across its samples.
func ShadowFactor(w *World, point gmath.Point3D, light shading.Light, rng *gmath.XorShift32) float64 {
	samples := light.SamplesFrom(point, rng)
	if len(samples) == 0 {
		return 1
	}
	lit := 0
	for _, s := range samples {
		if !w.occluded(point, s.Direction, s.Distance) {
			lit++
		}
	}
	return float64(lit) / float64(len(samples))
}

// ShadeHit accumulates the Phong contribution of every light (each
// possibly split into several samples for an area light), then blends
// in reflection and refraction up to the remaining recursion budget.
func ShadeHit(w *World, hit geometry.Hit, remaining int, rng *gmath.XorShift32) color.Color {
	material := hit.Object.ShapeMaterial()
	surface := color.Black

	for _, light := range w.Lights {
		surface = surface.Add(shading.AmbientTerm(material, hit.ObjectPoint))
		for _, s := range light.SamplesFrom(hit.Point, rng) {
			if w.occluded(hit.Point, s.Direction, s.Distance) {
				continue
			}
			surface = surface.Add(shading.DiffuseSpecular(material, hit.ObjectPoint, hit.Eye, hit.Normal, s))
		}
	}

	reflected := ReflectedColor(w, hit, remaining, rng)
	refracted := RefractedColor(w, hit, remaining, rng)

	if material.IsReflective(hit.ObjectPoint) && material.IsTransparent(hit.ObjectPoint) {
		reflectance := shading.Schlick(hit.Eye.Dot(hit.Normal), hit.N1, hit.N2)
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor casts a reflection ray from hit.Point along hit.Reflect
// and returns its recursively-shaded color, scaled by the surface's
// reflective coefficient.
func ReflectedColor(w *World, hit geometry.Hit, remaining int, rng *gmath.XorShift32) color.Color {
	material := hit.Object.ShapeMaterial()
	reflective := material.Reflective.AtScalar(hit.ObjectPoint)
	if remaining <= 0 || !material.IsReflective(hit.ObjectPoint) {
		return color.Black
	}

	origin := hit.Point.Add(hit.Reflect.Scale(geometry.SelfHitEpsilon))
	ray := gmath.Ray{Origin: origin, Direction: hit.Reflect}
	c := ColorAt(w, ray, remaining-1, rng)
	return c.Scale(reflective)
}

// RefractedColor casts a refraction ray bent by Snell's law, treating
// every transparent surface as a single vacuum<->material interface
// (hit.N1/hit.N2, not a nested stack of overlapping media), and
// returns its recursively-shaded color scaled by the surface's
// transparency.
func RefractedColor(w *World, hit geometry.Hit, remaining int, rng *gmath.XorShift32) color.Color {
	material := hit.Object.ShapeMaterial()
	transparency := material.Transparency.AtScalar(hit.ObjectPoint)
	if remaining <= 0 || !material.IsTransparent(hit.ObjectPoint) {
		return color.Black
	}

	nRatio := hit.N1 / hit.N2
	cosI := hit.Eye.Dot(hit.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return color.Black // total internal reflection
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := hit.Normal.Scale(nRatio*cosI - cosT).Sub(hit.Eye.Scale(nRatio))
	// Pull the origin below the surface along -normal first, then push
	// it out along direction: on a curved shape direction isn't
	// parallel to normal, so offsetting by direction alone can still
	// leave the origin on the entry side of the surface.
	origin := hit.Point.SubVector(hit.Normal.Scale(gmath.Epsilon)).Add(direction.Scale(geometry.SelfHitEpsilon))
	ray := gmath.Ray{Origin: origin, Direction: direction}
	c := ColorAt(w, ray, remaining-1, rng)
	return c.Scale(transparency)
}

// ColorAt traces ray through the world, returning black if it escapes
// the scene entirely and the shaded hit color otherwise. remaining
// bounds the reflection/refraction recursion depth.
func ColorAt(w *World, ray gmath.Ray, remaining int, rng *gmath.XorShift32) color.Color {
	intersection, ok := w.Intersect(ray)
	if !ok {
		return color.Black
	}
	hit := geometry.PrepareHit(ray, intersection)
	return ShadeHit(w, hit, remaining, rng)
}
