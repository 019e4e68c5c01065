// Package loader deserializes a declarative scene description (shapes,
// materials, transforms, lights, camera) from JSON into a ready-to-
// render pkg/world.World and pkg/camera.Camera.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"grinder/pkg/camera"
	"grinder/pkg/color"
	"grinder/pkg/geometry"
	gmath "grinder/pkg/math"
	"grinder/pkg/pattern"
	"grinder/pkg/shading"
	"grinder/pkg/world"
)

// Scene is the root JSON document.
type Scene struct {
	Camera sceneCamera  `json:"camera"`
	Lights []sceneLight `json:"lights"`
	Shapes []sceneShape `json:"shapes"`
}

type sceneCamera struct {
	HSize int        `json:"hsize"`
	VSize int        `json:"vsize"`
	FOV   sceneAngle `json:"fov"`
	From  [3]float64 `json:"from"`
	To    [3]float64 `json:"to"`
	Up    [3]float64 `json:"up"`
}

// sceneAngle is a tagged union over the supported angle unit variants
// (multiples of pi, degrees, radians).
type sceneAngle struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

func (a sceneAngle) radians() (float64, error) {
	switch a.Type {
	case "", "pi":
		return math.Pi, nil
	case "pi2":
		return math.Pi / 2, nil
	case "pi3":
		return math.Pi / 3, nil
	case "pi4":
		return math.Pi / 4, nil
	case "pi6":
		return math.Pi / 6, nil
	case "pi8":
		return math.Pi / 8, nil
	case "deg":
		return a.Value * math.Pi / 180, nil
	case "rad":
		return a.Value, nil
	default:
		return 0, fmt.Errorf("loader: unknown angle type %q", a.Type)
	}
}

type sceneColor [3]float64

func (c sceneColor) color() color.Color { return color.New(c[0], c[1], c[2]) }

type sceneLight struct {
	Type        string     `json:"type"`
	Position    [3]float64 `json:"position"`
	Direction   [3]float64 `json:"direction"`
	Corner      [3]float64 `json:"corner"`
	UVec        [3]float64 `json:"uvec"`
	VVec        [3]float64 `json:"vvec"`
	USteps      int        `json:"usteps"`
	VSteps      int        `json:"vsteps"`
	Jitter      int        `json:"jitter"`
	Intensity   sceneColor `json:"intensity"`
	Attenuation string     `json:"attenuation"`
}

func attenuationKind(s string) shading.AttenuationKind {
	switch s {
	case "linear":
		return shading.AttenuationLinear
	case "squared":
		return shading.AttenuationSquared
	default:
		return shading.AttenuationNone
	}
}

func point(p [3]float64) gmath.Point3D   { return gmath.Point3D{X: p[0], Y: p[1], Z: p[2]} }
func vector(v [3]float64) gmath.Vector3D { return gmath.Vector3D{X: v[0], Y: v[1], Z: v[2]} }

func buildLight(l sceneLight) (shading.Light, error) {
	switch l.Type {
	case "point":
		return shading.NewPointLight(point(l.Position), l.Intensity.color(), attenuationKind(l.Attenuation)), nil
	case "directional":
		return shading.NewDirectionalLight(vector(l.Direction), l.Intensity.color()), nil
	case "area":
		return shading.NewAreaLight(point(l.Corner), vector(l.UVec), vector(l.VVec), l.USteps, l.VSteps, l.Jitter, l.Intensity.color(), attenuationKind(l.Attenuation)), nil
	default:
		return shading.Light{}, fmt.Errorf("loader: unknown light type %q", l.Type)
	}
}

// sceneTransform is a tagged union over Identity/Translation/Scaling/
// RotationX/Y/Z/Shear, applied in list order (first entry applied
// first to a point).
type sceneTransform struct {
	Type   string     `json:"type"`
	Vector [3]float64 `json:"vector"`
	Angle  sceneAngle `json:"angle"`
	Shear  [6]float64 `json:"shear"`
}

func buildTransform(list []sceneTransform) (gmath.Transform, error) {
	t := gmath.Identity()
	for _, st := range list {
		var next gmath.Transform
		switch st.Type {
		case "", "identity":
			next = gmath.Identity()
		case "translation":
			v := st.Vector
			next = gmath.Translate(v[0], v[1], v[2])
		case "scaling":
			v := st.Vector
			next = gmath.Scaling(v[0], v[1], v[2])
		case "rotation_x":
			r, err := st.Angle.radians()
			if err != nil {
				return gmath.Transform{}, err
			}
			next = gmath.RotateX(r)
		case "rotation_y":
			r, err := st.Angle.radians()
			if err != nil {
				return gmath.Transform{}, err
			}
			next = gmath.RotateY(r)
		case "rotation_z":
			r, err := st.Angle.radians()
			if err != nil {
				return gmath.Transform{}, err
			}
			next = gmath.RotateZ(r)
		case "shear":
			s := st.Shear
			next = gmath.Shear(s[0], s[1], s[2], s[3], s[4], s[5])
		default:
			return gmath.Transform{}, fmt.Errorf("loader: unknown transform type %q", st.Type)
		}
		t = t.Then(next)
	}
	return t, nil
}

// sceneMapping is a tagged union over Uniform/Stripes/Gradient/
// Checkers/Rings, each with an optional nested transform list.
type sceneMapping struct {
	Type      string           `json:"type"`
	Colors    []sceneColor     `json:"colors"`
	Transform []sceneTransform `json:"transform"`
}

func buildMapping(m sceneMapping, fallback pattern.Mapping) (pattern.Mapping, error) {
	if m.Type == "" && len(m.Colors) == 0 {
		return fallback, nil
	}
	transform, err := buildTransform(m.Transform)
	if err != nil {
		return pattern.Mapping{}, err
	}
	colors := make([]color.Color, len(m.Colors))
	for i, c := range m.Colors {
		colors[i] = c.color()
	}

	switch m.Type {
	case "uniform":
		if len(colors) == 0 {
			return fallback, nil
		}
		return pattern.NewUniform(colors[0]), nil
	case "stripes":
		return pattern.NewStripes(transform, colors...), nil
	case "gradient":
		if len(colors) < 2 {
			return pattern.Mapping{}, fmt.Errorf("loader: gradient mapping needs 2 colors, got %d", len(colors))
		}
		return pattern.NewGradient(transform, colors[0], colors[1]), nil
	case "checkers":
		return pattern.NewCheckers(transform, colors...), nil
	case "rings":
		return pattern.NewRings(transform, colors...), nil
	default:
		return pattern.Mapping{}, fmt.Errorf("loader: unknown mapping type %q", m.Type)
	}
}

type sceneMaterial struct {
	Color           sceneMapping `json:"color"`
	Ambient         sceneMapping `json:"ambient"`
	Diffuse         sceneMapping `json:"diffuse"`
	Specular        sceneMapping `json:"specular"`
	Shininess       sceneMapping `json:"shininess"`
	Reflective      sceneMapping `json:"reflective"`
	Transparency    sceneMapping `json:"transparency"`
	RefractiveIndex float64      `json:"refractive_index"`
}

func buildMaterial(sm *sceneMaterial) (shading.Material, error) {
	m := shading.DefaultMaterial()
	if sm == nil {
		return m, nil
	}

	var err error
	if m.Color, err = buildMapping(sm.Color, m.Color); err != nil {
		return m, err
	}
	if m.Ambient, err = buildMapping(sm.Ambient, m.Ambient); err != nil {
		return m, err
	}
	if m.Diffuse, err = buildMapping(sm.Diffuse, m.Diffuse); err != nil {
		return m, err
	}
	if m.Specular, err = buildMapping(sm.Specular, m.Specular); err != nil {
		return m, err
	}
	if m.Shininess, err = buildMapping(sm.Shininess, m.Shininess); err != nil {
		return m, err
	}
	if m.Reflective, err = buildMapping(sm.Reflective, m.Reflective); err != nil {
		return m, err
	}
	if m.Transparency, err = buildMapping(sm.Transparency, m.Transparency); err != nil {
		return m, err
	}
	if sm.RefractiveIndex != 0 {
		m.RefractiveIndex = sm.RefractiveIndex
	}
	return m, nil
}

// sceneShape is a tagged union over Plane/Sphere/Cube/Cylinder/Group.
type sceneShape struct {
	Type      string           `json:"type"`
	Transform []sceneTransform `json:"transform"`
	Material  *sceneMaterial   `json:"material"`
	Closed    bool             `json:"closed"`
	Shapes    []sceneShape     `json:"shapes"`
}

func buildShape(s sceneShape) (geometry.Shape, error) {
	transform, err := buildTransform(s.Transform)
	if err != nil {
		return nil, err
	}
	material, err := buildMaterial(s.Material)
	if err != nil {
		return nil, err
	}

	switch s.Type {
	case "plane":
		return geometry.NewPlane(transform, material), nil
	case "sphere":
		return geometry.NewSphere(transform, material), nil
	case "cube":
		return geometry.NewCube(transform, material), nil
	case "cylinder":
		return geometry.NewCylinder(transform, material, s.Closed), nil
	case "group":
		g := geometry.NewGroup(transform, material)
		for _, child := range s.Shapes {
			childShape, err := buildShape(child)
			if err != nil {
				return nil, err
			}
			g.AddChild(childShape)
		}
		g.Build()
		return g, nil
	default:
		return nil, fmt.Errorf("loader: unknown shape type %q", s.Type)
	}
}

// Load parses a Scene document from r and builds the World and Camera
// it describes.
func Load(r io.Reader) (*camera.Camera, *world.World, error) {
	var scene Scene
	if err := json.NewDecoder(r).Decode(&scene); err != nil {
		return nil, nil, fmt.Errorf("loader: decode: %w", err)
	}

	fov, err := scene.Camera.FOV.radians()
	if err != nil {
		return nil, nil, err
	}
	cam := camera.NewLookAtCamera(scene.Camera.HSize, scene.Camera.VSize, fov,
		point(scene.Camera.From), point(scene.Camera.To), vector(scene.Camera.Up))

	w := world.New()
	for _, sl := range scene.Lights {
		light, err := buildLight(sl)
		if err != nil {
			return nil, nil, err
		}
		w.AddLight(light)
	}
	for _, ss := range scene.Shapes {
		shape, err := buildShape(ss)
		if err != nil {
			return nil, nil, err
		}
		w.AddObject(shape)
	}

	return cam, w, nil
}
