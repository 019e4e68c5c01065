package objloader

import (
	"grinder/pkg/geometry"
	gmath "grinder/pkg/math"
	"grinder/pkg/shading"
)

// ToGroup builds one geometry.Group per named OBJ group (all faces
// fan-triangulated), nested under a single top-level Group carrying
// transform and material. Faces whose corners all carry a normal
// index become smooth triangles; the rest are flat.
func ToGroup(obj *Object, transform gmath.Transform, material shading.Material) *geometry.Group {
	root := geometry.NewGroup(transform, material)

	for _, objGroup := range obj.Groups {
		sub := geometry.NewGroup(gmath.Identity(), material)
		for _, face := range objGroup.Faces {
			for _, tri := range face.Triangulate() {
				sub.AddChild(triangleFor(obj, tri))
			}
		}
		sub.Build()
		root.AddChild(sub)
	}
	root.Build()
	return root
}

func triangleFor(obj *Object, tri FaceVertex3) *geometry.Triangle {
	p1 := obj.Vertices[tri[0].VertexIndex]
	p2 := obj.Vertices[tri[1].VertexIndex]
	p3 := obj.Vertices[tri[2].VertexIndex]

	if tri[0].HasNormal && tri[1].HasNormal && tri[2].HasNormal {
		n1 := obj.Normals[tri[0].NormalIndex]
		n2 := obj.Normals[tri[1].NormalIndex]
		n3 := obj.Normals[tri[2].NormalIndex]
		return geometry.NewSmoothTriangle(p1, p2, p3, n1, n2, n3)
	}
	return geometry.NewTriangle(p1, p2, p3)
}
