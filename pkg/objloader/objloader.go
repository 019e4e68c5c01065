// Package objloader parses a practical subset of the Wavefront OBJ
// format (v, vn, f, g) into vertex/normal/face data ready to become
// Triangle shapes under a Group.
package objloader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"

	gmath "grinder/pkg/math"
)

// FaceVertex is one corner of a parsed face: a 0-based vertex index
// plus, if the line carried one, a 0-based normal index.
type FaceVertex struct {
	VertexIndex int
	NormalIndex int
	HasNormal   bool
}

// Face is a polygon, already known to have at least 3 corners.
type Face []FaceVertex

// FaceVertex3 is one triangulated corner triple.
type FaceVertex3 [3]FaceVertex

// Group is a named collection of faces sharing the current "g" line.
// The default (unnamed) group is "".
type Group struct {
	Name  string
	Faces []Face
}

// Object is the complete parsed result: flat vertex/normal pools plus
// one or more named face groups, exactly as the source file ordered
// them.
type Object struct {
	Vertices []gmath.Point3D
	Normals  []gmath.UnitVector
	Groups   []Group
}

// Load mmaps path and parses it. mmap.Open keeps the file's pages
// resident without a full read, which matters for the multi-hundred-
// thousand-face meshes this format is normally used for.
func Load(path string) (*Object, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objloader: open %s: %w", path, err)
	}
	defer r.Close()

	return Parse(io.NewSectionReader(r, 0, int64(r.Len())))
}

// Parse reads OBJ commands line by line from r.
func Parse(r io.Reader) (*Object, error) {
	obj := &Object{}
	currentGroup := Group{Name: ""}
	haveGroup := false

	flush := func() {
		if haveGroup && len(currentGroup.Faces) > 0 {
			obj.Groups = append(obj.Groups, currentGroup)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parsePoint(fields[1:])
			if err != nil {
				return nil, err
			}
			obj.Vertices = append(obj.Vertices, p)

		case "vn":
			n, err := parseVector(fields[1:])
			if err != nil {
				return nil, err
			}
			obj.Normals = append(obj.Normals, n.Normalize())

		case "g":
			flush()
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			currentGroup = Group{Name: name}
			haveGroup = true

		case "f":
			face, err := parseFace(fields[1:], len(obj.Vertices), len(obj.Normals))
			if err != nil {
				return nil, err
			}
			haveGroup = true
			currentGroup.Faces = append(currentGroup.Faces, face)

		default:
			// texture coordinates, materials, smoothing groups and
			// anything else this subset doesn't model are skipped
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objloader: scan: %w", err)
	}
	flush()
	return obj, nil
}

func parseComponents(fields []string) ([3]float64, error) {
	var vals [3]float64
	if len(fields) < 3 {
		return vals, fmt.Errorf("objloader: expected 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vals, fmt.Errorf("objloader: bad number %q: %w", fields[i], err)
		}
		vals[i] = v
	}
	return vals, nil
}

func parsePoint(fields []string) (gmath.Point3D, error) {
	vals, err := parseComponents(fields)
	if err != nil {
		return gmath.Point3D{}, err
	}
	return gmath.Point3D{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

func parseVector(fields []string) (gmath.Vector3D, error) {
	vals, err := parseComponents(fields)
	if err != nil {
		return gmath.Vector3D{}, err
	}
	return gmath.Vector3D{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// parseFace resolves each corner's index (1-based, or negative meaning
// relative to the count so far) against the current vertex/normal
// counts.
func parseFace(fields []string, vertexCount, normalCount int) (Face, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("objloader: face needs at least 3 vertices, got %d", len(fields))
	}
	face := make(Face, len(fields))
	for i, f := range fields {
		parts := strings.Split(f, "/")
		vi, err := resolveIndex(parts[0], vertexCount)
		if err != nil {
			return nil, err
		}
		fv := FaceVertex{VertexIndex: vi}
		if len(parts) >= 3 && parts[2] != "" {
			ni, err := resolveIndex(parts[2], normalCount)
			if err != nil {
				return nil, err
			}
			fv.NormalIndex = ni
			fv.HasNormal = true
		}
		face[i] = fv
	}
	return face, nil
}

func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("objloader: bad index %q: %w", s, err)
	}
	switch {
	case n > 0:
		return n - 1, nil
	case n < 0:
		return count + n, nil
	default:
		return 0, fmt.Errorf("objloader: index 0 is invalid (OBJ indices are 1-based)")
	}
}

// Triangulate fan-splits a face with more than 3 corners into n-2
// triangles sharing the face's first vertex.
func (f Face) Triangulate() []FaceVertex3 {
	if len(f) < 3 {
		return nil
	}
	tris := make([]FaceVertex3, 0, len(f)-2)
	for i := 1; i < len(f)-1; i++ {
		tris = append(tris, FaceVertex3{f[0], f[i], f[i+1]})
	}
	return tris
}
