// Package camera turns a field of view and a world-to-camera transform
// into a ray generator, one ray per output pixel.
package camera

import (
	"math"

	gmath "grinder/pkg/math"
)

// Camera maps pixel coordinates on an hsize x vsize canvas to
// primary rays cast from eye through the corresponding point on the
// camera's near plane, one unit in front of the eye.
type Camera struct {
	HSize, VSize int
	FOV          float64
	Transform    gmath.Transform

	pixelSize             float64
	halfWidth, halfHeight float64
}

// NewCamera derives the half-width/half-height/pixel-size constants
// from the field of view and aspect ratio once, at construction, so
// RayForPixel stays a handful of multiplications per call.
func NewCamera(hsize, vsize int, fov float64, transform gmath.Transform) *Camera {
	c := &Camera{HSize: hsize, VSize: vsize, FOV: fov, Transform: transform}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)
	return c
}

// NewLookAtCamera is the convenience constructor most scene
// descriptions reach for: it builds the transform from an eye point,
// a target to look at, and an up hint.
func NewLookAtCamera(hsize, vsize int, fov float64, eye, target gmath.Point3D, up gmath.Vector3D) *Camera {
	return NewCamera(hsize, vsize, fov, gmath.ViewTransform(eye, target, up))
}

// RayForPixel computes the world-space ray through the center of
// pixel (px, py), px in [0,hsize), py in [0,vsize).
func (c *Camera) RayForPixel(px, py int) gmath.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv := c.Transform.Inverse()
	pixel := inv.MulPoint(gmath.Point3D{X: worldX, Y: worldY, Z: -1})
	origin := inv.MulPoint(gmath.Point3D{X: 0, Y: 0, Z: 0})
	direction := pixel.Sub(origin).Normalize()

	return gmath.Ray{Origin: origin, Direction: direction}
}
