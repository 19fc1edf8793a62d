// seehuhn.de/go/speckle - speckles circling rounded rectangles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package preview draws speckle frames into grayscale images, for
// debugging and for tests.  The output shows the path as a thin ring and
// every speckle as a small disc.
package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/speckle/orbit"
)

// Canvas renders frames of a fixed size.  Create one instance and reuse it
// for multiple frames.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// CTM maps the unit square to device pixels.
	CTM matrix.Matrix

	// LineWidth is the width of the ring showing the path, in unit square
	// coordinates.  Zero hides the ring.
	LineWidth float64

	// DotRadius is the radius of the speckle discs, in device pixels.
	// Zero hides the speckles.
	DotRadius float64

	width, height int
	r             *vector.Rasterizer
	src           image.Image
}

// New returns a canvas of the given size.  The unit square is stretched
// to cover the whole canvas.
func New(width, height int) *Canvas {
	return &Canvas{
		CTM:       matrix.Matrix{float64(width), 0, 0, float64(height), 0, 0},
		LineWidth: 0.02,
		DotRadius: 3,
		width:     width,
		height:    height,
		r:         vector.NewRasterizer(width, height),
		src:       image.NewUniform(color.Alpha{A: 255}),
	}
}

// Frame draws the path p and the speckles at pts into a new image.
func (c *Canvas) Frame(p *orbit.Path, pts []vec.Vec2) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	c.Draw(dst, p, pts)
	return dst
}

// Draw draws the path p and the speckles at pts into dst.
func (c *Canvas) Draw(dst *image.Alpha, p *orbit.Path, pts []vec.Vec2) {
	if c.LineWidth > 0 && !p.IsEmpty() {
		// The ring is the area between two offset outlines.  Mirroring the
		// inner outline reverses its orientation, so that the nonzero
		// winding rule leaves a hole inside.
		half := c.LineWidth / 2
		outer := orbit.Build(p.Inset-half, p.Radius+half)
		inner := orbit.Build(p.Inset+half, max(p.Radius-half, 0))

		c.r.Reset(c.width, c.height)
		c.addPath(outer.Outline(), c.device)
		if !inner.IsEmpty() {
			c.addPath(inner.Outline(), func(v vec.Vec2) vec.Vec2 {
				return c.device(vec.Vec2{X: 1 - v.X, Y: v.Y})
			})
		}
		c.r.Draw(dst, dst.Bounds(), c.src, image.Point{})
	}

	if c.DotRadius > 0 && len(pts) > 0 {
		c.r.Reset(c.width, c.height)
		for _, pt := range pts {
			d := c.device(pt)
			addCircle(c.r, float32(d.X), float32(d.Y), float32(c.DotRadius))
		}
		c.r.Draw(dst, dst.Bounds(), c.src, image.Point{})
	}
}

// DeviceBounds returns the bounding box of the path in device pixels.
func (c *Canvas) DeviceBounds(p *orbit.Path) rect.Rect {
	b := p.Bounds()
	if p.IsEmpty() {
		return b
	}
	a := c.device(vec.Vec2{X: b.LLx, Y: b.LLy})
	z := c.device(vec.Vec2{X: b.URx, Y: b.URy})
	return rect.Rect{
		LLx: min(a.X, z.X),
		LLy: min(a.Y, z.Y),
		URx: max(a.X, z.X),
		URy: max(a.Y, z.Y),
	}
}

// device maps a point from the unit square to device space.
func (c *Canvas) device(v vec.Vec2) vec.Vec2 {
	m := c.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// addPath feeds a path to the rasterizer, transforming all points with tr.
func (c *Canvas) addPath(p path.Path, tr func(vec.Vec2) vec.Vec2) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			a := tr(pts[0])
			c.r.MoveTo(float32(a.X), float32(a.Y))
		case path.CmdLineTo:
			a := tr(pts[0])
			c.r.LineTo(float32(a.X), float32(a.Y))
		case path.CmdQuadTo:
			a, b := tr(pts[0]), tr(pts[1])
			c.r.QuadTo(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y))
		case path.CmdCubeTo:
			a, b, e := tr(pts[0]), tr(pts[1]), tr(pts[2])
			c.r.CubeTo(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(e.X), float32(e.Y))
		case path.CmdClose:
			c.r.ClosePath()
		}
	}
}

// addCircle adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircle(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
