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

package orbit

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outline returns the path as a closed outline, in traversal order.
// Arcs are approximated by cubic Bézier curves.  An empty path gives an
// empty outline.
func (p *Path) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if p.IsEmpty() {
			return
		}

		var buf [3]vec.Vec2 // reused for each yield

		buf[0] = p.Segments[0].At(0)
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, seg := range p.Segments {
			switch seg := seg.(type) {
			case Line:
				buf[0] = seg.B
				if !yield(path.CmdLineTo, buf[:1]) {
					return
				}
			case Arc:
				buf[0], buf[1], buf[2] = arcToCubic(seg)
				if !yield(path.CmdCubeTo, buf[:3]) {
					return
				}
			}
		}
		yield(path.CmdClose, nil)
	}
}

// arcToCubic returns the control points and end point of a cubic Bézier
// curve approximating the arc.  For quarter circles the control point
// distance is the usual 0.5523 times the radius.
func arcToCubic(a Arc) (c1, c2, end vec.Vec2) {
	sweep := a.EndAngle - a.StartAngle
	k := 4.0 / 3.0 * math.Tan(sweep/4) * a.Radius

	start := a.At(0)
	end = a.End()
	t0 := vec.Vec2{X: -math.Sin(a.StartAngle), Y: math.Cos(a.StartAngle)}
	t1 := vec.Vec2{X: -math.Sin(a.EndAngle), Y: math.Cos(a.EndAngle)}

	c1 = start.Add(t0.Mul(k))
	c2 = end.Sub(t1.Mul(k))
	return c1, c2, end
}

// Bounds returns the rectangle the path runs along.  LLx and LLy hold the
// top-left corner in the y-down unit square, URx and URy the bottom-right
// one.  An empty path has zero bounds.
func (p *Path) Bounds() rect.Rect {
	if p.IsEmpty() {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: p.Inset,
		LLy: p.Inset,
		URx: 1 - p.Inset,
		URy: 1 - p.Inset,
	}
}
