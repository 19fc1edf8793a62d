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

// Package orbit builds closed rounded-rectangle paths inside the unit
// square and samples them by arc length.
//
// Coordinates are normalized to the unit square with the origin in the
// top-left corner and y growing downwards.  Increasing progress moves
// visually clockwise around the shape, starting at the left end of the
// top edge.
package orbit

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Epsilon is the length below which path pieces are treated as degenerate.
const Epsilon = 1e-6

const (
	// MaxInset is the largest inset accepted by [Build].
	MaxInset = 0.45

	// MaxCornerRadius is the largest corner radius accepted by [Build].
	MaxCornerRadius = 0.5
)

// Center is returned by [Path.Sample] when the path has no segments.
var Center = vec.Vec2{X: 0.5, Y: 0.5}

// Segment is one piece of a [Path].  It is either a [Line] or an [Arc].
type Segment interface {
	// Length returns the arc length of the segment.
	Length() float64

	// At returns the point at the given fraction of the segment's length.
	// The ratio is clamped to [0, 1].
	At(ratio float64) vec.Vec2

	// End returns the final point of the segment.
	End() vec.Vec2

	isSegment()
}

// Line is a straight path segment.
type Line struct {
	A, B   vec.Vec2 // start and end point
	length float64
}

// NewLine returns the straight segment from a to b.
// The second return value is false if the segment is shorter than Epsilon.
func NewLine(a, b vec.Vec2) (Line, bool) {
	l := Line{A: a, B: b, length: b.Sub(a).Length()}
	return l, l.length > Epsilon
}

// Length implements the [Segment] interface.
func (l Line) Length() float64 { return l.length }

// At implements the [Segment] interface.
func (l Line) At(ratio float64) vec.Vec2 {
	t := clamp01(ratio)
	return l.A.Add(l.B.Sub(l.A).Mul(t))
}

// End implements the [Segment] interface.
func (l Line) End() vec.Vec2 { return l.B }

func (Line) isSegment() {}

// Arc is a circular path segment.  Angles are in radians and the
// arc is traversed from StartAngle to EndAngle.  With y pointing down,
// increasing angles run clockwise on screen.
type Arc struct {
	Center     vec.Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
	length     float64
}

// NewArc returns the arc around center with the given radius, running from
// startAngle to endAngle.  The second return value is false if the radius or
// the sweep is not larger than Epsilon.
func NewArc(center vec.Vec2, radius, startAngle, endAngle float64) (Arc, bool) {
	sweep := endAngle - startAngle
	a := Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		length:     radius * sweep,
	}
	return a, radius > Epsilon && sweep > Epsilon
}

// Length implements the [Segment] interface.
func (a Arc) Length() float64 { return a.length }

// At implements the [Segment] interface.
func (a Arc) At(ratio float64) vec.Vec2 {
	t := clamp01(ratio)
	return a.pointAt(a.StartAngle + (a.EndAngle-a.StartAngle)*t)
}

// End implements the [Segment] interface.
func (a Arc) End() vec.Vec2 { return a.pointAt(a.EndAngle) }

func (Arc) isSegment() {}

func (a Arc) pointAt(angle float64) vec.Vec2 {
	return vec.Vec2{
		X: a.Center.X + math.Cos(angle)*a.Radius,
		Y: a.Center.Y + math.Sin(angle)*a.Radius,
	}
}

// Path is a closed sequence of segments, parameterized by arc length.
// A Path is immutable once built.
type Path struct {
	// Inset and Radius are the clamped shape parameters the path was
	// built from.  Radius is the corner radius actually used, after
	// limiting it to half the shorter side.
	Inset  float64
	Radius float64

	// Segments lists the pieces of the path in traversal order.
	// Pieces shorter than Epsilon are omitted.
	Segments []Segment

	// TotalLength is the sum of all segment lengths, but at least Epsilon.
	TotalLength float64
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Build constructs the rounded rectangle with the given inset and corner
// radius.  The inset is limited to [0, 0.5] and the radius to
// [0, MaxCornerRadius].  Degenerate shapes (zero width or height), for
// example an inset of 0.5, give an empty path.
//
// Build does not apply MaxInset; that limit is enforced by the callers
// which accept user input.
func Build(inset, cornerRadius float64) *Path {
	inset = clamp(inset, 0, 0.5)
	cornerRadius = ClampRadius(cornerRadius)

	left, top := inset, inset
	right, bottom := 1-inset, 1-inset

	width := max(right-left, 0)
	height := max(bottom-top, 0)
	if width <= Epsilon || height <= Epsilon {
		return &Path{Inset: inset, TotalLength: Epsilon}
	}

	radius := min(cornerRadius, min(width, height)/2)

	b := &builder{}
	if radius <= Epsilon {
		radius = 0
		topLeft := vec.Vec2{X: left, Y: top}
		topRight := vec.Vec2{X: right, Y: top}
		bottomRight := vec.Vec2{X: right, Y: bottom}
		bottomLeft := vec.Vec2{X: left, Y: bottom}

		b.line(topLeft, topRight)
		b.line(topRight, bottomRight)
		b.line(bottomRight, bottomLeft)
		b.line(bottomLeft, topLeft)
	} else {
		b.line(vec.Vec2{X: left + radius, Y: top}, vec.Vec2{X: right - radius, Y: top})
		b.arc(vec.Vec2{X: right - radius, Y: top + radius}, radius, 1.5*math.Pi, 2*math.Pi)
		b.line(vec.Vec2{X: right, Y: top + radius}, vec.Vec2{X: right, Y: bottom - radius})
		b.arc(vec.Vec2{X: right - radius, Y: bottom - radius}, radius, 0, 0.5*math.Pi)
		b.line(vec.Vec2{X: right - radius, Y: bottom}, vec.Vec2{X: left + radius, Y: bottom})
		b.arc(vec.Vec2{X: left + radius, Y: bottom - radius}, radius, 0.5*math.Pi, math.Pi)
		b.line(vec.Vec2{X: left, Y: bottom - radius}, vec.Vec2{X: left, Y: top + radius})
		b.arc(vec.Vec2{X: left + radius, Y: top + radius}, radius, math.Pi, 1.5*math.Pi)
	}

	return &Path{
		Inset:       inset,
		Radius:      radius,
		Segments:    b.segs,
		TotalLength: max(b.total, Epsilon),
	}
}

// builder collects the non-degenerate pieces of a path.
type builder struct {
	segs  []Segment
	total float64
}

func (b *builder) line(a, c vec.Vec2) {
	if l, ok := NewLine(a, c); ok {
		b.segs = append(b.segs, l)
		b.total += l.length
	}
}

func (b *builder) arc(center vec.Vec2, radius, startAngle, endAngle float64) {
	if a, ok := NewArc(center, radius, startAngle, endAngle); ok {
		b.segs = append(b.segs, a)
		b.total += a.length
	}
}

// ClampInset limits an inset to [0, MaxInset].  NaN maps to 0.
func ClampInset(v float64) float64 {
	return clamp(v, 0, MaxInset)
}

// ClampRadius limits a corner radius to [0, MaxCornerRadius].  NaN maps to 0.
func ClampRadius(v float64) float64 {
	return clamp(v, 0, MaxCornerRadius)
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lower, upper float64) float64 {
	if math.IsNaN(v) {
		return lower
	}
	return min(max(v, lower), upper)
}
