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

// Package field provides a simple host for speckle directors.
package field

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/speckle"
	"seehuhn.de/go/speckle/orbit"
	"seehuhn.de/go/speckle/spring"
)

// Position is a position holder which can also report where it is.
type Position interface {
	speckle.Holder
	Current() vec.Vec2
}

// Speckle is one slot of a [Field].
type Speckle struct {
	Enabled  bool
	Position Position
}

// Field is a set of speckles together with a global speed multiplier.
// It implements the [speckle.Host] interface.
//
// A Field is not safe for concurrent use.
type Field struct {
	Speckles []Speckle

	speed    float64
	modified bool
}

var _ speckle.Host = (*Field)(nil)

// New returns a field with n disabled speckles.  Each speckle uses a
// critically damped spring, resting at the centre of the unit square.
// The speed multiplier is 1.
func New(n int) *Field {
	f := &Field{speed: 1}
	for range n {
		f.Add(spring.NewSpring(orbit.Center))
	}
	return f
}

// Add appends a disabled speckle with the given position holder and
// returns its index.
func (f *Field) Add(p Position) int {
	f.Speckles = append(f.Speckles, Speckle{Position: p})
	f.modified = true
	return len(f.Speckles) - 1
}

// Enable switches speckle i on or off.
func (f *Field) Enable(i int, on bool) {
	if f.Speckles[i].Enabled == on {
		return
	}
	f.Speckles[i].Enabled = on
	f.modified = true
}

// SetSpeed sets the global speed multiplier.  Negative values and NaN
// are replaced by zero.
func (f *Field) SetSpeed(s float64) {
	if math.IsNaN(s) || s < 0 {
		s = 0
	}
	if s == f.speed {
		return
	}
	f.speed = s
	f.modified = true
}

// Len implements the [speckle.Host] interface.
func (f *Field) Len() int { return len(f.Speckles) }

// Enabled implements the [speckle.Host] interface.
func (f *Field) Enabled(i int) bool { return f.Speckles[i].Enabled }

// Speed implements the [speckle.Host] interface.
func (f *Field) Speed() float64 { return f.speed }

// Holder implements the [speckle.Host] interface.
func (f *Field) Holder(i int) speckle.Holder {
	p := f.Speckles[i].Position
	if p == nil {
		return nil
	}
	return p
}

// MarkModified implements the [speckle.Host] interface.
func (f *Field) MarkModified() { f.modified = true }

// Modified reports whether anything changed since the last call to
// TakeModified.
func (f *Field) Modified() bool { return f.modified }

// TakeModified reports whether anything changed since the last call, and
// clears the flag.  Render loops call this once per frame to decide
// whether to redraw.
func (f *Field) TakeModified() bool {
	m := f.modified
	f.modified = false
	return m
}

// Positions appends the current positions of all speckles to buf and
// returns the result.  Speckles without a position holder are reported
// at the centre of the unit square.
func (f *Field) Positions(buf []vec.Vec2) []vec.Vec2 {
	for _, s := range f.Speckles {
		if s.Position == nil {
			buf = append(buf, orbit.Center)
			continue
		}
		buf = append(buf, s.Position.Current())
	}
	return buf
}
