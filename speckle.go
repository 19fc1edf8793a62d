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

// Package speckle moves point-like particles ("speckles") around the
// perimeter of a rounded rectangle.
//
// A [Director] is driven by a host render surface: the host calls
// Initialize once when the director is attached, and Update once per
// frame with the time elapsed since the previous frame.  The director
// reads the number of speckles, their enabled flags and the global speed
// from the host, and writes positions through the [Holder] of each
// speckle.  How a holder moves from its current position towards its
// target is up to the host; see the spring package for two
// implementations.
//
// All coordinates are in the unit square, with y pointing down.
package speckle

import "seehuhn.de/go/geom/vec"

// Director animates the speckles of a [Host].
type Director interface {
	// Initialize places all speckles at their starting positions.
	Initialize()

	// Update advances the animation by dt seconds.
	Update(dt float64)
}

// Host is the render surface a director works on.  The director never
// resizes or reorders the host's speckles.
type Host interface {
	// Len returns the current number of speckle slots.
	Len() int

	// Enabled reports whether speckle i is switched on.
	Enabled(i int) bool

	// Speed returns the global speed multiplier.
	Speed() float64

	// Holder returns the position holder of speckle i.
	Holder(i int) Holder

	// MarkModified signals that the next frame may differ from the
	// previous one and needs to be rendered.
	MarkModified()
}

// Holder is the position of a single speckle.  It keeps a current
// position and a target, and moves the current position towards the
// target when stepped.
type Holder interface {
	// Target returns the position the holder is moving towards.
	Target() vec.Vec2

	// SetCurrent moves the holder to p immediately.
	SetCurrent(p vec.Vec2)

	// SetTarget changes the target, leaving the current position alone.
	SetTarget(p vec.Vec2)

	// Step moves the current position towards the target.  The amount
	// of movement is controlled by dt; its exact meaning depends on
	// the holder's interpolation law.
	Step(dt float64)
}
