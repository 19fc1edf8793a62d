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

package speckle

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/speckle/orbit"
)

// Phase describes how a speckle's position is updated on the next frame.
type Phase int

// These are the possible phases of a speckle.
const (
	// Uninitialized speckles have never been placed on the path.  They
	// jump to their point the first time they are updated.
	Uninitialized Phase = iota

	// Seeded speckles have been placed on the path by Initialize.
	Seeded

	// Tracking speckles glide towards their moving target.
	Tracking

	// NeedsTeleport speckles jump to their target on the next frame,
	// after a redistribution or a change of shape.
	NeedsTeleport
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Seeded:
		return "seeded"
	case Tracking:
		return "tracking"
	case NeedsTeleport:
		return "needs teleport"
	default:
		return "Phase(?)"
	}
}

// Phase returns the phase of speckle i.
func (d *RoundedRectangle) Phase(i int) Phase {
	if i < 0 || i >= len(d.phases) || d.phases[i] == Uninitialized {
		return Uninitialized
	}
	if d.needsRefresh {
		return NeedsTeleport
	}
	return d.phases[i]
}

// initializeSpeckle places speckle i directly onto its point of the path.
func (d *RoundedRectangle) initializeSpeckle(i int) {
	pos := d.host.Holder(i)
	if pos == nil {
		return
	}
	loc := d.sample(i)
	pos.SetCurrent(loc)
	pos.SetTarget(loc)
	d.phases[i] = Seeded
}

// updateSpeckle moves the target of speckle i to its current point of the
// path and steps the holder towards it.  After a redistribution or a
// change of shape the speckle jumps to the target instead.
func (d *RoundedRectangle) updateSpeckle(i int, dt float64) {
	h := d.host
	pos := h.Holder(i)
	if pos == nil {
		return
	}
	loc := d.sample(i)

	if d.needsRefresh || d.phases[i] == Uninitialized {
		pos.SetCurrent(loc)
		pos.SetTarget(loc)
		d.phases[i] = Tracking
		h.MarkModified()
		return
	}
	d.phases[i] = Tracking

	prev := pos.Target()
	if math.Abs(prev.X-loc.X) > orbit.Epsilon || math.Abs(prev.Y-loc.Y) > orbit.Epsilon {
		pos.SetTarget(loc)
		h.MarkModified()
	}

	move := dt * hostSpeed(h) * d.responseRate
	if move > 0 {
		pos.Step(move)
		h.MarkModified()
	}
}

func (d *RoundedRectangle) sample(i int) vec.Vec2 {
	d.ensurePath()
	return d.path.Sample(d.progress[i])
}
