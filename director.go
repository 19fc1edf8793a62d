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

	"seehuhn.de/go/speckle/orbit"
)

// DefaultSlots is the number of progress slots a new director reserves.
// This matches the number of colour slots of the gradient renderer.
const DefaultSlots = 8

// Direction is the sense in which speckles travel around the shape.
type Direction int

// These are the supported directions.
const (
	Clockwise Direction = iota
	CounterClockwise
)

// Sign returns +1 for Clockwise and -1 otherwise.
func (d Direction) Sign() float64 {
	if d == Clockwise {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "Direction(?)"
	}
}

// Options holds the initial shape and motion parameters of a
// [RoundedRectangle] director.
type Options struct {
	// Inset is the distance of the rectangle from the edges of the unit
	// square.  Valid range: [0, 0.45].
	Inset float64

	// CornerRadius is the radius of the rounded corners.  It is limited to
	// [0, 0.5], and to half the shorter side of the rectangle.
	CornerRadius float64

	// Direction is the travel direction of the speckles.
	Direction Direction

	// MovementRate is the fraction of the perimeter travelled per second,
	// before the host's speed multiplier is applied.  Must be non-negative.
	MovementRate float64

	// PositionResponseRate controls how fast the speckles follow their
	// targets.  Must be non-negative.
	PositionResponseRate float64
}

// DefaultOptions returns the parameters used when no options are given.
func DefaultOptions() *Options {
	return &Options{
		Inset:                0.1,
		CornerRadius:         0.18,
		Direction:            Clockwise,
		MovementRate:         0.25,
		PositionResponseRate: 0.5,
	}
}

// RoundedRectangle is a [Director] which moves the speckles of a host
// around the perimeter of a rounded rectangle at constant speed.
//
// The enabled speckles are kept evenly spaced along the perimeter.  When
// the set of enabled speckles changes, the spacing is recomputed and all
// speckles jump to their new positions.  Changes to the shape move the
// speckles to the new outline in the same way.  Otherwise the speckles
// glide towards their moving targets at a rate set by the position
// response rate.
//
// A RoundedRectangle is not safe for concurrent use.  All methods,
// including the setters, must be called from the goroutine which drives
// the frames.
type RoundedRectangle struct {
	host Host

	direction    Direction
	inset        float64
	cornerRadius float64
	movementRate float64
	responseRate float64

	// progress holds one position in [0, 1) for every speckle slot.  The
	// slice grows as needed but never shrinks.
	progress []float64

	// phases holds the animation phase of every speckle slot.  It always
	// has the same length as progress.
	phases []Phase

	// active lists the indices of the speckles which take part in the
	// distribution, in the order they are spaced out along the path.
	active []int

	path *orbit.Path

	pathDirty         bool // path must be rebuilt before the next sample
	distributionDirty bool // progress must be redistributed on the next tick
	needsRefresh      bool // speckles jump to their targets on the next sample
}

var _ Director = (*RoundedRectangle)(nil)

// NewRoundedRectangle returns a new director.  If opt is nil, the values
// from [DefaultOptions] are used.  Out-of-range values are clamped.
func NewRoundedRectangle(opt *Options) *RoundedRectangle {
	if opt == nil {
		opt = DefaultOptions()
	}
	return &RoundedRectangle{
		direction:         opt.Direction,
		inset:             orbit.ClampInset(opt.Inset),
		cornerRadius:      orbit.ClampRadius(opt.CornerRadius),
		movementRate:      clampRate(opt.MovementRate),
		responseRate:      clampRate(opt.PositionResponseRate),
		progress:          make([]float64, DefaultSlots),
		phases:            make([]Phase, DefaultSlots),
		path:              &orbit.Path{TotalLength: orbit.Epsilon},
		pathDirty:         true,
		distributionDirty: true,
		needsRefresh:      true,
	}
}

// Attach connects the director to a host.  Passing nil detaches the
// director; Initialize and Update then do nothing.
func (d *RoundedRectangle) Attach(h Host) {
	d.host = h
}

// Initialize implements the [Director] interface.  It distributes the
// active speckles evenly and places every speckle directly on its point
// of the path.
func (d *RoundedRectangle) Initialize() {
	h := d.host
	if h == nil {
		return
	}

	n := h.Len()
	d.ensureCapacity(n)
	d.refreshDistribution(true)
	for i := range n {
		d.initializeSpeckle(i)
	}
	d.needsRefresh = false
}

// Update implements the [Director] interface.  Negative and non-finite
// values of dt are treated as zero.
func (d *RoundedRectangle) Update(dt float64) {
	h := d.host
	if h == nil {
		return
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	n := h.Len()
	d.ensureCapacity(n)
	d.refreshDistribution(false)
	d.advanceProgress(n, dt)
	for i := range n {
		d.updateSpeckle(i, dt)
	}
	d.needsRefresh = false
}

// Direction returns the travel direction.
func (d *RoundedRectangle) Direction() Direction {
	return d.direction
}

// SetDirection changes the travel direction.  The change takes effect on
// the next frame; positions are not changed.
func (d *RoundedRectangle) SetDirection(dir Direction) {
	if dir == d.direction {
		return
	}
	d.direction = dir
	d.markModified()
}

// Inset returns the distance of the rectangle from the edges of the unit
// square.
func (d *RoundedRectangle) Inset() float64 {
	return d.inset
}

// SetInset changes the inset.  The value is clamped to [0, 0.45];
// NaN is ignored.  Changing the inset rebuilds the path, redistributes the
// speckles and moves them to the new outline.
func (d *RoundedRectangle) SetInset(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = orbit.ClampInset(v)
	if v == d.inset {
		return
	}
	d.inset = v
	d.distributionDirty = true
	d.pathDirty = true
	d.needsRefresh = true
	d.markModified()
}

// CornerRadius returns the requested corner radius.  The radius used for
// the path may be smaller; see [orbit.Path.Radius].
func (d *RoundedRectangle) CornerRadius() float64 {
	return d.cornerRadius
}

// SetCornerRadius changes the corner radius.  The value is clamped to
// [0, 0.5]; NaN is ignored.  Changing the radius rebuilds the path and
// moves the speckles to the new outline.
func (d *RoundedRectangle) SetCornerRadius(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = orbit.ClampRadius(v)
	if v == d.cornerRadius {
		return
	}
	d.cornerRadius = v
	d.pathDirty = true
	d.needsRefresh = true
	d.markModified()
}

// MovementRate returns the fraction of the perimeter travelled per second.
func (d *RoundedRectangle) MovementRate() float64 {
	return d.movementRate
}

// SetMovementRate changes the movement rate.  Negative values are
// replaced by zero; NaN is ignored.
func (d *RoundedRectangle) SetMovementRate(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = clampRate(v)
	if v == d.movementRate {
		return
	}
	d.movementRate = v
	d.markModified()
}

// PositionResponseRate returns the rate at which speckles follow their
// targets.
func (d *RoundedRectangle) PositionResponseRate() float64 {
	return d.responseRate
}

// SetPositionResponseRate changes the position response rate.  Negative
// values are replaced by zero; NaN is ignored.
func (d *RoundedRectangle) SetPositionResponseRate(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = clampRate(v)
	if v == d.responseRate {
		return
	}
	d.responseRate = v
	d.markModified()
}

// Path returns the current path, rebuilding it first if the shape has
// changed.
func (d *RoundedRectangle) Path() *orbit.Path {
	d.ensurePath()
	return d.path
}

func (d *RoundedRectangle) markModified() {
	if d.host != nil {
		d.host.MarkModified()
	}
}

// ensurePath rebuilds the cached path if the shape parameters changed.
func (d *RoundedRectangle) ensurePath() {
	if !d.pathDirty {
		return
	}
	d.path = orbit.Build(d.inset, d.cornerRadius)
	d.pathDirty = false

	Logger().Debug("path rebuilt",
		"inset", d.inset,
		"radius", d.path.Radius,
		"segments", len(d.path.Segments),
		"length", d.path.TotalLength)
}

func clampRate(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
