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

	"seehuhn.de/go/geom/vec"
)

// Wrap reduces a progress value into the interval [0, 1).
// Non-finite values map to 0.
func Wrap(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := v - math.Floor(v)
	if r >= 1 {
		// v was a tiny negative number and rounding pushed r up to 1
		return 0
	}
	return r
}

// Offset returns the arc length from the start of the path to the point
// with the given progress.  The progress does not need to be wrapped.
func (p *Path) Offset(progress float64) float64 {
	if p.IsEmpty() {
		return 0
	}
	return Wrap(progress) * p.TotalLength
}

// Sample returns the point at the given progress along the path.  Equal
// steps in progress correspond to equal distances travelled along the path,
// independent of whether the path is straight or curved there.
//
// The progress does not need to be wrapped into [0, 1).  For an empty path,
// Sample returns [Center].
func (p *Path) Sample(progress float64) vec.Vec2 {
	if p.IsEmpty() {
		return Center
	}

	remaining := p.Offset(progress)
	for _, seg := range p.Segments {
		length := seg.Length()
		if length <= Epsilon {
			continue
		}
		if remaining <= length {
			return seg.At(remaining / length)
		}
		remaining -= length
	}

	// rounding errors can leave a little bit of remaining length
	return p.Segments[len(p.Segments)-1].End()
}
