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

// advanceProgress moves the first n speckles along the path by the
// distance covered in dt seconds.  Steps below orbit.Epsilon are skipped.
func (d *RoundedRectangle) advanceProgress(n int, dt float64) {
	delta := dt * hostSpeed(d.host) * d.movementRate * d.direction.Sign()
	if !(math.Abs(delta) > orbit.Epsilon) {
		return
	}
	for i := range n {
		d.progress[i] = orbit.Wrap(d.progress[i] + delta)
	}
}

// hostSpeed returns the host's speed multiplier, with non-finite values
// replaced by zero.
func hostSpeed(h Host) float64 {
	s := h.Speed()
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0
	}
	return s
}
