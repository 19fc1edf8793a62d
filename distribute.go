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

import "slices"

// ForceRedistribution makes the next frame space out the active speckles
// evenly again, even if the set of enabled speckles is unchanged.
func (d *RoundedRectangle) ForceRedistribution() {
	d.distributionDirty = true
	d.markModified()
}

// Active returns the indices of the speckles which were spaced out along
// the path by the most recent distribution, in path order.
func (d *RoundedRectangle) Active() []int {
	return slices.Clone(d.active)
}

// Progress returns the position of speckle i along the path, as a
// fraction of the perimeter in [0, 1).  Slots which have not been
// allocated yet report 0.
func (d *RoundedRectangle) Progress(i int) float64 {
	if i < 0 || i >= len(d.progress) {
		return 0
	}
	return d.progress[i]
}

// ensureCapacity makes sure there is a progress slot for each of the
// first n speckles.  New slots start at progress 0.
func (d *RoundedRectangle) ensureCapacity(n int) {
	if n <= len(d.progress) {
		return
	}
	d.progress = append(d.progress, make([]float64, n-len(d.progress))...)
	d.phases = append(d.phases, make([]Phase, n-len(d.phases))...)
}

// refreshDistribution spaces the active speckles evenly along the path,
// if the set of active speckles changed since the last call or if force is
// set.  The active speckles are the enabled ones; if no speckle is enabled,
// all speckles are active.
func (d *RoundedRectangle) refreshDistribution(force bool) {
	if force {
		d.distributionDirty = true
	}
	d.ensurePath()

	h := d.host
	n := h.Len()

	desired := make([]int, 0, n)
	for i := range n {
		if h.Enabled(i) {
			desired = append(desired, i)
		}
	}
	if len(desired) == 0 {
		for i := range n {
			desired = append(desired, i)
		}
	}

	if !d.distributionDirty && slices.Equal(desired, d.active) {
		return
	}

	d.active = desired
	total := float64(max(len(desired), 1))
	for offset, idx := range desired {
		d.progress[idx] = float64(offset) / total
	}

	d.needsRefresh = true
	d.distributionDirty = false
	h.MarkModified()

	Logger().Debug("speckles redistributed", "active", len(desired), "slots", n)
}
