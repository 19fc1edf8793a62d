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

package testcases

import (
	"seehuhn.de/go/speckle"
	"seehuhn.de/go/speckle/field"
)

// TestCase defines a single animation scenario.
type TestCase struct {
	Name      string          // lowercase a-z and _ only
	Options   speckle.Options // initial shape and motion parameters
	Speckles  int             // number of speckle slots
	Enabled   []int           // speckles switched on at the start
	Speed     float64         // global speed multiplier (zero means 1)
	Frames    int             // number of Update calls after Initialize
	FrameTime float64         // seconds per frame (zero means 1/60)
	Events    []Event         // changes applied while the animation runs
	Width     int             // preview width in pixels
	Height    int             // preview height in pixels
}

// Event changes the scenario just before the given frame is computed.
type Event struct {
	Frame int
	Apply func(d *speckle.RoundedRectangle, f *field.Field)
}

// Play runs the test case.  The visit function is called once after
// Initialize with frame 0, and then after every frame.
func (tc *TestCase) Play(visit func(frame int, d *speckle.RoundedRectangle, f *field.Field)) {
	f := field.New(tc.Speckles)
	for _, i := range tc.Enabled {
		f.Enable(i, true)
	}
	if tc.Speed != 0 {
		f.SetSpeed(tc.Speed)
	}
	dt := tc.FrameTime
	if dt == 0 {
		dt = 1.0 / 60
	}

	opt := tc.Options
	d := speckle.NewRoundedRectangle(&opt)
	d.Attach(f)
	d.Initialize()
	visit(0, d, f)

	for frame := 1; frame <= tc.Frames; frame++ {
		for _, ev := range tc.Events {
			if ev.Frame == frame {
				ev.Apply(d, f)
			}
		}
		d.Update(dt)
		visit(frame, d, f)
	}
}

// opts returns the default options with the given shape.
func opts(inset, radius float64) speckle.Options {
	o := *speckle.DefaultOptions()
	o.Inset = inset
	o.CornerRadius = radius
	return o
}
