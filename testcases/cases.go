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
	"seehuhn.de/go/speckle/orbit"
	"seehuhn.de/go/speckle/spring"
)

var shapeCases = []TestCase{
	{
		Name:     "default",
		Options:  *speckle.DefaultOptions(),
		Speckles: 4,
		Frames:   120,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "square",
		Options:  opts(0.1, 0),
		Speckles: 4,
		Frames:   120,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "circle",
		Options:  opts(0.1, 0.5),
		Speckles: 6,
		Frames:   120,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "full_square",
		Options:  opts(0, 0.5),
		Speckles: 8,
		Frames:   120,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "max_inset",
		Options:  opts(0.45, 0.02),
		Speckles: 3,
		Frames:   120,
		Width:    128,
		Height:   128,
	},
}

var distributionCases = []TestCase{
	{
		Name:     "none_enabled",
		Options:  *speckle.DefaultOptions(),
		Speckles: 5,
		Frames:   60,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "subset",
		Options:  *speckle.DefaultOptions(),
		Speckles: 8,
		Enabled:  []int{1, 4, 6},
		Frames:   60,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "single",
		Options:  *speckle.DefaultOptions(),
		Speckles: 8,
		Enabled:  []int{3},
		Frames:   60,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "enable_later",
		Options:  *speckle.DefaultOptions(),
		Speckles: 6,
		Enabled:  []int{0, 1},
		Frames:   90,
		Events: []Event{
			{Frame: 30, Apply: func(_ *speckle.RoundedRectangle, f *field.Field) {
				f.Enable(4, true)
			}},
			{Frame: 60, Apply: func(_ *speckle.RoundedRectangle, f *field.Field) {
				f.Enable(0, false)
			}},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name:     "grow",
		Options:  *speckle.DefaultOptions(),
		Speckles: 8,
		Frames:   60,
		Events: []Event{
			{Frame: 20, Apply: func(_ *speckle.RoundedRectangle, f *field.Field) {
				for range 4 {
					i := f.Add(spring.NewSpring(orbit.Center))
					f.Enable(i, true)
				}
			}},
		},
		Width:  128,
		Height: 128,
	},
}

var motionCases = []TestCase{
	{
		Name:     "counter_clockwise",
		Options:  speckle.Options{Inset: 0.1, CornerRadius: 0.18, Direction: speckle.CounterClockwise, MovementRate: 0.25, PositionResponseRate: 0.5},
		Speckles: 4,
		Frames:   120,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "double_speed",
		Options:  *speckle.DefaultOptions(),
		Speckles: 4,
		Speed:    2,
		Frames:   120,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "stopped",
		Options:  speckle.Options{Inset: 0.1, CornerRadius: 0.18, PositionResponseRate: 0.5},
		Speckles: 4,
		Frames:   30,
		Width:    128,
		Height:   128,
	},
	{
		Name:     "direction_flip",
		Options:  *speckle.DefaultOptions(),
		Speckles: 4,
		Frames:   120,
		Events: []Event{
			{Frame: 60, Apply: func(d *speckle.RoundedRectangle, _ *field.Field) {
				d.SetDirection(speckle.CounterClockwise)
			}},
		},
		Width:  128,
		Height: 128,
	},
}

var liveCases = []TestCase{
	{
		Name:     "inset_change",
		Options:  *speckle.DefaultOptions(),
		Speckles: 4,
		Frames:   90,
		Events: []Event{
			{Frame: 45, Apply: func(d *speckle.RoundedRectangle, _ *field.Field) {
				d.SetInset(0.25)
			}},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name:     "radius_change",
		Options:  *speckle.DefaultOptions(),
		Speckles: 4,
		Frames:   90,
		Events: []Event{
			{Frame: 45, Apply: func(d *speckle.RoundedRectangle, _ *field.Field) {
				d.SetCornerRadius(0)
			}},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name:     "slow_response",
		Options:  *speckle.DefaultOptions(),
		Speckles: 4,
		Frames:   90,
		Events: []Event{
			{Frame: 30, Apply: func(d *speckle.RoundedRectangle, _ *field.Field) {
				d.SetPositionResponseRate(0.05)
				d.SetMovementRate(1)
			}},
		},
		Width:  128,
		Height: 128,
	},
}
