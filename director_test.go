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
	"bytes"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// recorder is a position holder which jumps to its target when stepped
// and remembers all step sizes.
type recorder struct {
	current, target vec.Vec2
	steps           []float64
}

func (r *recorder) Target() vec.Vec2      { return r.target }
func (r *recorder) SetCurrent(p vec.Vec2) { r.current = p }
func (r *recorder) SetTarget(p vec.Vec2)  { r.target = p }
func (r *recorder) Step(dt float64) {
	r.steps = append(r.steps, dt)
	r.current = r.target
}

// testHost is a minimal Host for the tests in this package.
type testHost struct {
	holders  []Holder
	enabled  []bool
	speed    float64
	modified int
}

func newTestHost(n int) *testHost {
	h := &testHost{speed: 1}
	for range n {
		h.holders = append(h.holders, &recorder{})
		h.enabled = append(h.enabled, false)
	}
	return h
}

func (h *testHost) Len() int             { return len(h.holders) }
func (h *testHost) Enabled(i int) bool   { return h.enabled[i] }
func (h *testHost) Speed() float64       { return h.speed }
func (h *testHost) Holder(i int) Holder  { return h.holders[i] }
func (h *testHost) MarkModified()        { h.modified++ }
func (h *testHost) rec(i int) *recorder  { return h.holders[i].(*recorder) }
func (h *testHost) grow(n int) *testHost { return h.resize(len(h.holders) + n) }

func (h *testHost) resize(n int) *testHost {
	for len(h.holders) < n {
		h.holders = append(h.holders, &recorder{})
		h.enabled = append(h.enabled, false)
	}
	h.holders = h.holders[:n]
	h.enabled = h.enabled[:n]
	return h
}

func newAttached(n int) (*RoundedRectangle, *testHost) {
	d := NewRoundedRectangle(nil)
	h := newTestHost(n)
	d.Attach(h)
	return d, h
}

func progressOf(d *RoundedRectangle, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = d.Progress(i)
	}
	return res
}

// TestForcedRedistribution covers the basic scenario: four active speckles
// on the default shape are spaced out evenly and jump to their points.
func TestForcedRedistribution(t *testing.T) {
	d, h := newAttached(4)
	d.Initialize()
	d.Update(1.0 / 60)
	d.Update(1.0 / 60)

	d.ForceRedistribution()
	d.Update(0)

	want := []float64{0, 0.25, 0.5, 0.75}
	if got := progressOf(d, 4); !slices.Equal(got, want) {
		t.Errorf("progress: got %v, want %v", got, want)
	}
	for i := range 4 {
		r := h.rec(i)
		pt := d.Path().Sample(want[i])
		if r.current != pt || r.target != pt {
			t.Errorf("speckle %d: current %v, target %v, want both at %v",
				i, r.current, r.target, pt)
		}
	}
}

func TestInitialize(t *testing.T) {
	d, h := newAttached(4)
	if p := d.Phase(0); p != Uninitialized {
		t.Errorf("phase before Initialize: %v", p)
	}

	d.Initialize()

	if got := d.Active(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("active: got %v", got)
	}
	for i := range 4 {
		r := h.rec(i)
		want := d.Path().Sample(float64(i) / 4)
		if r.current != want || r.target != want {
			t.Errorf("speckle %d at %v/%v, want %v", i, r.current, r.target, want)
		}
		if len(r.steps) != 0 {
			t.Errorf("speckle %d was stepped during Initialize", i)
		}
		if p := d.Phase(i); p != Seeded {
			t.Errorf("speckle %d: phase %v, want %v", i, p, Seeded)
		}
	}
	if h.modified == 0 {
		t.Error("host was not marked as modified")
	}
}

func TestAdvanceClockwise(t *testing.T) {
	d, h := newAttached(4)
	d.SetMovementRate(0.25)
	d.Initialize()

	d.Update(1)

	want := []float64{0.25, 0.5, 0.75, 0}
	if got := progressOf(d, 4); !slices.Equal(got, want) {
		t.Errorf("progress: got %v, want %v", got, want)
	}

	// speckles follow their new targets
	for i := range 4 {
		r := h.rec(i)
		if pt := d.Path().Sample(want[i]); r.target != pt {
			t.Errorf("speckle %d: target %v, want %v", i, r.target, pt)
		}
		if !slices.Equal(r.steps, []float64{1 * 1 * 0.5}) {
			t.Errorf("speckle %d: steps %v, want [0.5]", i, r.steps)
		}
	}
}

func TestDirectionFlip(t *testing.T) {
	d, h := newAttached(4)
	d.Initialize()
	d.Update(1)

	before := make([]vec.Vec2, 4)
	for i := range before {
		before[i] = h.rec(i).current
	}
	start := progressOf(d, 4)

	d.SetDirection(CounterClockwise)
	if d.Direction() != CounterClockwise {
		t.Fatalf("direction is %v", d.Direction())
	}
	for i := range before {
		if h.rec(i).current != before[i] {
			t.Errorf("speckle %d moved without an update", i)
		}
	}

	d.Update(1)
	for i, p := range progressOf(d, 4) {
		want := start[i] - 0.25
		if want < 0 {
			want += 1
		}
		if p != want {
			t.Errorf("speckle %d: progress %g, want %g", i, p, want)
		}
	}
}

func TestAdvanceSpeedMultiplier(t *testing.T) {
	d, h := newAttached(2)
	h.speed = 0.5
	d.Initialize()
	d.Update(1)

	want := []float64{0.125, 0.625}
	if got := progressOf(d, 2); !slices.Equal(got, want) {
		t.Errorf("progress: got %v, want %v", got, want)
	}
	if steps := h.rec(0).steps; len(steps) != 1 || steps[0] != 0.25 {
		t.Errorf("steps: got %v, want [0.25]", steps)
	}
}

func TestAdvanceSkipsTinySteps(t *testing.T) {
	d, _ := newAttached(3)
	d.Initialize()
	before := progressOf(d, 3)

	d.Update(1e-6) // delta = 2.5e-7 < Epsilon

	if got := progressOf(d, 3); !slices.Equal(got, before) {
		t.Errorf("progress changed from %v to %v", before, got)
	}
}

func TestDistributionSubset(t *testing.T) {
	d, h := newAttached(8)
	h.enabled[1] = true
	h.enabled[4] = true
	h.enabled[6] = true
	d.Initialize()

	if got := d.Active(); !slices.Equal(got, []int{1, 4, 6}) {
		t.Errorf("active: got %v, want [1 4 6]", got)
	}
	want := []float64{0, 0, 0, 0, 1.0 / 3, 0, 2.0 / 3, 0}
	if got := progressOf(d, 8); !slices.Equal(got, want) {
		t.Errorf("progress: got %v, want %v", got, want)
	}
}

func TestDistributionMembershipChange(t *testing.T) {
	d, h := newAttached(6)
	h.enabled[0] = true
	h.enabled[1] = true
	d.Initialize()
	d.Update(0.5)

	h.enabled[4] = true
	d.Update(0)

	if got := d.Active(); !slices.Equal(got, []int{0, 1, 4}) {
		t.Errorf("active: got %v", got)
	}
	for i, want := range map[int]float64{0: 0, 1: 1.0 / 3, 4: 2.0 / 3} {
		if got := d.Progress(i); got != want {
			t.Errorf("speckle %d: progress %g, want %g", i, got, want)
		}
		r := h.rec(i)
		if r.current != r.target {
			t.Errorf("speckle %d was not moved to its target", i)
		}
	}

	// disabling everything makes all speckles active again
	for i := range h.enabled {
		h.enabled[i] = false
	}
	d.Update(0)
	if got := d.Active(); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("active: got %v", got)
	}
}

func TestDistributionIdempotent(t *testing.T) {
	d, h := newAttached(5)
	h.enabled[0] = true
	h.enabled[3] = true

	d.refreshDistribution(true)
	first := progressOf(d, 5)
	d.refreshDistribution(true)
	if got := progressOf(d, 5); !slices.Equal(got, first) {
		t.Errorf("forced distributions differ: %v, %v", first, got)
	}

	d.needsRefresh = false
	modified := h.modified
	d.refreshDistribution(false)
	if got := progressOf(d, 5); !slices.Equal(got, first) {
		t.Errorf("progress changed from %v to %v", first, got)
	}
	if d.needsRefresh || h.modified != modified {
		t.Error("unchanged distribution triggered a refresh")
	}
}

func TestProgressCapacity(t *testing.T) {
	d, h := newAttached(3)
	d.Initialize()
	d.Update(0.1)

	h.grow(10)
	d.Update(0)
	if len(d.progress) != 13 || len(d.phases) != 13 {
		t.Fatalf("got %d slots, want 13", len(d.progress))
	}

	// the slots stay when the host shrinks again
	h.resize(2)
	d.Update(0.1)
	if len(d.progress) != 13 {
		t.Errorf("progress shrank to %d slots", len(d.progress))
	}
	for i, p := range d.progress {
		if p < 0 || p >= 1 || math.IsNaN(p) {
			t.Errorf("slot %d: progress %g out of range", i, p)
		}
	}
}

func TestNewSpeckleIsPlaced(t *testing.T) {
	d, h := newAttached(2)
	h.enabled[0] = true
	h.enabled[1] = true
	d.Initialize()
	d.Update(0.1)

	// a new disabled speckle does not change the distribution, but it is
	// still placed onto the path on its first frame
	h.grow(1)
	h.rec(2).current = vec.Vec2{X: -1, Y: -1}
	d.Update(0.1)

	r := h.rec(2)
	want := d.Path().Sample(d.Progress(2))
	if r.current != want || r.target != want {
		t.Errorf("new speckle at %v/%v, want %v", r.current, r.target, want)
	}
	if p := d.Phase(2); p != Tracking {
		t.Errorf("phase: got %v, want %v", p, Tracking)
	}
}

func TestCornerRadiusChange(t *testing.T) {
	d, h := newAttached(4)
	d.Initialize()
	d.Update(0.5)
	before := progressOf(d, 4)

	d.SetCornerRadius(0)
	if p := d.Phase(0); p != NeedsTeleport {
		t.Errorf("phase after shape change: %v", p)
	}
	d.Update(0)

	if got := progressOf(d, 4); !slices.Equal(got, before) {
		t.Errorf("radius change redistributed: %v -> %v", before, got)
	}
	if d.Path().Radius != 0 {
		t.Errorf("path radius: got %g", d.Path().Radius)
	}
	for i := range 4 {
		r := h.rec(i)
		want := d.Path().Sample(before[i])
		if r.current != want || r.target != want {
			t.Errorf("speckle %d at %v/%v, want %v", i, r.current, r.target, want)
		}
		if p := d.Phase(i); p != Tracking {
			t.Errorf("speckle %d: phase %v", i, p)
		}
	}
}

func TestInsetChange(t *testing.T) {
	d, _ := newAttached(4)
	d.Initialize()
	d.Update(0.5)

	d.SetInset(0.2)
	d.Update(0)

	want := []float64{0, 0.25, 0.5, 0.75}
	if got := progressOf(d, 4); !slices.Equal(got, want) {
		t.Errorf("progress: got %v, want %v", got, want)
	}
	if got := d.Path().Bounds().LLx; got != 0.2 {
		t.Errorf("path inset: got %g, want 0.2", got)
	}
}

func TestSetters(t *testing.T) {
	d, h := newAttached(1)

	type check struct {
		name string
		set  func(float64)
		get  func() float64
		in   float64
		want float64
	}
	checks := []check{
		{"inset", d.SetInset, d.Inset, 0.7, 0.45},
		{"inset", d.SetInset, d.Inset, -1, 0},
		{"inset", d.SetInset, d.Inset, math.NaN(), 0},
		{"radius", d.SetCornerRadius, d.CornerRadius, 0.9, 0.5},
		{"radius", d.SetCornerRadius, d.CornerRadius, -0.1, 0},
		{"movement", d.SetMovementRate, d.MovementRate, -2, 0},
		{"movement", d.SetMovementRate, d.MovementRate, 3, 3},
		{"movement", d.SetMovementRate, d.MovementRate, math.NaN(), 3},
		{"response", d.SetPositionResponseRate, d.PositionResponseRate, -2, 0},
		{"response", d.SetPositionResponseRate, d.PositionResponseRate, 4, 4},
	}
	for _, c := range checks {
		c.set(c.in)
		if got := c.get(); got != c.want {
			t.Errorf("%s: set %g, got %g, want %g", c.name, c.in, got, c.want)
		}
	}

	// writing the current value again is not a modification
	modified := h.modified
	d.SetInset(d.Inset())
	d.SetCornerRadius(d.CornerRadius())
	d.SetMovementRate(d.MovementRate())
	d.SetPositionResponseRate(d.PositionResponseRate())
	d.SetDirection(d.Direction())
	if h.modified != modified {
		t.Errorf("no-op writes marked the host %d times", h.modified-modified)
	}

	d.SetPositionResponseRate(1)
	if h.modified != modified+1 {
		t.Error("rate change did not mark the host")
	}
}

func TestDefaults(t *testing.T) {
	d := NewRoundedRectangle(nil)
	if d.Inset() != 0.1 || d.CornerRadius() != 0.18 || d.Direction() != Clockwise ||
		d.MovementRate() != 0.25 || d.PositionResponseRate() != 0.5 {
		t.Errorf("unexpected defaults: %g %g %v %g %g", d.Inset(), d.CornerRadius(),
			d.Direction(), d.MovementRate(), d.PositionResponseRate())
	}
	if len(d.progress) != DefaultSlots {
		t.Errorf("got %d progress slots, want %d", len(d.progress), DefaultSlots)
	}

	d = NewRoundedRectangle(&Options{Inset: 2, CornerRadius: -1, MovementRate: -1})
	if d.Inset() != 0.45 || d.CornerRadius() != 0 || d.MovementRate() != 0 {
		t.Errorf("options not clamped: %g %g %g", d.Inset(), d.CornerRadius(), d.MovementRate())
	}
}

func TestStepSize(t *testing.T) {
	d, h := newAttached(1)
	h.speed = 2
	d.SetPositionResponseRate(0.5)
	d.Initialize()

	d.Update(0.1)
	if steps := h.rec(0).steps; len(steps) != 1 || math.Abs(steps[0]-0.1) > 1e-15 {
		t.Errorf("steps: got %v, want [0.1]", steps)
	}

	// no step without a response rate
	d.SetPositionResponseRate(0)
	d.Update(0.1)
	if steps := h.rec(0).steps; len(steps) != 1 {
		t.Errorf("stepped with zero response rate: %v", steps)
	}
}

func TestUpdateWithoutHost(t *testing.T) {
	d := NewRoundedRectangle(nil)
	d.Initialize()
	d.Update(1)
	d.SetInset(0.3)
	if d.Progress(0) != 0 {
		t.Errorf("progress changed without a host: %g", d.Progress(0))
	}
}

func TestBadTimeSteps(t *testing.T) {
	d, _ := newAttached(2)
	d.Initialize()
	before := progressOf(d, 2)
	for _, dt := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		d.Update(dt)
	}
	if got := progressOf(d, 2); !slices.Equal(got, before) {
		t.Errorf("progress changed from %v to %v", before, got)
	}
}

func TestNilHolder(t *testing.T) {
	d, h := newAttached(3)
	h.holders[1] = nil
	d.Initialize()
	d.Update(0.1)
	if h.rec(0).current == (vec.Vec2{}) || h.rec(2).current == (vec.Vec2{}) {
		t.Error("speckles next to an empty slot were not placed")
	}
}

func TestDegenerateShape(t *testing.T) {
	d, h := newAttached(2)
	d.SetInset(0.45)
	d.SetCornerRadius(0)
	d.Initialize()
	d.Update(0.1)
	for i := range 2 {
		r := h.rec(i)
		if math.IsNaN(r.current.X) || math.IsNaN(r.current.Y) {
			t.Errorf("speckle %d at %v", i, r.current)
		}
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	d, _ := newAttached(3)
	d.Initialize()

	out := buf.String()
	for _, msg := range []string{"path rebuilt", "speckles redistributed"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output lacks %q:\n%s", msg, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
