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

// Package spring implements position holders for speckles.
//
// A holder stores the current position of a speckle together with the
// position it is moving towards.  [Spring] follows the target like a
// damped harmonic oscillator, [Ease] closes a fixed fraction of the
// remaining distance per unit of time.
package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"seehuhn.de/go/geom/vec"
)

// Default spring parameters.  A damping ratio of 1 gives a critically
// damped spring, which approaches the target as fast as possible without
// overshooting.
const (
	DefaultFrequency = 6.0
	DefaultDamping   = 1.0
)

// Spring is a position holder which is pulled towards its target by a
// damped spring, independently on each axis.
type Spring struct {
	// Frequency is the angular frequency of the spring.
	Frequency float64

	// Damping is the damping ratio.  Values below 1 overshoot the target.
	Damping float64

	current  vec.Vec2
	target   vec.Vec2
	velocity vec.Vec2
}

// NewSpring returns a critically damped spring resting at p.
func NewSpring(p vec.Vec2) *Spring {
	return &Spring{
		Frequency: DefaultFrequency,
		Damping:   DefaultDamping,
		current:   p,
		target:    p,
	}
}

// Current returns the position the holder is at.
func (s *Spring) Current() vec.Vec2 { return s.current }

// Target returns the position the holder is moving towards.
func (s *Spring) Target() vec.Vec2 { return s.target }

// Velocity returns the current velocity of the holder.
func (s *Spring) Velocity() vec.Vec2 { return s.velocity }

// SetCurrent moves the holder to p and stops all motion.
func (s *Spring) SetCurrent(p vec.Vec2) {
	s.current = p
	s.velocity = vec.Vec2{}
}

// SetTarget changes the rest position of the spring.
func (s *Spring) SetTarget(p vec.Vec2) {
	s.target = p
}

// Step advances the spring by dt units of time.
func (s *Spring) Step(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	sp := harmonica.NewSpring(dt, s.Frequency, s.Damping)
	s.current.X, s.velocity.X = sp.Update(s.current.X, s.velocity.X, s.target.X)
	s.current.Y, s.velocity.Y = sp.Update(s.current.Y, s.velocity.Y, s.target.Y)
}

// Ease is a position holder which moves a fixed fraction of the remaining
// distance towards its target per unit of time.
type Ease struct {
	// Rate is the fraction of the remaining distance covered per unit of
	// time.  A step never moves past the target.
	Rate float64

	current vec.Vec2
	target  vec.Vec2
}

// NewEase returns a holder resting at p, which covers the remaining
// distance within one unit of time.
func NewEase(p vec.Vec2) *Ease {
	return &Ease{Rate: 1, current: p, target: p}
}

func (e *Ease) Current() vec.Vec2     { return e.current }
func (e *Ease) Target() vec.Vec2      { return e.target }
func (e *Ease) SetCurrent(p vec.Vec2) { e.current = p }
func (e *Ease) SetTarget(p vec.Vec2)  { e.target = p }

// Step moves the holder towards the target.
func (e *Ease) Step(dt float64) {
	if !(dt > 0) {
		return
	}
	f := min(dt*e.Rate, 1)
	e.current = e.current.Add(e.target.Sub(e.current).Mul(f))
}
