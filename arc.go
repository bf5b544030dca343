package ink

import "math"

// sweepCCW returns the counter-clockwise angular span from a0 to a1, adding
// full turns to a1 until the span is non-negative. Join and cap emission
// both go through this helper so the two call sites cannot diverge in
// rounding behavior.
func sweepCCW(a0, a1 float64) float64 {
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	return a1 - a0
}

// arcSteps returns the triangle count for a fan spanning angle, using steps
// no coarser than maxStep and at least minSteps triangles.
func arcSteps(angle, maxStep float64, minSteps int) int {
	steps := int(math.Ceil(angle / maxStep))
	if steps < minSteps {
		steps = minSteps
	}
	return steps
}

// emitFan tessellates the circular wedge from a0 spanning angle radians
// counter-clockwise into steps triangles anchored at center. A zero or
// negative radius still emits geometry (zero-area or inverted triangles).
func (t *Tessellator) emitFan(center Point, radius, a0, angle float64, steps int, col RGBA) {
	for s := 0; s < steps; s++ {
		t0 := a0 + angle*float64(s)/float64(steps)
		t1 := a0 + angle*float64(s+1)/float64(steps)
		p0 := center.Add(Point{X: math.Cos(t0), Y: math.Sin(t0)}.Mul(radius))
		p1 := center.Add(Point{X: math.Cos(t1), Y: math.Sin(t1)}.Mul(radius))
		t.emitTriangle(center, p0, p1, col)
	}
}

// emitJoinFan fills the outer wedge of a round join between the segments
// with directions d0 and d1. The sign of the cross product selects the
// normal pair on the convex side of the turn, so the fan covers the gap
// between the quads rather than their overlap.
func (t *Tessellator) emitJoinFan(center Point, radius float64, d0, d1 Point, col RGBA) {
	n0 := d0.Perp()
	n1 := d1.Perp()
	if d0.Cross(d1) < 0 {
		n0 = n0.Neg()
		n1 = n1.Neg()
	}
	a0 := n0.Angle()
	angle := sweepCCW(a0, n1.Angle())
	steps := arcSteps(angle, t.opts.JoinMaxStep, t.opts.JoinMinSteps)
	t.emitFan(center, radius, a0, angle, steps, col)
}

// emitCap emits a round end cap: a half-turn fan swept from the negated
// normal to the normal of the adjacent segment.
func (t *Tessellator) emitCap(center, normal Point, radius float64, col RGBA) {
	a0 := normal.Neg().Angle()
	angle := sweepCCW(a0, normal.Angle())
	steps := arcSteps(angle, t.opts.CapMaxStep, t.opts.CapMinSteps)
	t.emitFan(center, radius, a0, angle, steps, col)
}

// emitDisc emits the fixed full-circle fan used for single-point strokes.
func (t *Tessellator) emitDisc(center Point, radius float64, col RGBA) {
	t.emitFan(center, radius, 0, 2*math.Pi, t.opts.DiscSegments, col)
}
