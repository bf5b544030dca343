package ink

import "math"

// joinKind classifies the corner treatment at an interior stroke point.
// The classification is computed once per point and shared by segment-quad
// and join-fan emission, which is what guarantees the two never gap or
// overlap at a corner.
type joinKind uint8

const (
	// joinMiter extends both edge offsets to a single point on the
	// corner bisector.
	joinMiter joinKind = iota

	// joinRound leaves the edge offsets independent and fills the outer
	// wedge between them with a circular-arc triangle fan.
	joinRound
)

// pointGeom holds the offset geometry for one centerline point.
// The prev offsets use the incoming segment's normal, the next offsets the
// outgoing segment's normal. For endpoints and mitered interior points the
// two coincide; for round joins they differ and bound the open wedge.
type pointGeom struct {
	leftPrev, rightPrev Point
	leftNext, rightNext Point
	join                joinKind
}

// endpointGeom offsets an endpoint along its only adjacent normal.
func endpointGeom(p, normal Point, radius float64) pointGeom {
	offset := normal.Mul(radius)
	g := pointGeom{
		leftPrev:  p.Add(offset),
		rightPrev: p.Sub(offset),
		join:      joinMiter,
	}
	g.leftNext = g.leftPrev
	g.rightNext = g.rightPrev
	return g
}

// roundGeom offsets an interior point independently per side, leaving the
// wedge between the incoming and outgoing offsets for the join fan.
func roundGeom(p, n0, n1 Point, radius float64) pointGeom {
	return pointGeom{
		leftPrev:  p.Add(n0.Mul(radius)),
		rightPrev: p.Sub(n0.Mul(radius)),
		leftNext:  p.Add(n1.Mul(radius)),
		rightNext: p.Sub(n1.Mul(radius)),
		join:      joinRound,
	}
}

// classifyJoin decides between a miter and a round join for an interior
// point with incoming normal n0, outgoing normal n1, and stroke radius.
//
// The candidate miter direction is the normal sum. A near-zero sum means the
// segments nearly reverse direction, so the corner is round. Otherwise the
// miter length is radius projected onto the miter direction (radius / cosine
// of the half angle, computed via dot product to avoid a trig inverse); a
// miter longer than miterLimit x radius also falls back to round.
func classifyJoin(p, n0, n1 Point, radius, miterLimit float64) pointGeom {
	sum := n0.Add(n1)
	mag := sum.Length()
	if mag < miterDegeneracy {
		return roundGeom(p, n0, n1, radius)
	}

	miterDir := sum.Div(mag)
	dot := miterDir.Dot(n1)
	miterLen := radius
	if math.Abs(dot) > miterDotEpsilon {
		miterLen = radius / dot
	}

	if math.Abs(miterLen) <= miterLimit*radius {
		offset := miterDir.Mul(miterLen)
		g := pointGeom{
			leftPrev:  p.Add(offset),
			rightPrev: p.Sub(offset),
			join:      joinMiter,
		}
		g.leftNext = g.leftPrev
		g.rightNext = g.rightPrev
		return g
	}
	return roundGeom(p, n0, n1, radius)
}
