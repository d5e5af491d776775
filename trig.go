package polypath

// Epsilon is the tolerance below which a segment counts as zero length.
const Epsilon = 1e-6

// Find the closest point on a segment
//
// **params**
// + point to project
// + first point of segment
// + second point of segment
// + arc length at the first point of the segment
// + arc length at the second point of the segment
//
// **returns**
// + the projected point and its arc-length parameter
func segmentClosestPoint(pt, segpt0, segpt1 Point, s0, s1 float32) PathSample {
	dif := segpt1.Sub(segpt0)
	l := dif.Length()

	if l < Epsilon {
		return PathSample{s0, segpt0}
	}

	r := dif.DivScalar(l)
	o2pt := pt.Sub(segpt0)
	do2ptr := o2pt.Dot(r)

	if do2ptr < 0 {
		return PathSample{s0, segpt0}
	} else if do2ptr > l {
		return PathSample{s1, segpt1}
	}

	return PathSample{
		s0 + (s1-s0)*do2ptr/l,
		segpt0.Add(r.MulScalar(do2ptr)),
	}
}
