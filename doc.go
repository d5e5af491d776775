// Package polypath distributes arbitrarily many points evenly, by arc
// length, along a polyline (a number of points connected along a path
// through those points via straight lines).
//
// To construct a Path, use a PathBuilder. Points can be added either in
// order with AddPoint, or in any order with AddSortedPoint, which
// establishes the order through a parameter supplied per point. Finalize
// produces the Path, which can then be queried for its total arc length
// and resampled at equal arc-length intervals:
//
//	builder := polypath.NewPathBuilder()
//	for i := 0; i < 10; i++ {
//		builder.AddPoint(math32.Vec4(float32(i), float32(i), 0, 1))
//	}
//	path := builder.Finalize()
//
//	length := path.Length()
//	points, err := path.Evaluate(5)
//
// Points are homogeneous coordinates (math32.Vector4); a plain 3D point
// has w == 1. All arithmetic on points is component-wise, including w,
// so differences of w == 1 points carry w == 0 and segment lengths reduce
// to the familiar 3D distances.
//
// A Path computes its cumulative arc-length table lazily on the first
// query and caches it. That cache mutation is not synchronized; a Path
// shared between goroutines needs external locking.
package polypath
