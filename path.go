package polypath

import (
	"errors"

	"cogentcore.org/core/math32"
)

// Point is a point on a path, a homogeneous coordinate with x, y, z and w
// components. A plain 3D point has w == 1.
type Point = math32.Vector4

var (
	// ErrTooFewSamples is returned when fewer than 2 samples are requested.
	ErrTooFewSamples = errors.New("Need at least 2 samples to span the path!")

	// ErrDegeneratePath is returned when an operation needs at least one
	// segment but the path has fewer than 2 points.
	ErrDegeneratePath = errors.New("Path must contain at least 2 points!")

	// ErrStepNotPositive is returned when an arc-length step is zero or
	// negative.
	ErrStepNotPositive = errors.New("Arc-length step must be positive!")
)

// Path is a finalized polyline. The point sequence is fixed after
// construction; the cumulative arc-length table is computed lazily on the
// first query and cached. The cache mutation is not synchronized, so
// concurrent queries on one Path need external locking.
type Path struct {
	// ordered points of the polyline
	points []Point

	// lvalues[i] is the arc length from points[0] to points[i]
	lvalues []float32

	// dirty marks lvalues and length as stale
	dirty bool

	length float32
}

// PathSample is a point on a path together with its arc-length parameter.
type PathSample struct {
	Len float32
	Pt  Point
}

// Calculate the length of the polyline by summing up the length of all
// individual segments. The cumulative lengths are cached, so repeated
// calls are free.
func (this *Path) Length() float32 {
	if !this.dirty {
		return this.length
	}

	var length float32
	this.lvalues = append(this.lvalues[:0], 0)

	for i := 1; i < len(this.points); i++ {
		vector := this.points[i].Sub(this.points[i-1])
		length += vector.Length()
		this.lvalues = append(this.lvalues, length)
	}

	this.length = length
	this.dirty = false

	return length
}

// Distribute numpts many points along the polyline, spaced at equal
// arc-length intervals from the first point to the last, both inclusive.
//
// **params**
// + number of samples, at least 2
//
// **returns**
// + numpts points in order of increasing arc length
// + ErrTooFewSamples if numpts < 2, ErrDegeneratePath for a path with
// fewer than 2 points
func (this *Path) Evaluate(numpts int) ([]Point, error) {
	if numpts < 2 {
		return nil, ErrTooFewSamples
	}
	if len(this.points) < 2 {
		return nil, ErrDegeneratePath
	}

	step := this.Length() / float32(numpts-1)

	points := make([]Point, 0, numpts)
	var target float32
	var idx int

	for i := 0; i < numpts; i++ {
		idx = this.segmentIndex(idx, target)
		points = append(points, this.interpolated(idx, target))
		target += step
	}

	return points, nil
}

// The point at arc length s along the polyline. s is clamped to
// [0, Length()].
//
// **params**
// + arc length at which to evaluate
//
// **returns**
// + the point at that arc length
// + ErrDegeneratePath for a path with fewer than 2 points
func (this *Path) PointAtLength(s float32) (Point, error) {
	if len(this.points) < 2 {
		return Point{}, ErrDegeneratePath
	}

	total := this.Length()
	if s < 0 {
		s = 0
	} else if s > total {
		s = total
	}

	idx := this.segmentIndex(0, s)

	return this.interpolated(idx, s), nil
}

// Divide the polyline into num pieces of equal arc length.
//
// **params**
// + number of pieces, at least 1
//
// **returns**
// + num + 1 samples, every Length() / num apart, starting at arc length 0
func (this *Path) DivideByEqualArcLength(num int) ([]PathSample, error) {
	if num < 1 {
		return nil, ErrStepNotPositive
	}
	if len(this.points) < 2 {
		return nil, ErrDegeneratePath
	}

	return this.DivideByArcLength(this.Length() / float32(num))
}

// Divide the polyline into samples every l units of arc length, starting
// at the first point. The final sample lands on the last point when the
// total length is a multiple of l; a step larger than the total length
// yields only the starting sample.
func (this *Path) DivideByArcLength(l float32) ([]PathSample, error) {
	if l <= 0 {
		return nil, ErrStepNotPositive
	}
	if len(this.points) < 2 {
		return nil, ErrDegeneratePath
	}

	total := this.Length()
	samples := []PathSample{{0, this.points[0]}}

	var idx int
	for target := l; target < total+Epsilon; target += l {
		t := math32.Min(target, total)
		idx = this.segmentIndex(idx, t)
		samples = append(samples, PathSample{t, this.interpolated(idx, t)})
	}

	return samples, nil
}

// The point on the polyline closest to pt.
func (this *Path) ClosestPoint(pt Point) (Point, error) {
	sample, err := this.closest(pt)
	return sample.Pt, err
}

// The arc length at which the polyline comes closest to pt.
func (this *Path) ClosestParam(pt Point) (float32, error) {
	sample, err := this.closest(pt)
	return sample.Len, err
}

func (this *Path) closest(pt Point) (PathSample, error) {
	if len(this.points) == 0 {
		return PathSample{}, ErrDegeneratePath
	}
	if len(this.points) == 1 {
		return PathSample{0, this.points[0]}, nil
	}

	// populate lvalues
	this.Length()

	min := math32.Inf(1)
	var best PathSample

	for i := 0; i < len(this.points)-1; i++ {
		proj := segmentClosestPoint(
			pt, this.points[i], this.points[i+1],
			this.lvalues[i], this.lvalues[i+1],
		)
		dv := pt.Sub(proj.Pt)
		d := dv.Length()

		if d < min {
			min = d
			best = proj
		}
	}

	return best, nil
}

// Reverse returns a new Path visiting the same points in opposite order.
func (this *Path) Reverse() *Path {
	reversed := Path{
		points: make([]Point, 0, len(this.points)),
		dirty:  true,
	}

	for i := len(this.points) - 1; i >= 0; i-- {
		reversed.points = append(reversed.points, this.points[i])
	}

	return &reversed
}

// Points returns a copy of the path's point sequence.
func (this *Path) Points() []Point {
	return append([]Point(nil), this.points...)
}

func (this *Path) NumPoints() int {
	return len(this.points)
}

// segmentIndex advances idx to the segment whose cumulative-length span
// contains target, clamping to the final segment once target reaches the
// total length. Must only be called with lvalues populated and at least
// 2 points.
func (this *Path) segmentIndex(idx int, target float32) int {
	for idx+1 != len(this.lvalues) && target > this.lvalues[idx+1] {
		idx++
	}
	if idx+1 == len(this.lvalues) {
		idx--
	}

	return idx
}

// interpolated blends the end points of segment idx by the position of
// target within the segment's cumulative-length span. A zero-length
// segment has no interior; its start point is the limiting value.
func (this *Path) interpolated(idx int, target float32) Point {
	seg := this.lvalues[idx+1] - this.lvalues[idx]
	if seg <= 0 {
		return this.points[idx]
	}

	a := target - this.lvalues[idx]
	b := this.lvalues[idx+1] - target
	p1, p2 := this.points[idx], this.points[idx+1]

	return p2.MulScalar(a).Add(p1.MulScalar(b)).DivScalar(seg)
}
