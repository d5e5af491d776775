package polypath

// PathBuilder collects points and establishes a definite order for them
// before the Path is built. Points are added either in call order with
// AddPoint, or in arbitrary order with AddSortedPoint, which sorts them
// ascending by an explicit parameter. Pick one of the two modes per
// builder; see Finalize for how a mix is resolved.
type PathBuilder struct {
	points []Point
	sorted []Point
	params []float32
}

// Prepares the creation of a path.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{
		points: make([]Point, 0),
		sorted: make([]Point, 0),
		params: make([]float32, 0),
	}
}

// Add points in a particular order by repeatedly calling this function.
// Returns the builder for chaining.
func (this *PathBuilder) AddPoint(pt Point) *PathBuilder {
	this.points = append(this.points, pt)
	return this
}

// Add points by calling this function repeatedly in any order, implicitly
// defining the final order by providing a parameter for each point. Points
// are kept sorted ascending by param; a point whose param equals an existing
// one is placed after it, so the first point inserted among equal params
// sorts earliest. Insertion is a linear scan.
//
// **params**
// + point to insert
// + parameter establishing the point's position
//
// **returns**
// + the builder, for chaining
func (this *PathBuilder) AddSortedPoint(pt Point, param float32) *PathBuilder {
	// find the first strictly greater param
	i := len(this.params)
	for j, p := range this.params {
		if param < p {
			i = j
			break
		}
	}

	this.sorted = append(this.sorted, Point{})
	copy(this.sorted[i+1:], this.sorted[i:])
	this.sorted[i] = pt

	this.params = append(this.params, 0)
	copy(this.params[i+1:], this.params[i:])
	this.params[i] = param

	return this
}

// Use either points which were added in that particular order or use
// provided parameters to sort points added in arbitrary order. If any
// sorted point was added, the sorted sequence wins and points added with
// AddPoint are discarded. The builder must not be used afterwards.
func (this *PathBuilder) Finalize() *Path {
	path := &Path{dirty: true}

	if len(this.params) == 0 {
		path.points = this.points
	} else {
		path.points = this.sorted
	}

	this.points = nil
	this.sorted = nil
	this.params = nil

	return path
}
