package census

import (
	"fmt"
)

// Vector holds the values of one column. The value slice lives behind an
// any; low-level accessors panic on misuse, the exported API above them
// returns errors.
//
// A DTcategory vector stores level indexes into an ordered level list. The
// level list may contain duplicate label text -- that is a defect of the
// source extract the scanner reports, not something the vector repairs.
type Vector struct {
	dt DataTypes

	data   any
	levels []string
}

func NewVector(data any, dt DataTypes) (*Vector, error) {
	switch dt {
	case DTfloat:
		if _, ok := data.([]float64); !ok {
			return nil, fmt.Errorf("%w: need []float64 for %s vector", ErrTypeMismatch, dt)
		}
	case DTint:
		if _, ok := data.([]int); !ok {
			return nil, fmt.Errorf("%w: need []int for %s vector", ErrTypeMismatch, dt)
		}
	case DTstring:
		if _, ok := data.([]string); !ok {
			return nil, fmt.Errorf("%w: need []string for %s vector", ErrTypeMismatch, dt)
		}
	default:
		return nil, fmt.Errorf("%w: cannot make vector of type %s", ErrTypeMismatch, dt)
	}

	return &Vector{dt: dt, data: data}, nil
}

// NewCategoryVector builds a DTcategory vector from level indexes and the
// ordered level list. Indexes must lie within the level list.
func NewCategoryVector(indexes []int, levels []string) (*Vector, error) {
	for _, ix := range indexes {
		if ix < 0 || ix >= len(levels) {
			return nil, fmt.Errorf("%w: level index %d out of range (have %d levels)", ErrTypeMismatch, ix, len(levels))
		}
	}

	return &Vector{dt: DTcategory, data: indexes, levels: levels}, nil
}

func MakeVector(dt DataTypes, n int) *Vector {
	switch dt {
	case DTfloat:
		return &Vector{dt: dt, data: make([]float64, n)}
	case DTint:
		return &Vector{dt: dt, data: make([]int, n)}
	case DTstring:
		return &Vector{dt: dt, data: make([]string, n)}
	default:
		panic(fmt.Errorf("cannot make Vector with data type %s", dt))
	}
}

func (v *Vector) VectorType() DataTypes {
	return v.dt
}

// Levels returns the ordered level list of a DTcategory vector, nil otherwise.
func (v *Vector) Levels() []string {
	return v.levels
}

func (v *Vector) Len() int {
	switch v.dt {
	case DTfloat:
		return len(v.data.([]float64))
	case DTint, DTcategory:
		return len(v.data.([]int))
	case DTstring:
		return len(v.data.([]string))
	default:
		panic(fmt.Errorf("unexpected error in Vector.Len"))
	}
}

func (v *Vector) SetFloat(val float64, indx int) {
	if v.dt != DTfloat {
		panic(fmt.Errorf("vector isn't DTfloat"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]float64)[indx] = val
}

func (v *Vector) SetInt(val, indx int) {
	if v.dt != DTint {
		panic(fmt.Errorf("vector isn't DTint"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]int)[indx] = val
}

func (v *Vector) SetString(val string, indx int) {
	if v.dt != DTstring {
		panic(fmt.Errorf("vector isn't DTstring"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]string)[indx] = val
}

// Element returns the value at indx. For DTcategory this is the label text,
// not the level index -- the label is the value, the index is storage.
func (v *Vector) Element(indx int) any {
	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[indx]
	case DTint:
		return v.data.([]int)[indx]
	case DTstring:
		return v.data.([]string)[indx]
	case DTcategory:
		return v.levels[v.data.([]int)[indx]]
	default:
		panic(fmt.Errorf("error in Element"))
	}
}

func (v *Vector) ElementString(indx int) string {
	if v.dt == DTstring {
		return v.data.([]string)[indx]
	}

	if v.dt == DTcategory {
		return v.levels[v.data.([]int)[indx]]
	}

	if x, e := toString(v.Element(indx), false); e == nil {
		return x.(string)
	}

	return ""
}

func (v *Vector) ElementInt(indx int) int {
	if v.dt == DTint {
		return v.data.([]int)[indx]
	}

	if x, e := toInt(v.Element(indx), false); e == nil {
		return x.(int)
	}

	panic(fmt.Errorf("element is not int-able"))
}

func (v *Vector) ElementFloat(indx int) float64 {
	if v.dt == DTfloat {
		return v.data.([]float64)[indx]
	}

	if x, e := toFloat(v.Element(indx), false); e == nil {
		return x.(float64)
	}

	panic(fmt.Errorf("element is not float-able"))
}

// LevelIndex returns the level index stored at indx of a DTcategory vector.
func (v *Vector) LevelIndex(indx int) int {
	if v.dt != DTcategory {
		panic(fmt.Errorf("vector isn't DTcategory"))
	}

	return v.data.([]int)[indx]
}

func (v *Vector) AsFloat() []float64 {
	if v.dt == DTfloat {
		return v.data.([]float64)
	}

	if v.dt == DTint {
		xOut := make([]float64, v.Len())
		for ind, xx := range v.data.([]int) {
			xOut[ind] = float64(xx)
		}

		return xOut
	}

	var (
		vx *Vector
		e  error
	)
	if vx, e = v.Coerce(DTfloat); e != nil {
		panic(fmt.Errorf("cannot convert in Vector.AsFloat"))
	}

	return vx.data.([]float64)
}

func (v *Vector) AsInt() []int {
	if v.dt == DTint {
		return v.data.([]int)
	}

	var (
		vx *Vector
		e  error
	)
	if vx, e = v.Coerce(DTint); e != nil {
		panic(fmt.Errorf("cannot convert in Vector.AsInt"))
	}

	return vx.data.([]int)
}

// AsString materializes the values as text. For DTcategory the result is
// the label text per row.
func (v *Vector) AsString() []string {
	vx, _ := v.Coerce(DTstring)
	return vx.data.([]string)
}

// Coerce converts the vector to another data type. Every element must
// convert; the first element that does not fails the whole vector with
// ErrTypeMismatch. DTcategory coerces via its label text.
func (v *Vector) Coerce(to DataTypes) (*Vector, error) {
	xOut := MakeVector(to, v.Len())
	for ind := 0; ind < v.Len(); ind++ {
		vIn := v.Element(ind)
		switch to {
		case DTfloat:
			x, e := toFloat(vIn, false)
			if e != nil {
				return nil, fmt.Errorf("%w: cannot convert %v (row %d) to float", ErrTypeMismatch, vIn, ind)
			}

			xOut.SetFloat(x.(float64), ind)
		case DTint:
			x, e := toInt(vIn, false)
			if e != nil {
				return nil, fmt.Errorf("%w: cannot convert %v (row %d) to int", ErrTypeMismatch, vIn, ind)
			}

			xOut.SetInt(x.(int), ind)
		case DTstring:
			x, e := toString(vIn, false)
			if e != nil {
				return nil, fmt.Errorf("%w: cannot convert %v (row %d) to string", ErrTypeMismatch, vIn, ind)
			}

			xOut.SetString(x.(string), ind)
		default:
			return nil, fmt.Errorf("%w: cannot coerce to %s", ErrTypeMismatch, to)
		}
	}

	return xOut, nil
}

// Where returns the subset of the vector where keep is true. Row order is
// preserved. keep must have the same length as the vector.
func (v *Vector) Where(keep []bool) *Vector {
	if len(keep) != v.Len() {
		panic(fmt.Errorf("keep length %d != vector length %d", len(keep), v.Len()))
	}

	n := 0
	for _, k := range keep {
		if k {
			n++
		}
	}

	switch v.dt {
	case DTfloat:
		x := make([]float64, 0, n)
		for ind, k := range keep {
			if k {
				x = append(x, v.data.([]float64)[ind])
			}
		}

		return &Vector{dt: v.dt, data: x}
	case DTint, DTcategory:
		x := make([]int, 0, n)
		for ind, k := range keep {
			if k {
				x = append(x, v.data.([]int)[ind])
			}
		}

		return &Vector{dt: v.dt, data: x, levels: v.levels}
	case DTstring:
		x := make([]string, 0, n)
		for ind, k := range keep {
			if k {
				x = append(x, v.data.([]string)[ind])
			}
		}

		return &Vector{dt: v.dt, data: x}
	default:
		panic(fmt.Errorf("unexpected error in Vector.Where"))
	}
}

func (v *Vector) Copy() *Vector {
	vCopy := &Vector{dt: v.dt}
	switch v.dt {
	case DTfloat:
		x := make([]float64, v.Len())
		copy(x, v.data.([]float64))
		vCopy.data = x
	case DTint, DTcategory:
		x := make([]int, v.Len())
		copy(x, v.data.([]int))
		vCopy.data = x
	case DTstring:
		x := make([]string, v.Len())
		copy(x, v.data.([]string))
		vCopy.data = x
	default:
		panic(fmt.Errorf("unexpected error in Vector.Copy"))
	}

	if v.levels != nil {
		l := make([]string, len(v.levels))
		copy(l, v.levels)
		vCopy.levels = l
	}

	return vCopy
}

// LevelCounts returns, for a DTcategory vector, the number of rows carrying
// each level, indexed like Levels(). Duplicate label text stays separate:
// counts are per level position, not per label.
func (v *Vector) LevelCounts() []int {
	if v.dt != DTcategory {
		return nil
	}

	counts := make([]int, len(v.levels))
	for _, ix := range v.data.([]int) {
		counts[ix]++
	}

	return counts
}
