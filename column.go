package census

import (
	"fmt"
	"strings"
)

// Column is a named Vector.
type Column struct {
	name string

	vec *Vector
}

// ColOpt is an option setter for NewColumn.
type ColOpt func(c *Column) error

func NewColumn(data any, dt DataTypes, opts ...ColOpt) (*Column, error) {
	var col *Column
	if v, ok := data.(*Vector); ok {
		if dt != DTunknown && dt != v.VectorType() {
			return nil, fmt.Errorf("%w: vector is %s, asked for %s", ErrTypeMismatch, v.VectorType(), dt)
		}

		col = &Column{vec: v}
	}

	if col == nil {
		var (
			v *Vector
			e error
		)
		if v, e = NewVector(data, dt); e != nil {
			return nil, e
		}

		col = &Column{vec: v}
	}

	for _, opt := range opts {
		if e := opt(col); e != nil {
			return nil, e
		}
	}

	return col, nil
}

func ColName(name string) ColOpt {
	return func(c *Column) error {
		if c == nil {
			return fmt.Errorf("nil column to ColName")
		}

		if !validName(name) {
			return fmt.Errorf("illegal column name: %s", name)
		}

		c.name = name

		return nil
	}
}

func (c *Column) Name() string {
	return c.name
}

func (c *Column) Rename(newName string) error {
	if !validName(newName) {
		return fmt.Errorf("illegal column name: %s", newName)
	}

	c.name = newName

	return nil
}

func (c *Column) DataType() DataTypes {
	return c.vec.VectorType()
}

func (c *Column) Len() int {
	return c.vec.Len()
}

func (c *Column) Data() *Vector {
	return c.vec
}

func (c *Column) Copy() *Column {
	return &Column{
		name: c.name,
		vec:  c.vec.Copy(),
	}
}

func validName(name string) bool {
	const illegal = "!@#$%^&*()=+-;:'`/.,>< ~ " + `"`

	return name != "" && !strings.ContainsAny(name, illegal)
}
