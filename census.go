// Package census holds an in-memory column frame for IPUMS-style microdata
// extracts. The clean subpackage runs the cleaning/enrichment pipeline over
// it; the ref subpackage loads the reference tables the pipeline joins
// against.
package census

import (
	"fmt"
)

// DataTypes are the types of data the package supports.
type DataTypes uint8

// values of DataTypes
const (
	DTunknown DataTypes = 0 + iota
	DTstring
	DTfloat
	DTint
	DTcategory
)

func (dt DataTypes) String() string {
	switch dt {
	case DTstring:
		return "DTstring"
	case DTfloat:
		return "DTfloat"
	case DTint:
		return "DTint"
	case DTcategory:
		return "DTcategory"
	default:
		return "DTunknown"
	}
}

// Table is an ordered set of named columns sharing one row count. Row order
// is stable: no operation reorders rows, and only KeepRows removes any.
type Table struct {
	head    *columnList
	current *columnList
}

type columnList struct {
	col *Column

	prior *columnList
	next  *columnList
}

func NewTable(cols ...*Column) (*Table, error) {
	if cols == nil {
		return nil, fmt.Errorf("no columns in NewTable")
	}

	var head, priorNode *columnList
	for ind := 0; ind < len(cols); ind++ {
		if cols[ind].Len() != cols[0].Len() {
			return nil, fmt.Errorf("length mismatch: %s has %d rows, %s has %d",
				cols[0].Name(), cols[0].Len(), cols[ind].Name(), cols[ind].Len())
		}

		for indx := 0; indx < ind; indx++ {
			if cols[indx].Name() == cols[ind].Name() {
				return nil, fmt.Errorf("duplicate column name: %s", cols[ind].Name())
			}
		}

		node := &columnList{
			col: cols[ind],

			prior: priorNode,
			next:  nil,
		}

		if priorNode != nil {
			priorNode.next = node
		}

		priorNode = node

		if ind == 0 {
			head = node
		}
	}

	return &Table{head: head}, nil
}

// Next iterates the columns in order. Next(true) restarts at the first
// column; Next(false) advances and returns nil past the last column.
func (t *Table) Next(reset bool) *Column {
	if reset || t.current == nil {
		t.current = t.head
		return t.current.col
	}

	if t.current.next == nil {
		t.current = nil
		return nil
	}

	t.current = t.current.next
	return t.current.col
}

func (t *Table) RowCount() int {
	return t.head.col.Len()
}

func (t *Table) ColumnCount() int {
	cols := 0
	for c := t.head; c != nil; c = c.next {
		cols++
	}

	return cols
}

func (t *Table) ColumnNames() []string {
	var names []string

	for h := t.head; h != nil; h = h.next {
		names = append(names, h.col.Name())
	}

	return names
}

// Column returns the named column or nil if the table has no such column.
func (t *Table) Column(colName string) *Column {
	for h := t.head; h != nil; h = h.next {
		if h.col.Name() == colName {
			return h.col
		}
	}

	return nil
}

func (t *Table) HasColumn(colName string) bool {
	return t.Column(colName) != nil
}

func (t *Table) AppendColumn(col *Column) error {
	if t.HasColumn(col.Name()) {
		return fmt.Errorf("duplicate column name: %s", col.Name())
	}

	if col.Len() != t.RowCount() {
		return fmt.Errorf("length mismatch: table - %d, append col - %d", t.RowCount(), col.Len())
	}

	var tail *columnList
	for tail = t.head; tail.next != nil; tail = tail.next {
	}

	tail.next = &columnList{
		col:   col,
		prior: tail,
		next:  nil,
	}

	return nil
}

// ReplaceColumn swaps the column named colName for col, keeping its position
// in the column order. col may carry a new name as long as it collides with
// no other column.
func (t *Table) ReplaceColumn(colName string, col *Column) error {
	var (
		node *columnList
		e    error
	)
	if node, e = t.node(colName); e != nil {
		return e
	}

	if col.Name() != colName && t.HasColumn(col.Name()) {
		return fmt.Errorf("duplicate column name: %s", col.Name())
	}

	if col.Len() != t.RowCount() {
		return fmt.Errorf("length mismatch: table - %d, replacement col - %d", t.RowCount(), col.Len())
	}

	node.col = col

	return nil
}

func (t *Table) node(colName string) (node *columnList, err error) {
	for h := t.head; h != nil; h = h.next {
		if h.col.Name() == colName {
			return h, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrMissingColumn, colName)
}

func (t *Table) DropColumns(colNames ...string) error {
	for _, cName := range colNames {
		var (
			node *columnList
			e    error
		)

		if node, e = t.node(cName); e != nil {
			return e
		}

		if node == t.head {
			if t.head.next == nil {
				return fmt.Errorf("no columns left")
			}

			t.head = t.head.next
			t.head.prior = nil
			continue
		}

		node.prior.next = node.next
		if node.next != nil {
			node.next.prior = node.prior
		}
	}

	t.current = nil

	return nil
}

// KeepColumns returns a new Table holding only the named columns, in the
// order given. The columns themselves are shared, not copied.
func (t *Table) KeepColumns(colNames ...string) (*Table, error) {
	var cols []*Column

	for ind := 0; ind < len(colNames); ind++ {
		col := t.Column(colNames[ind])
		if col == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, colNames[ind])
		}

		cols = append(cols, col)
	}

	return NewTable(cols...)
}

// KeepRows subsets every column to the rows where keep is true, preserving
// row order. This is the row-dropping primitive behind the geography inner
// join.
func (t *Table) KeepRows(keep []bool) error {
	if len(keep) != t.RowCount() {
		return fmt.Errorf("keep length %d != row count %d", len(keep), t.RowCount())
	}

	for h := t.head; h != nil; h = h.next {
		h.col.vec = h.col.vec.Where(keep)
	}

	return nil
}

// Copy deep-copies the table: new column list, new columns, new vectors.
func (t *Table) Copy() *Table {
	var cols []*Column
	for h := t.head; h != nil; h = h.next {
		cols = append(cols, h.col.Copy())
	}

	out, e := NewTable(cols...)
	if e != nil {
		panic(fmt.Errorf("unexpected error in Table.Copy: %w", e))
	}

	return out
}
