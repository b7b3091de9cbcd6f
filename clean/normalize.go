package clean

import (
	"fmt"

	"github.com/invertedv/census"
)

// NormalizeCategories converts the year column to numeric and every other
// categorical column to plain text, stripping the label/ordinal duplication
// of the source format. Duplicate labels collapse naturally: both levels
// become the same literal string.
//
// The year column is a hard requirement (ErrMissingColumn); a year value
// that does not parse is ErrTypeMismatch. Running the result through again
// is a no-op.
func NormalizeCategories(tbl *census.Table, opts Options) (*census.Table, error) {
	if !tbl.HasColumn(opts.Year) {
		return nil, fmt.Errorf("%w: %s", census.ErrMissingColumn, opts.Year)
	}

	out := tbl.Copy()

	for col := out.Next(true); col != nil; col = out.Next(false) {
		name := col.Name()

		var to census.DataTypes
		switch {
		case name == opts.Year:
			to = census.DTint
		case col.DataType() == census.DTcategory:
			to = census.DTstring
		default:
			continue
		}

		v, e := col.Data().Coerce(to)
		if e != nil {
			return nil, fmt.Errorf("column %s: %w", name, e)
		}

		conv, e := census.NewColumn(v, to, census.ColName(name))
		if e != nil {
			return nil, e
		}

		if e = out.ReplaceColumn(name, conv); e != nil {
			return nil, e
		}
	}

	return out, nil
}
