package clean

import (
	"fmt"
	"log"

	"github.com/invertedv/census"
)

// The two non-numeric age codes IPUMS extracts carry.
const (
	ageUnderOne = "Less than 1 year old"
	ageTopCode  = "90 (90+ in 1980 and 1990)"
)

// CleanAge rewrites the two known textual age codes to their numeric
// equivalents and casts the column to numeric. Any other non-numeric text
// fails the transform with ErrTypeMismatch. Skips with a log notice when
// the age column is absent.
func CleanAge(tbl *census.Table, opts Options, lg *log.Logger) (*census.Table, error) {
	lg = logger(lg)

	if !tbl.HasColumn(opts.Age) {
		lg.Printf("no %s column -- skipping age cleaning", opts.Age)
		return tbl, nil
	}

	out := tbl.Copy()
	col := out.Column(opts.Age)

	vals := col.Data().AsString()
	for ind, v := range vals {
		switch v {
		case ageUnderOne:
			vals[ind] = "0"
		case ageTopCode:
			vals[ind] = "90"
		}
	}

	sv, e := census.NewVector(vals, census.DTstring)
	if e != nil {
		return nil, e
	}

	iv, e := sv.Coerce(census.DTint)
	if e != nil {
		return nil, fmt.Errorf("column %s: %w", opts.Age, e)
	}

	conv, e := census.NewColumn(iv, census.DTint, census.ColName(opts.Age))
	if e != nil {
		return nil, e
	}

	if e = out.ReplaceColumn(opts.Age, conv); e != nil {
		return nil, e
	}

	return out, nil
}
