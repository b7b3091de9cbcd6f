package clean

import (
	"fmt"
	"log"
	"strings"

	"github.com/invertedv/census"
	"github.com/invertedv/census/ref"
)

// EnrichGeography maps the state code to name/abbreviation/FIPS and then
// joins the sub-state area (PUMA) reference table on a composite key.
//
// Step 1 is lookup-with-default: every row survives; rows whose state code
// has no reference entry keep empty STATE_ABBR/STATE_FIPS. Step 2 is an
// inner join: rows whose composite key has no reference entry are dropped.
// The asymmetry is deliberate -- land-area analysis downstream cannot use a
// row with no known area, while a row with an odd state code is still a row.
//
// Both steps are gated on their input column; a table that already carries
// STATE_FIPS from an earlier run skips straight to the area join.
func EnrichGeography(tbl *census.Table, states *ref.StateTable, areas *ref.AreaTable, opts Options, lg *log.Logger) (*census.Table, error) {
	lg = logger(lg)

	var out *census.Table
	switch {
	case tbl.HasColumn(opts.State):
		out = tbl.Copy()
		if e := mapStates(out, states, opts); e != nil {
			return nil, e
		}
	case tbl.HasColumn(ColStateFIPS):
		out = tbl.Copy()
	default:
		lg.Printf("no %s column -- skipping geography enrichment", opts.State)
		return tbl, nil
	}

	if !out.HasColumn(opts.Area) {
		lg.Printf("no %s column -- skipping area mapping", opts.Area)
		return out, nil
	}

	if areas == nil {
		lg.Printf("area reference table not loaded -- skipping area mapping")
		return out, nil
	}

	if e := joinAreas(out, areas, opts); e != nil {
		return nil, e
	}

	return out, nil
}

// mapStates replaces the state-code column with STATE_NAME and appends
// STATE_ABBR and STATE_FIPS. A categorical state column matches by its
// label (IPUMS labels the codes with state names); a plain code column
// matches by FIPS, ignoring leading zeros.
func mapStates(out *census.Table, states *ref.StateTable, opts Options) error {
	if states == nil {
		return fmt.Errorf("%w: state table not loaded", census.ErrReferenceLoad)
	}

	col, e := require(out, opts.State)
	if e != nil {
		return e
	}

	n := out.RowCount()
	names := make([]string, n)
	abbrs := make([]string, n)
	fips := make([]string, n)

	for ind := 0; ind < n; ind++ {
		raw := col.Data().ElementString(ind)

		st, ok := states.ByName(raw)
		if !ok {
			st, ok = states.ByFIPS(raw)
		}

		if !ok {
			names[ind] = raw
			continue
		}

		names[ind] = st.Name
		abbrs[ind] = st.Abbr
		fips[ind] = st.FIPS
	}

	nameCol, e := census.NewColumn(names, census.DTstring, census.ColName(ColStateName))
	if e != nil {
		return e
	}

	if e = out.ReplaceColumn(opts.State, nameCol); e != nil {
		return e
	}

	for _, add := range []struct {
		name string
		data []string
	}{{ColStateAbbr, abbrs}, {ColStateFIPS, fips}} {
		var c *census.Column
		if c, e = census.NewColumn(add.data, census.DTstring, census.ColName(add.name)); e != nil {
			return e
		}

		if e = out.AppendColumn(c); e != nil {
			return e
		}
	}

	return nil
}

// joinAreas inner-joins the area table on STATE_FIPS + zero-padded area
// code. Unmatched rows are dropped.
func joinAreas(out *census.Table, areas *ref.AreaTable, opts Options) error {
	areaCol, e := require(out, opts.Area)
	if e != nil {
		return e
	}

	fipsCol, e := require(out, ColStateFIPS)
	if e != nil {
		return e
	}

	n := out.RowCount()
	keep := make([]bool, n)

	var (
		names []string
		sqmi  []float64
	)

	for ind := 0; ind < n; ind++ {
		padded, ex := padArea(areaCol.Data().ElementString(ind))
		if ex != nil {
			return fmt.Errorf("column %s, row %d: %w", opts.Area, ind, ex)
		}

		ar, ok := areas.ByGEOID(fipsCol.Data().ElementString(ind) + padded)
		if !ok {
			continue
		}

		keep[ind] = true
		names = append(names, ar.Name)
		sqmi = append(sqmi, ar.LandSqMi)
	}

	if e = out.KeepRows(keep); e != nil {
		return e
	}

	nameCol, e := census.NewColumn(names, census.DTstring, census.ColName(ColAreaName))
	if e != nil {
		return e
	}

	sqmiCol, e := census.NewColumn(sqmi, census.DTfloat, census.ColName(ColAreaSqMi))
	if e != nil {
		return e
	}

	if e = out.AppendColumn(nameCol); e != nil {
		return e
	}

	return out.AppendColumn(sqmiCol)
}

// padArea right-aligns the area code to 5 digits with '0'. The padded
// result must be purely numeric.
func padArea(code string) (string, error) {
	code = strings.TrimSpace(code)
	if len(code) < 5 {
		code = strings.Repeat("0", 5-len(code)) + code
	}

	for _, c := range code {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: padded area code %q is not numeric", census.ErrFormat, code)
		}
	}

	return code, nil
}
