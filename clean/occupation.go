package clean

import (
	"log"
	"strings"

	"github.com/invertedv/census"
	"github.com/invertedv/census/ref"
)

// EnrichOccupation maps the occupation code to a descriptive title.
// Lookup-with-default: rows with no matching code keep an empty title.
func EnrichOccupation(tbl *census.Table, occ *ref.OccupationTable, opts Options, lg *log.Logger) (*census.Table, error) {
	lg = logger(lg)

	if !tbl.HasColumn(opts.Occupation) {
		lg.Printf("no %s column -- skipping occupation enrichment", opts.Occupation)
		return tbl, nil
	}

	if occ == nil {
		lg.Printf("occupation reference table not loaded -- skipping occupation enrichment")
		return tbl, nil
	}

	out := tbl.Copy()
	col := out.Column(opts.Occupation)

	n := out.RowCount()
	titles := make([]string, n)

	for ind := 0; ind < n; ind++ {
		o, ok := occ.ByCode(strings.TrimSpace(col.Data().ElementString(ind)))
		if !ok {
			continue
		}

		titles[ind] = o.Title
	}

	c, e := census.NewColumn(titles, census.DTstring, census.ColName(ColOccTitle))
	if e != nil {
		return nil, e
	}

	if e = out.AppendColumn(c); e != nil {
		return nil, e
	}

	return out, nil
}
