package clean

import (
	"log"
	"strings"

	"github.com/invertedv/census"
	"github.com/invertedv/census/ref"
)

// EnrichEducation maps the detailed education code to a simplified category
// and a has-degree flag. Lookup-with-default: every row survives; rows with
// no matching code keep empty strings in both new columns.
func EnrichEducation(tbl *census.Table, edu *ref.EducationTable, opts Options, lg *log.Logger) (*census.Table, error) {
	lg = logger(lg)

	if !tbl.HasColumn(opts.Education) {
		lg.Printf("no %s column -- skipping education enrichment", opts.Education)
		return tbl, nil
	}

	if edu == nil {
		lg.Printf("education reference table not loaded -- skipping education enrichment")
		return tbl, nil
	}

	out := tbl.Copy()
	col := out.Column(opts.Education)

	n := out.RowCount()
	simplified := make([]string, n)
	hasDegree := make([]string, n)

	for ind := 0; ind < n; ind++ {
		e, ok := edu.ByCode(strings.TrimSpace(col.Data().ElementString(ind)))
		if !ok {
			continue
		}

		simplified[ind] = e.Simplified
		hasDegree[ind] = e.HasDegree
	}

	for _, add := range []struct {
		name string
		data []string
	}{{ColEducSimplified, simplified}, {ColEducHasDegree, hasDegree}} {
		c, e := census.NewColumn(add.data, census.DTstring, census.ColName(add.name))
		if e != nil {
			return nil, e
		}

		if e = out.AppendColumn(c); e != nil {
			return nil, e
		}
	}

	return out, nil
}
