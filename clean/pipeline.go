// Package clean runs the fixed cleaning/enrichment pipeline over a census
// extract: scan categorical labels for duplicates, normalize categories,
// clean the age codes, then enrich with geography, education, and
// occupation reference tables.
//
// Every transform is a pure function of its input table (the input is never
// mutated) and each is safe to re-run: a transform whose input column is
// gone skips with a log notice. Structural failures -- a bad reference
// file, an unparsable required column -- abort and return an error; no
// partial table comes back from a failed transform.
package clean

import (
	"io"
	"log"
	"os"

	"github.com/invertedv/census"
	"github.com/invertedv/census/ref"
)

// Pipeline bundles the options, the diagnostic logger, and the loaded
// reference tables. Reference files load once, at construction.
type Pipeline struct {
	opts Options
	lg   *log.Logger

	states      *ref.StateTable
	areas       *ref.AreaTable
	education   *ref.EducationTable
	occupations *ref.OccupationTable
}

// NewPipeline loads the configured reference tables. The states table falls
// back to the embedded copy when no path is set; the other tables are only
// loaded when a path is set, and their enrichment steps skip otherwise. A
// reference file that is missing or malformed fails construction
// (ErrReferenceLoad).
func NewPipeline(opts Options, lg *log.Logger) (*Pipeline, error) {
	p := &Pipeline{opts: opts, lg: logger(lg)}

	var e error
	if opts.StatesFile == "" {
		p.states, e = ref.DefaultStates()
	} else {
		p.states, e = ref.LoadStatesFile(opts.StatesFile)
	}
	if e != nil {
		return nil, e
	}

	if opts.AreasFile != "" {
		if p.areas, e = ref.LoadAreasFile(opts.AreasFile); e != nil {
			return nil, e
		}
	}

	if opts.EducationFile != "" {
		if p.education, e = ref.LoadEducationFile(opts.EducationFile); e != nil {
			return nil, e
		}
	}

	if opts.OccupationFile != "" {
		if p.occupations, e = ref.LoadOccupationsFile(opts.OccupationFile); e != nil {
			return nil, e
		}
	}

	return p, nil
}

// Run applies the whole pipeline and returns the enriched table. The input
// table is not modified. Fail-fast: the first structural error aborts.
func (p *Pipeline) Run(tbl *census.Table) (*census.Table, error) {
	ScanLabels(tbl, p.lg)

	out, e := NormalizeCategories(tbl, p.opts)
	if e != nil {
		return nil, e
	}

	if out, e = CleanAge(out, p.opts, p.lg); e != nil {
		return nil, e
	}

	if out, e = EnrichGeography(out, p.states, p.areas, p.opts, p.lg); e != nil {
		return nil, e
	}

	if out, e = EnrichEducation(out, p.education, p.opts, p.lg); e != nil {
		return nil, e
	}

	if out, e = EnrichOccupation(out, p.occupations, p.opts, p.lg); e != nil {
		return nil, e
	}

	return out, nil
}

// Silence returns a logger that drops everything -- handy for callers that
// want no diagnostics.
func Silence() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func logger(lg *log.Logger) *log.Logger {
	if lg == nil {
		return log.New(os.Stderr, "census: ", log.LstdFlags)
	}

	return lg
}
