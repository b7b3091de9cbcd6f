// Package ref loads the static reference tables the cleaning pipeline joins
// against: states, sub-state areas (PUMAs), education codes, occupation
// codes. Tables are read-only after load; key uniqueness is validated at
// load time so the joins never have to resolve a tie.
package ref

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/invertedv/census"
)

// readTable reads a headed CSV into a header-name index plus data rows.
// Lookups go by header name so a table may carry columns the pipeline never
// consumes.
func readTable(r io.Reader, what string) (idx map[string]int, rows [][]string, err error) {
	rdr := csv.NewReader(r)
	rdr.TrimLeadingSpace = true

	var recs [][]string
	if recs, err = rdr.ReadAll(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", census.ErrReferenceLoad, what, err)
	}

	if len(recs) < 2 {
		return nil, nil, fmt.Errorf("%w: %s: no data rows", census.ErrReferenceLoad, what)
	}

	idx = make(map[string]int)
	for ind, h := range recs[0] {
		idx[strings.TrimSpace(h)] = ind
	}

	return idx, recs[1:], nil
}

func field(idx map[string]int, row []string, colName, what string) (string, error) {
	ind, ok := idx[colName]
	if !ok {
		return "", fmt.Errorf("%w: %s: no %s column", census.ErrReferenceLoad, what, colName)
	}

	return strings.TrimSpace(row[ind]), nil
}

func loadFile[T any](path string, load func(io.Reader) (*T, error)) (*T, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("%w: %v", census.ErrReferenceLoad, e)
	}
	defer func() { _ = f.Close() }()

	return load(f)
}
