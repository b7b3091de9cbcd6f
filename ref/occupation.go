package ref

import (
	"fmt"
	"io"

	"github.com/invertedv/census"
)

// Occupation is one row of the occupation-code reference table. The file
// carries two further columns the pipeline never consumes.
type Occupation struct {
	Code  string
	Title string
}

type OccupationTable struct {
	rows []Occupation

	byCode map[string]int
}

const occWhat = "occupation table"

func LoadOccupations(r io.Reader) (*OccupationTable, error) {
	var (
		idx  map[string]int
		recs [][]string
		err  error
	)
	if idx, recs, err = readTable(r, occWhat); err != nil {
		return nil, err
	}

	ot := &OccupationTable{byCode: make(map[string]int)}

	for _, rec := range recs {
		var row Occupation
		if row.Code, err = field(idx, rec, "OCC", occWhat); err != nil {
			return nil, err
		}
		if row.Title, err = field(idx, rec, "OCC_TITLE", occWhat); err != nil {
			return nil, err
		}

		if _, dup := ot.byCode[row.Code]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate OCC %s", census.ErrReferenceLoad, occWhat, row.Code)
		}

		ot.byCode[row.Code] = len(ot.rows)
		ot.rows = append(ot.rows, row)
	}

	return ot, nil
}

func LoadOccupationsFile(path string) (*OccupationTable, error) {
	return loadFile(path, LoadOccupations)
}

func (ot *OccupationTable) Len() int {
	return len(ot.rows)
}

func (ot *OccupationTable) ByCode(code string) (Occupation, bool) {
	ind, ok := ot.byCode[code]
	if !ok {
		return Occupation{}, false
	}

	return ot.rows[ind], true
}
