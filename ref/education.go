package ref

import (
	"fmt"
	"io"

	"github.com/invertedv/census"
)

// Education is one row of the education-code reference table: the detailed
// IPUMS code, a simplified category, and a has-degree flag kept as the
// file's literal text.
type Education struct {
	Code       string
	Simplified string
	HasDegree  string
}

type EducationTable struct {
	rows []Education

	byCode map[string]int
}

const eduWhat = "education table"

func LoadEducation(r io.Reader) (*EducationTable, error) {
	var (
		idx  map[string]int
		recs [][]string
		err  error
	)
	if idx, recs, err = readTable(r, eduWhat); err != nil {
		return nil, err
	}

	et := &EducationTable{byCode: make(map[string]int)}

	for _, rec := range recs {
		var row Education
		if row.Code, err = field(idx, rec, "EDUCD", eduWhat); err != nil {
			return nil, err
		}
		if row.Simplified, err = field(idx, rec, "EDUC_SIMPLIFIED", eduWhat); err != nil {
			return nil, err
		}
		if row.HasDegree, err = field(idx, rec, "HAS_DEGREE", eduWhat); err != nil {
			return nil, err
		}

		if _, dup := et.byCode[row.Code]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate EDUCD %s", census.ErrReferenceLoad, eduWhat, row.Code)
		}

		et.byCode[row.Code] = len(et.rows)
		et.rows = append(et.rows, row)
	}

	return et, nil
}

func LoadEducationFile(path string) (*EducationTable, error) {
	return loadFile(path, LoadEducation)
}

func (et *EducationTable) Len() int {
	return len(et.rows)
}

func (et *EducationTable) ByCode(code string) (Education, bool) {
	ind, ok := et.byCode[code]
	if !ok {
		return Education{}, false
	}

	return et.rows[ind], true
}
