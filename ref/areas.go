package ref

import (
	"fmt"
	"io"
	"strconv"

	"github.com/invertedv/census"
)

// Area is one row of the sub-state area (PUMA) reference table. The file
// carries demographic columns beyond these three; they are not read.
type Area struct {
	GEOID    string
	Name     string
	LandSqMi float64
}

// AreaTable maps composite GEOID (state FIPS + zero-padded PUMA) to areas.
// Duplicate GEOIDs are a load error: the geography join must never fan out.
type AreaTable struct {
	rows []Area

	byGEOID map[string]int
}

const areasWhat = "areas table"

func LoadAreas(r io.Reader) (*AreaTable, error) {
	var (
		idx  map[string]int
		recs [][]string
		err  error
	)
	if idx, recs, err = readTable(r, areasWhat); err != nil {
		return nil, err
	}

	at := &AreaTable{byGEOID: make(map[string]int)}

	for _, rec := range recs {
		var row Area
		if row.GEOID, err = field(idx, rec, "GEOID", areasWhat); err != nil {
			return nil, err
		}
		if row.Name, err = field(idx, rec, "PUMA_NAME", areasWhat); err != nil {
			return nil, err
		}

		var sqmi string
		if sqmi, err = field(idx, rec, "LAND_SQMI", areasWhat); err != nil {
			return nil, err
		}
		if row.LandSqMi, err = strconv.ParseFloat(sqmi, 64); err != nil {
			return nil, fmt.Errorf("%w: %s: bad LAND_SQMI value %q", census.ErrReferenceLoad, areasWhat, sqmi)
		}

		if _, dup := at.byGEOID[row.GEOID]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate GEOID %s", census.ErrReferenceLoad, areasWhat, row.GEOID)
		}

		at.byGEOID[row.GEOID] = len(at.rows)
		at.rows = append(at.rows, row)
	}

	return at, nil
}

func LoadAreasFile(path string) (*AreaTable, error) {
	return loadFile(path, LoadAreas)
}

func (at *AreaTable) Len() int {
	return len(at.rows)
}

func (at *AreaTable) ByGEOID(key string) (Area, bool) {
	ind, ok := at.byGEOID[key]
	if !ok {
		return Area{}, false
	}

	return at.rows[ind], true
}
