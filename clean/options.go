package clean

import (
	"fmt"
	"os"

	"github.com/invertedv/census"
	"gopkg.in/yaml.v3"
)

// Names of the columns the pipeline derives.
const (
	ColStateName = "STATE_NAME"
	ColStateAbbr = "STATE_ABBR"
	ColStateFIPS = "STATE_FIPS"

	ColAreaName = "PUMA_NAME"
	ColAreaSqMi = "PUMA_SQMI"

	ColEducSimplified = "EDUC_SIMPLIFIED"
	ColEducHasDegree  = "EDUC_HAS_DEGREE"

	ColOccTitle = "OCC_TITLE"
)

// Options names the input columns and the reference files. Zero values fall
// back to the defaults; a reference path left empty means that enrichment is
// skipped (the states table falls back to the embedded copy instead).
type Options struct {
	Year       string `yaml:"year"`
	Age        string `yaml:"age"`
	State      string `yaml:"state"`
	Area       string `yaml:"area"`
	Education  string `yaml:"education"`
	Occupation string `yaml:"occupation"`

	StatesFile     string `yaml:"statesFile"`
	AreasFile      string `yaml:"areasFile"`
	EducationFile  string `yaml:"educationFile"`
	OccupationFile string `yaml:"occupationFile"`
}

// DefaultOptions returns the standard IPUMS column names.
func DefaultOptions() Options {
	return Options{
		Year:       "YEAR",
		Age:        "AGE",
		State:      "STATEFIP",
		Area:       "PUMA",
		Education:  "EDUCD",
		Occupation: "OCC",
	}
}

// OptionsFromFile reads a YAML options file over the defaults: fields the
// file omits keep their default values.
func OptionsFromFile(path string) (Options, error) {
	opts := DefaultOptions()

	data, e := os.ReadFile(path)
	if e != nil {
		return opts, fmt.Errorf("options file: %w", e)
	}

	if e = yaml.Unmarshal(data, &opts); e != nil {
		return opts, fmt.Errorf("options file: %w", e)
	}

	return opts, nil
}

// require returns the named column or a wrapped ErrMissingColumn.
func require(tbl *census.Table, colName string) (*census.Column, error) {
	col := tbl.Column(colName)
	if col == nil {
		return nil, fmt.Errorf("%w: %s", census.ErrMissingColumn, colName)
	}

	return col, nil
}
