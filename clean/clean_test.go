package clean

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/invertedv/census"
	"github.com/invertedv/census/ref"
	"github.com/stretchr/testify/assert"
)

func strCol(t *testing.T, name string, vals []string) *census.Column {
	c, e := census.NewColumn(vals, census.DTstring, census.ColName(name))
	assert.Nil(t, e)

	return c
}

func catCol(t *testing.T, name string, indexes []int, levels []string) *census.Column {
	v, e := census.NewCategoryVector(indexes, levels)
	assert.Nil(t, e)

	c, e := census.NewColumn(v, census.DTcategory, census.ColName(name))
	assert.Nil(t, e)

	return c
}

func mustTable(t *testing.T, cols ...*census.Column) *census.Table {
	tbl, e := census.NewTable(cols...)
	assert.Nil(t, e)

	return tbl
}

func capture() (*bytes.Buffer, *log.Logger) {
	b := &bytes.Buffer{}
	return b, log.New(b, "", 0)
}

func caStates(t *testing.T) *ref.StateTable {
	const data = `STATEFIP,STUSAB,STATE_NAME,DOMESTIC
06,CA,California,true
48,TX,Texas,true
`
	st, e := ref.LoadStates(strings.NewReader(data))
	assert.Nil(t, e)

	return st
}

func testAreas(t *testing.T) *ref.AreaTable {
	at, e := ref.LoadAreasFile("testdata/areas.csv")
	assert.Nil(t, e)

	return at
}

// ***************** scanner *****************

func TestScanLabels(t *testing.T) {
	// level 1 folds to level 0's label; no row carries it
	tbl := mustTable(t,
		catCol(t, "GQ", []int{0, 2, 0}, []string{"Households", "households", "Group quarters"}),
		strCol(t, "NOTE", []string{"x", "y", "z"}))

	b, lg := capture()
	ScanLabels(tbl, lg)

	out := b.String()
	assert.Contains(t, out, "column GQ")
	assert.Contains(t, out, "level 1 duplicates level 0")
	assert.Contains(t, out, `"households"`)
	assert.Contains(t, out, "0 rows")
	assert.Contains(t, out, "inert")

	// the table is untouched
	assert.Equal(t, census.DTcategory, tbl.Column("GQ").DataType())
}

func TestScanLabelsFirstOnly(t *testing.T) {
	// two duplicate pairs; only the first is reported
	tbl := mustTable(t,
		catCol(t, "C", []int{0, 1, 2, 3}, []string{"a", "A", "b", "B"}))

	b, lg := capture()
	ScanLabels(tbl, lg)

	assert.Equal(t, 1, strings.Count(b.String(), "duplicates level"))
	assert.Contains(t, b.String(), "level 1 duplicates level 0")
	// level 1 is carried by one row, so no inert note
	assert.NotContains(t, b.String(), "inert")
}

func TestScanLabelsClean(t *testing.T) {
	tbl := mustTable(t,
		catCol(t, "SEX", []int{0, 1}, []string{"Male", "Female"}))

	b, lg := capture()
	ScanLabels(tbl, lg)
	assert.Equal(t, "", b.String())
}

// ***************** normalizer *****************

func TestNormalizeCategories(t *testing.T) {
	tbl := mustTable(t,
		catCol(t, "YEAR", []int{0, 0, 1}, []string{"2010", "2011"}),
		catCol(t, "SEX", []int{0, 1, 1}, []string{"Male", "Female"}),
		strCol(t, "NOTE", []string{"a", "b", "c"}))

	out, e := NormalizeCategories(tbl, DefaultOptions())
	assert.Nil(t, e)

	assert.Equal(t, census.DTint, out.Column("YEAR").DataType())
	assert.Equal(t, []int{2010, 2010, 2011}, out.Column("YEAR").Data().AsInt())

	assert.Equal(t, census.DTstring, out.Column("SEX").DataType())
	assert.Equal(t, []string{"Male", "Female", "Female"}, out.Column("SEX").Data().AsString())

	// untouched column and untouched input
	assert.Equal(t, census.DTstring, out.Column("NOTE").DataType())
	assert.Equal(t, census.DTcategory, tbl.Column("SEX").DataType())

	// idempotent: a second pass is a no-op
	out2, e := NormalizeCategories(out, DefaultOptions())
	assert.Nil(t, e)
	assert.Equal(t, out.ColumnNames(), out2.ColumnNames())
	assert.Equal(t, out.Column("YEAR").Data().AsInt(), out2.Column("YEAR").Data().AsInt())
	assert.Equal(t, out.Column("SEX").Data().AsString(), out2.Column("SEX").Data().AsString())
}

func TestNormalizeCategoriesErrors(t *testing.T) {
	noYear := mustTable(t, strCol(t, "NOTE", []string{"a"}))
	_, e := NormalizeCategories(noYear, DefaultOptions())
	assert.ErrorIs(t, e, census.ErrMissingColumn)

	badYear := mustTable(t, catCol(t, "YEAR", []int{0}, []string{"twenty-ten"}))
	_, e = NormalizeCategories(badYear, DefaultOptions())
	assert.ErrorIs(t, e, census.ErrTypeMismatch)
}

// ***************** age *****************

func TestCleanAge(t *testing.T) {
	tbl := mustTable(t,
		strCol(t, "AGE", []string{"Less than 1 year old", "35", "90 (90+ in 1980 and 1990)"}))

	out, e := CleanAge(tbl, DefaultOptions(), Silence())
	assert.Nil(t, e)
	assert.Equal(t, census.DTint, out.Column("AGE").DataType())
	assert.Equal(t, []int{0, 35, 90}, out.Column("AGE").Data().AsInt())

	// input untouched
	assert.Equal(t, census.DTstring, tbl.Column("AGE").DataType())
}

func TestCleanAgeCategory(t *testing.T) {
	tbl := mustTable(t,
		catCol(t, "AGE", []int{1, 0, 2}, []string{"Less than 1 year old", "35", "90 (90+ in 1980 and 1990)"}))

	out, e := CleanAge(tbl, DefaultOptions(), Silence())
	assert.Nil(t, e)
	assert.Equal(t, []int{35, 0, 90}, out.Column("AGE").Data().AsInt())
}

func TestCleanAgeGate(t *testing.T) {
	tbl := mustTable(t, strCol(t, "NOTE", []string{"a"}))

	b, lg := capture()
	out, e := CleanAge(tbl, DefaultOptions(), lg)
	assert.Nil(t, e)
	assert.Same(t, tbl, out)
	assert.Contains(t, b.String(), "skipping age")
}

func TestCleanAgeBadValue(t *testing.T) {
	tbl := mustTable(t, strCol(t, "AGE", []string{"35", "unknown"}))

	_, e := CleanAge(tbl, DefaultOptions(), Silence())
	assert.ErrorIs(t, e, census.ErrTypeMismatch)
}

// ***************** geography *****************

func TestEnrichGeographyStates(t *testing.T) {
	tbl := mustTable(t,
		strCol(t, "STATEFIP", []string{"06", "48", "99"}),
		strCol(t, "NOTE", []string{"a", "b", "c"}))

	out, e := EnrichGeography(tbl, caStates(t), nil, DefaultOptions(), Silence())
	assert.Nil(t, e)

	// state column replaced in place, two columns appended
	assert.Equal(t, []string{"STATE_NAME", "NOTE", "STATE_ABBR", "STATE_FIPS"}, out.ColumnNames())
	assert.Equal(t, []string{"California", "Texas", "99"}, out.Column(ColStateName).Data().AsString())
	assert.Equal(t, []string{"CA", "TX", ""}, out.Column(ColStateAbbr).Data().AsString())
	assert.Equal(t, []string{"06", "48", ""}, out.Column(ColStateFIPS).Data().AsString())

	// no rows dropped in step 1
	assert.Equal(t, 3, out.RowCount())
}

func TestEnrichGeographyStateLabels(t *testing.T) {
	// a categorical state column matches on its labels, folded
	tbl := mustTable(t,
		catCol(t, "STATEFIP", []int{0, 1}, []string{"california", "TEXAS"}))

	out, e := EnrichGeography(tbl, caStates(t), nil, DefaultOptions(), Silence())
	assert.Nil(t, e)
	assert.Equal(t, []string{"California", "Texas"}, out.Column(ColStateName).Data().AsString())
	assert.Equal(t, []string{"06", "48"}, out.Column(ColStateFIPS).Data().AsString())
}

func TestEnrichGeographyAreas(t *testing.T) {
	tbl := mustTable(t,
		strCol(t, "STATEFIP", []string{"06", "06", "48", "06"}),
		strCol(t, "PUMA", []string{"1", "2", "100", "9999"}),
		strCol(t, "ID", []string{"r1", "r2", "r3", "r4"}))

	out, e := EnrichGeography(tbl, caStates(t), testAreas(t), DefaultOptions(), Silence())
	assert.Nil(t, e)

	// composite keys 0600001, 0600002, 4800100 match; 0609999 is dropped
	assert.Equal(t, 3, out.RowCount())
	assert.Equal(t, []string{"r1", "r2", "r3"}, out.Column("ID").Data().AsString())
	assert.Equal(t, []string{"Alameda County (North)", "Alameda County (South)", "Austin City (West)"},
		out.Column(ColAreaName).Data().AsString())
	assert.Equal(t, []float64{42.5, 55.1, 101.25}, out.Column(ColAreaSqMi).Data().AsFloat())

	// input untouched
	assert.Equal(t, 4, tbl.RowCount())
}

func TestEnrichGeographyAreaOnly(t *testing.T) {
	// STATE_FIPS already present from an earlier run: skip straight to the join
	tbl := mustTable(t,
		strCol(t, "STATE_FIPS", []string{"06", "48"}),
		strCol(t, "PUMA", []string{"2", "100"}))

	out, e := EnrichGeography(tbl, caStates(t), testAreas(t), DefaultOptions(), Silence())
	assert.Nil(t, e)
	assert.Equal(t, 2, out.RowCount())
	assert.Equal(t, []string{"Alameda County (South)", "Austin City (West)"},
		out.Column(ColAreaName).Data().AsString())
}

func TestEnrichGeographyFormatError(t *testing.T) {
	tbl := mustTable(t,
		strCol(t, "STATEFIP", []string{"06"}),
		strCol(t, "PUMA", []string{"12A"}))

	_, e := EnrichGeography(tbl, caStates(t), testAreas(t), DefaultOptions(), Silence())
	assert.ErrorIs(t, e, census.ErrFormat)
}

func TestEnrichGeographyGates(t *testing.T) {
	// neither state column nor STATE_FIPS: unchanged, skip logged
	tbl := mustTable(t, strCol(t, "NOTE", []string{"a"}))

	b, lg := capture()
	out, e := EnrichGeography(tbl, caStates(t), nil, DefaultOptions(), lg)
	assert.Nil(t, e)
	assert.Same(t, tbl, out)
	assert.Contains(t, b.String(), "skipping geography")

	// state present, no area column: step 1 only
	tbl2 := mustTable(t, strCol(t, "STATEFIP", []string{"06"}))
	b2, lg2 := capture()
	out2, e := EnrichGeography(tbl2, caStates(t), testAreas(t), DefaultOptions(), lg2)
	assert.Nil(t, e)
	assert.Equal(t, 1, out2.RowCount())
	assert.True(t, out2.HasColumn(ColStateFIPS))
	assert.False(t, out2.HasColumn(ColAreaName))
	assert.Contains(t, b2.String(), "skipping area")
}

// ***************** education *****************

func TestEnrichEducation(t *testing.T) {
	et, e := ref.LoadEducationFile("testdata/education.csv")
	assert.Nil(t, e)

	tbl := mustTable(t,
		strCol(t, "EDUCD", []string{"001", "101", "999"}))

	out, ex := EnrichEducation(tbl, et, DefaultOptions(), Silence())
	assert.Nil(t, ex)

	// every row survives; unmatched rows keep empty strings
	assert.Equal(t, 3, out.RowCount())
	assert.Equal(t, []string{"No schooling", "Bachelor's degree", ""},
		out.Column(ColEducSimplified).Data().AsString())
	assert.Equal(t, []string{"N", "Y", ""},
		out.Column(ColEducHasDegree).Data().AsString())
}

func TestEnrichEducationGate(t *testing.T) {
	tbl := mustTable(t, strCol(t, "NOTE", []string{"a"}))

	b, lg := capture()
	out, e := EnrichEducation(tbl, nil, DefaultOptions(), lg)
	assert.Nil(t, e)
	assert.Same(t, tbl, out)
	assert.Contains(t, b.String(), "skipping education")
}

// ***************** occupation *****************

func TestEnrichOccupation(t *testing.T) {
	ot, e := ref.LoadOccupationsFile("testdata/occupation.csv")
	assert.Nil(t, e)

	tbl := mustTable(t,
		strCol(t, "OCC", []string{"3255", "0000", "0010"}))

	out, ex := EnrichOccupation(tbl, ot, DefaultOptions(), Silence())
	assert.Nil(t, ex)
	assert.Equal(t, 3, out.RowCount())
	assert.Equal(t, []string{"Registered nurses", "", "Chief executives and legislators"},
		out.Column(ColOccTitle).Data().AsString())
}

func TestEnrichOccupationGate(t *testing.T) {
	tbl := mustTable(t, strCol(t, "NOTE", []string{"a"}))

	out, e := EnrichOccupation(tbl, nil, DefaultOptions(), Silence())
	assert.Nil(t, e)
	assert.Same(t, tbl, out)
}

// ***************** options *****************

func TestOptionsFromFile(t *testing.T) {
	opts, e := OptionsFromFile("testdata/options.yaml")
	assert.Nil(t, e)

	// file sets the reference paths, defaults fill the column names
	assert.Equal(t, "testdata/areas.csv", opts.AreasFile)
	assert.Equal(t, "YEAR", opts.Year)
	assert.Equal(t, "STATEFIP", opts.State)

	_, e = OptionsFromFile("no/such/options.yaml")
	assert.NotNil(t, e)
}

// ***************** pipeline *****************

func TestPipelineRun(t *testing.T) {
	opts, e := OptionsFromFile("testdata/options.yaml")
	assert.Nil(t, e)

	p, e := NewPipeline(opts, Silence())
	assert.Nil(t, e)

	tbl := mustTable(t,
		catCol(t, "YEAR", []int{0, 0, 0}, []string{"2010"}),
		strCol(t, "AGE", []string{"Less than 1 year old", "35", "90 (90+ in 1980 and 1990)"}),
		strCol(t, "STATEFIP", []string{"06", "06", "48"}),
		strCol(t, "PUMA", []string{"1", "2", "100"}),
		strCol(t, "EDUCD", []string{"001", "101", "999"}),
		strCol(t, "OCC", []string{"0010", "9999", "3255"}))

	out, e := p.Run(tbl)
	assert.Nil(t, e)

	assert.Equal(t, 3, out.RowCount())
	assert.Equal(t, []int{2010, 2010, 2010}, out.Column("YEAR").Data().AsInt())
	assert.Equal(t, []int{0, 35, 90}, out.Column("AGE").Data().AsInt())
	assert.Equal(t, []string{"California", "California", "Texas"}, out.Column(ColStateName).Data().AsString())
	assert.Equal(t, []float64{42.5, 55.1, 101.25}, out.Column(ColAreaSqMi).Data().AsFloat())
	assert.Equal(t, []string{"No schooling", "Bachelor's degree", ""}, out.Column(ColEducSimplified).Data().AsString())
	assert.Equal(t, []string{"Chief executives and legislators", "", "Registered nurses"}, out.Column(ColOccTitle).Data().AsString())

	// the input table came through untouched
	assert.Equal(t, census.DTcategory, tbl.Column("YEAR").DataType())
	assert.True(t, tbl.HasColumn("STATEFIP"))
}

func TestPipelineDefaultStates(t *testing.T) {
	// no reference paths at all: embedded states, everything else skips
	p, e := NewPipeline(DefaultOptions(), Silence())
	assert.Nil(t, e)

	tbl := mustTable(t,
		catCol(t, "YEAR", []int{0}, []string{"2019"}),
		strCol(t, "STATEFIP", []string{"56"}))

	out, ex := p.Run(tbl)
	assert.Nil(t, ex)
	assert.Equal(t, []string{"Wyoming"}, out.Column(ColStateName).Data().AsString())
}

func TestPipelineBadReference(t *testing.T) {
	opts := DefaultOptions()
	opts.AreasFile = "no/such/areas.csv"

	_, e := NewPipeline(opts, Silence())
	assert.ErrorIs(t, e, census.ErrReferenceLoad)
}
