package ref

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/invertedv/census"
)

// the full state table ships with the package
//
//go:embed data/states.csv
var statesCSV []byte

// State is one row of the state reference table. Domestic is carried from
// the file but nothing in the pipeline consumes it.
type State struct {
	FIPS string
	Abbr string
	Name string

	Domestic bool
}

// StateTable maps state codes and names to states. Name-to-FIPS is a
// bijection: load fails if two rows share a folded name or a FIPS code.
type StateTable struct {
	rows []State

	byFIPS map[string]int
	byName map[string]int
}

const statesWhat = "states table"

func LoadStates(r io.Reader) (*StateTable, error) {
	var (
		idx  map[string]int
		recs [][]string
		err  error
	)
	if idx, recs, err = readTable(r, statesWhat); err != nil {
		return nil, err
	}

	st := &StateTable{
		byFIPS: make(map[string]int),
		byName: make(map[string]int),
	}

	for _, rec := range recs {
		var row State
		if row.FIPS, err = field(idx, rec, "STATEFIP", statesWhat); err != nil {
			return nil, err
		}
		if row.Abbr, err = field(idx, rec, "STUSAB", statesWhat); err != nil {
			return nil, err
		}
		if row.Name, err = field(idx, rec, "STATE_NAME", statesWhat); err != nil {
			return nil, err
		}

		var flag string
		if flag, err = field(idx, rec, "DOMESTIC", statesWhat); err != nil {
			return nil, err
		}
		if row.Domestic, err = strconv.ParseBool(flag); err != nil {
			return nil, fmt.Errorf("%w: %s: bad DOMESTIC value %q", census.ErrReferenceLoad, statesWhat, flag)
		}

		fips := canonFIPS(row.FIPS)
		if fips == "" {
			return nil, fmt.Errorf("%w: %s: non-numeric STATEFIP %q", census.ErrReferenceLoad, statesWhat, row.FIPS)
		}

		name := census.Fold(row.Name)
		if _, dup := st.byFIPS[fips]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate STATEFIP %s", census.ErrReferenceLoad, statesWhat, row.FIPS)
		}
		if _, dup := st.byName[name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate STATE_NAME %s", census.ErrReferenceLoad, statesWhat, row.Name)
		}

		st.byFIPS[fips] = len(st.rows)
		st.byName[name] = len(st.rows)
		st.rows = append(st.rows, row)
	}

	return st, nil
}

func LoadStatesFile(path string) (*StateTable, error) {
	return loadFile(path, LoadStates)
}

// DefaultStates returns the embedded state table.
func DefaultStates() (*StateTable, error) {
	return LoadStates(bytes.NewReader(statesCSV))
}

func (st *StateTable) Len() int {
	return len(st.rows)
}

// ByFIPS looks a state up by its numeric code. The match ignores leading
// zeros, so "6" and "06" both find California.
func (st *StateTable) ByFIPS(code string) (State, bool) {
	ind, ok := st.byFIPS[canonFIPS(code)]
	if !ok {
		return State{}, false
	}

	return st.rows[ind], true
}

// ByName looks a state up by folded name.
func (st *StateTable) ByName(name string) (State, bool) {
	ind, ok := st.byName[census.Fold(name)]
	if !ok {
		return State{}, false
	}

	return st.rows[ind], true
}

// canonFIPS strips spaces and leading zeros; returns "" if the code isn't
// purely numeric.
func canonFIPS(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}

	for _, c := range code {
		if c < '0' || c > '9' {
			return ""
		}
	}

	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" {
		return "0"
	}

	return trimmed
}
