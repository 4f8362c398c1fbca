package atmosphere

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReferenceRow is one line of a PDAS-style standard atmosphere table
// (http://www.pdas.com/atmos.html). Only the columns the validation cares
// about are kept.
type ReferenceRow struct {
	AltKm float64 // geopotential altitude [km]
	Temp  float64 // temperature [K]
	Press float64 // pressure [Pa]
	Dens  float64 // density [kg/m3]
}

// """Loads a whitespace-delimited PDAS-style atmosphere table.
// Args:
//
//	r(io.Reader): table text; two header lines, then rows of
//	              [alt_km sigma delta theta temp_K press_Pa dens_kg_m3]
//
// Returns:
//
//	[]ReferenceRow: parsed rows, in file order
//
// """
func LoadReferenceTable(r io.Reader) ([]ReferenceRow, error) {
	sc := bufio.NewScanner(r)
	rows := []ReferenceRow{}
	line := 0
	for sc.Scan() {
		line++
		if line <= 2 {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 7 {
			return nil, fmt.Errorf("reference table line %d: want 7 columns, got %d", line, len(fields))
		}
		var row ReferenceRow
		var err error
		for _, col := range []struct {
			idx int
			dst *float64
		}{{0, &row.AltKm}, {4, &row.Temp}, {5, &row.Press}, {6, &row.Dens}} {
			*col.dst, err = strconv.ParseFloat(fields[col.idx], 64)
			if err != nil {
				return nil, fmt.Errorf("reference table line %d: %v", line, err)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// LookupReference returns the row at the given altitude [km], matching the
// way the table is indexed by its first column.
func LookupReference(rows []ReferenceRow, altKm float64) (ReferenceRow, bool) {
	for _, row := range rows {
		if row.AltKm == altKm {
			return row, true
		}
	}
	return ReferenceRow{}, false
}
