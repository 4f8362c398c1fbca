package atmosphere

import (
	"bytes"
	"strconv"
)

// Table holds atmosphere states evaluated at a list of altitudes, one value
// per column, aligned by index.
type Table struct {
	Height []float64 // geopotential altitude [m]
	Temp   []float64 // temperature [K]
	Press  []float64 // pressure [Pa]
	Dens   []float64 // density [kg/m3]
}

// CoesaTable evaluates the model at every altitude and collects the results.
func CoesaTable(alt []float64) (*Table, error) {
	h, t, p, rho, err := CoesaSlice(alt)
	if err != nil {
		return nil, err
	}
	return &Table{Height: h, Temp: t, Press: p, Dens: rho}, nil
}

// ToCSV writes the table to buf in CSV form, one row per altitude.
func (df *Table) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("height_m")
	buf.WriteString(",temperature_K")
	buf.WriteString(",pressure_Pa")
	buf.WriteString(",density_kg_m3")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(df.Height); i++ {
		buf.WriteString(strconv.FormatFloat(df.Height[i], 'f', -1, 64))
		writeFloat(df.Temp[i])
		writeFloat(df.Press[i])
		writeFloat(df.Dens[i])
		buf.WriteString("\n")
	}
}
