package session

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"iris-go/iris"
)

// Measurement is one voltage reading. Label is whatever identifies the
// reading in the export (a depth, a pit position); it may be empty.
type Measurement struct {
	Label   string
	Voltage float64
}

// ResultHeader is the header row written by WriteResults.
var ResultHeader = []string{"label", "voltage", "reflectance", "ssa", "optical_radius_mm"}

// ReadMeasurements parses rows of "voltage" or "label,voltage". A first row
// whose voltage column holds no digits is taken as a header and skipped.
func ReadMeasurements(r io.Reader) ([]Measurement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []Measurement
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read measurements: %w", err)
		}
		var label, raw string
		switch len(rec) {
		case 1:
			raw = rec[0]
		case 2:
			label, raw = strings.TrimSpace(rec[0]), rec[1]
		default:
			return nil, fmt.Errorf("measurements row %d: want 1 or 2 columns, got %d", row+1, len(rec))
		}
		raw = strings.TrimSpace(raw)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if row == 0 && !strings.ContainsAny(raw, "0123456789") {
				continue
			}
			return nil, fmt.Errorf("measurements row %d: %w", row+1, err)
		}
		out = append(out, Measurement{Label: label, Voltage: v})
	}
	return out, nil
}

// Voltages returns the voltage column of ms.
func Voltages(ms []Measurement) []float64 {
	out := make([]float64, len(ms))
	for i, m := range ms {
		out[i] = m.Voltage
	}
	return out
}

// WriteResults writes one row per result. Reflectance and SSA are written with
// two decimals; the optical radius keeps full precision.
func WriteResults(w io.Writer, ms []Measurement, rs []iris.Result) error {
	if len(ms) != len(rs) {
		return fmt.Errorf("write results: %d measurements for %d results", len(ms), len(rs))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ResultHeader); err != nil {
		return err
	}
	for i, r := range rs {
		row := []string{
			ms[i].Label,
			strconv.FormatFloat(r.Voltage, 'g', -1, 64),
			strconv.FormatFloat(r.Reflectance, 'f', 2, 64),
			strconv.FormatFloat(r.SSA, 'f', 2, 64),
			strconv.FormatFloat(r.OpticalRadius, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
