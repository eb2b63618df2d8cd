package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iris-go/iris"
)

func TestReadMeasurements(t *testing.T) {
	in := "depth_cm,voltage\n# surface\n0, 2.0\n10,1.8\n"
	ms, err := ReadMeasurements(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Measurement{{Label: "0", Voltage: 2.0}, {Label: "10", Voltage: 1.8}}, ms)
	assert.Equal(t, []float64{2.0, 1.8}, Voltages(ms))
}

func TestReadMeasurements_SingleColumn(t *testing.T) {
	ms, err := ReadMeasurements(strings.NewReader("2.0\n1.5\n"))
	require.NoError(t, err)
	assert.Equal(t, []Measurement{{Voltage: 2.0}, {Voltage: 1.5}}, ms)
}

func TestReadMeasurements_Errors(t *testing.T) {
	_, err := ReadMeasurements(strings.NewReader("a,1.0\nb,oops\n"))
	assert.ErrorContains(t, err, "row 2")

	_, err = ReadMeasurements(strings.NewReader("A1,2.x\nA2,1.9\n"))
	assert.ErrorContains(t, err, "row 1")

	_, err = ReadMeasurements(strings.NewReader("a,1.0,extra\n"))
	assert.ErrorContains(t, err, "columns")
}

func TestWriteResults(t *testing.T) {
	s, err := iris.NewSession(iris.Polynomial{0, 0, -50, 150}, iris.Iris1, iris.DefaultConstants())
	require.NoError(t, err)
	ms := []Measurement{{Label: "top", Voltage: 2.0}}
	rs, err := s.ProcessAll(Voltages(ms))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, ms, rs))
	assert.Equal(t,
		"label,voltage,reflectance,ssa,optical_radius_mm\n"+
			"top,2,50.00,55.77,0.05868044233082707\n",
		buf.String())

	assert.Error(t, WriteResults(&buf, ms, nil))
}
