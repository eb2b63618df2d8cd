package iris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Process(t *testing.T) {
	s, err := NewSession(Polynomial{0, 0, -50, 150}, Iris1, DefaultConstants())
	require.NoError(t, err)

	res, err := s.Process(2.0)
	require.NoError(t, err)
	assert.Equal(t, Result{
		Voltage:       2.0,
		Reflectance:   50,
		SSA:           55.77,
		OpticalRadius: 0.05868044233082707,
	}, res)
}

func TestSession_ProcessAll(t *testing.T) {
	s, err := NewSession(Polynomial{0, 0, -50, 150}, Iris2, DefaultConstants())
	require.NoError(t, err)

	out, err := s.ProcessAll([]float64{2.0, 1.8})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 50.0, out[0].Reflectance)
	assert.Equal(t, 51.01, out[0].SSA)
	assert.Equal(t, 60.0, out[1].Reflectance)

	// 1.0 V maps to 100% reflectance.
	out, err = s.ProcessAll([]float64{2.0, 1.0, 1.8})
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Contains(t, err.Error(), "measurement 1")
	assert.Nil(t, out)
}

func TestNewSession_Invalid(t *testing.T) {
	_, err := NewSession(Polynomial{1, 2}, Iris1, DefaultConstants())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewSession(Polynomial{0, 0, -50, 150}, 0, DefaultConstants())
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

// TestSession_CopiesPolynomial verifies later edits to the caller's slice do not leak in.
func TestSession_CopiesPolynomial(t *testing.T) {
	p := Polynomial{0, 0, -50, 150}
	s, err := NewSession(p, Iris1, DefaultConstants())
	require.NoError(t, err)
	p[3] = 0

	res, err := s.Process(2.0)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Reflectance)
	assert.Equal(t, Polynomial{0, 0, -50, 150}, s.Polynomial())
	assert.Equal(t, Iris1, s.Version())
}
