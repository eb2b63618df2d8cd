package iris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := map[string]Version{
		"IRIS_1":   Iris1,
		"IRIS_2":   Iris2,
		"IRIS_3":   Iris3,
		" iris_3 ": Iris3,
		"2":        Iris2,
	}
	for tag, want := range tests {
		got, err := ParseVersion(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, got, tag)
	}

	for _, tag := range []string{"", "IRIS_4", "IRIS", "0", "IRIS-1"} {
		_, err := ParseVersion(tag)
		assert.ErrorIs(t, err, ErrUnknownVersion, tag)
	}
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "IRIS_1", Iris1.String())
	assert.Equal(t, "IRIS_3", Iris3.String())
	assert.Equal(t, "Version(9)", Version(9).String())
	assert.False(t, Version(0).Valid())
}

func TestVersion_Text(t *testing.T) {
	b, err := Iris2.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "IRIS_2", string(b))

	_, err = Version(0).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownVersion)

	var v Version
	require.NoError(t, v.UnmarshalText([]byte("IRIS_3")))
	assert.Equal(t, Iris3, v)
	assert.ErrorIs(t, v.UnmarshalText([]byte("IRIS_9")), ErrUnknownVersion)
}

func TestConstants_K0For(t *testing.T) {
	c := DefaultConstants()
	for v, want := range map[Version]float64{Iris1: 1.26, Iris2: 1.205, Iris3: 1.258} {
		k0, err := c.K0For(v)
		require.NoError(t, err)
		assert.Equal(t, want, k0)
	}
	_, err := c.K0For(0)
	assert.ErrorIs(t, err, ErrUnknownVersion)
}
