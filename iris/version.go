package iris

import (
	"fmt"
	"strings"
)

// Version identifies an IRIS instrument generation.
type Version int

// The zero Version is invalid so an unset field never resolves a k0.
const (
	Iris1 Version = iota + 1
	Iris2
	Iris3
)

func (v Version) String() string {
	switch v {
	case Iris1:
		return "IRIS_1"
	case Iris2:
		return "IRIS_2"
	case Iris3:
		return "IRIS_3"
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// Valid reports whether v is one of the known instrument versions.
func (v Version) Valid() bool {
	return v >= Iris1 && v <= Iris3
}

// ParseVersion maps a tag such as "IRIS_2" (or the shorthand "2") to a Version.
func ParseVersion(tag string) (Version, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "IRIS_1", "1":
		return Iris1, nil
	case "IRIS_2", "2":
		return Iris2, nil
	case "IRIS_3", "3":
		return Iris3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, tag)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(b []byte) error {
	parsed, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
