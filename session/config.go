// Package session reads IRIS measurement sessions and writes their results.
//
// A session file is YAML:
//
//	name: col-du-lac-2024-02-11
//	version: IRIS_2
//	calibration:
//	  - {standard: 99, voltage: 3.02}
//	  - {standard: 50, voltage: 1.71}
//	  ...
//
// Instead of calibration samples a session may carry a ready polynomial
// (highest degree first) under "polynomial".
package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"iris-go/iris"
)

// Sample is one calibration reading of a reflectance standard.
type Sample struct {
	Standard float64 `yaml:"standard"`
	Voltage  float64 `yaml:"voltage"`
}

// Config is the parsed session file.
type Config struct {
	Name        string          `yaml:"name"`
	Version     string          `yaml:"version"`
	Calibration []Sample        `yaml:"calibration,omitempty"`
	Polynomial  iris.Polynomial `yaml:"polynomial,omitempty"`
}

// LoadConfig reads and parses a session file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses a YAML session document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &cfg, nil
}

// Split returns the reflectance standards and voltages of the calibration samples.
func (c *Config) Split() (standards, voltages []float64) {
	standards = make([]float64, len(c.Calibration))
	voltages = make([]float64, len(c.Calibration))
	for i, s := range c.Calibration {
		standards[i] = s.Standard
		voltages[i] = s.Voltage
	}
	return standards, voltages
}

// Build resolves the instrument version, fits the calibration polynomial when
// samples are present and returns the ready Session. The report is zero when
// the polynomial came from the file.
func (c *Config) Build(consts iris.Constants) (*iris.Session, iris.FitReport, error) {
	var rep iris.FitReport
	version, err := iris.ParseVersion(c.Version)
	if err != nil {
		return nil, rep, err
	}

	poly := c.Polynomial
	switch {
	case len(c.Calibration) > 0 && len(c.Polynomial) > 0:
		return nil, rep, fmt.Errorf("%w: session has both calibration samples and a polynomial", iris.ErrInvalidInput)
	case len(c.Calibration) > 0:
		standards, voltages := c.Split()
		poly, rep, err = iris.FitWithReport(standards, voltages)
		if err != nil {
			return nil, rep, fmt.Errorf("calibration fit: %w", err)
		}
	case len(c.Polynomial) == 0:
		return nil, rep, fmt.Errorf("%w: session has no calibration samples", iris.ErrInvalidInput)
	}

	s, err := iris.NewSession(poly, version, consts)
	if err != nil {
		return nil, rep, err
	}
	return s, rep, nil
}
