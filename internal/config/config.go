// Package config loads analysis settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/chawaici/Programs-for-Data-Analysis/chart"
	"github.com/chawaici/Programs-for-Data-Analysis/measure/peak"
	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for config files that are neither TOML
	// nor YAML.
	ErrUnknownFormat = errors.New("unknown config format")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid configuration")
)

// Config describes one analysis run.
type Config struct {
	Input     string  `toml:"input,omitempty" yaml:"input,omitempty"`
	Output    string  `toml:"output,omitempty" yaml:"output,omitempty"`
	Method    string  `toml:"method,omitempty" yaml:"method,omitempty"`
	Normalize bool    `toml:"normalize,omitempty" yaml:"normalize,omitempty"`
	Range     *Range  `toml:"range,omitempty" yaml:"range,omitempty"`
	Peaks     []Peak  `toml:"peaks,omitempty" yaml:"peaks,omitempty"`
	Plot      PlotCfg `toml:"plot,omitempty" yaml:"plot,omitempty"`
}

// Range is the wavelength region kept for analysis and plotting.
type Range struct {
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`
}

// Peak is one search window.
type Peak struct {
	Name   string  `toml:"name,omitempty" yaml:"name,omitempty"`
	Center float64 `toml:"center" yaml:"center"`
	Window float64 `toml:"window" yaml:"window"`
}

// PlotCfg holds figure settings. Sizes are in inches.
type PlotCfg struct {
	Width    float64 `toml:"width,omitempty" yaml:"width,omitempty"`
	Height   float64 `toml:"height,omitempty" yaml:"height,omitempty"`
	TickStep float64 `toml:"tick_step,omitempty" yaml:"tick_step,omitempty"`
}

// Default returns the settings of the reference analysis: 300-1000 nm with
// half-maximum markers. Peaks is left empty so that [Config.Targets] picks
// the windows matching the method, see [DefaultPeaks].
func Default() Config {
	return Config{
		Input:  "analysis.txt",
		Output: "spectrum.png",
		Method: peak.MethodHalfMax.String(),
		Range:  &Range{Min: 300, Max: 1000},
		Plot:   PlotCfg{Width: 6.4, Height: 4.8, TickStep: 100},
	}
}

// DefaultPeaks returns the reference search windows for m. The visible
// window is 500+-30 nm for both methods; the near-infrared window is
// centered at 775 nm for half-maximum markers and at 780 nm for raw maxima.
func DefaultPeaks(m peak.Method) []Peak {
	nir := 775.0
	if m == peak.MethodMaximum {
		nir = 780
	}
	return []Peak{
		{Name: "visible", Center: 500, Window: 30},
		{Name: "near-infrared", Center: nir, Window: 50},
	}
}

// Load reads path and fills unset values from [Default]. The format is
// chosen by extension: .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration %s: %w", path, err)
	}

	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	d := Default()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Method == "" {
		c.Method = d.Method
	}
	if c.Range == nil {
		c.Range = d.Range
	}
	if c.Plot.Width == 0 {
		c.Plot.Width = d.Plot.Width
	}
	if c.Plot.Height == 0 {
		c.Plot.Height = d.Plot.Height
	}
	if c.Plot.TickStep == 0 {
		c.Plot.TickStep = d.Plot.TickStep
	}
	return c
}

// Validate checks the configuration for values the analysis cannot use.
func (c Config) Validate() error {
	if c.Range == nil {
		return fmt.Errorf("%w: range is not set", ErrInvalid)
	}
	if !isFinite(c.Range.Min) || !isFinite(c.Range.Max) || c.Range.Min >= c.Range.Max {
		return fmt.Errorf("%w: range must satisfy min < max: [%v, %v]", ErrInvalid, c.Range.Min, c.Range.Max)
	}
	if _, err := peak.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, t := range c.Targets() {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if err := chart.CheckFormat(c.Output); err != nil {
		return fmt.Errorf("%w: output: %w", ErrInvalid, err)
	}
	if !(c.Plot.Width > 0) || !(c.Plot.Height > 0) || !(c.Plot.TickStep > 0) {
		return fmt.Errorf("%w: plot width, height and tick_step must be > 0", ErrInvalid)
	}
	return nil
}

// PeakMethod returns the parsed marker method.
func (c Config) PeakMethod() (peak.Method, error) {
	return peak.ParseMethod(c.Method)
}

// Targets converts the configured windows. Unnamed windows are named after
// their center. Without configured windows the [DefaultPeaks] of the
// configured method are used.
func (c Config) Targets() []peak.Target {
	peaks := c.Peaks
	if len(peaks) == 0 {
		m, err := c.PeakMethod()
		if err != nil {
			m = peak.MethodHalfMax
		}
		peaks = DefaultPeaks(m)
	}

	out := make([]peak.Target, len(peaks))
	for i, p := range peaks {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("%g nm", p.Center)
		}
		out[i] = peak.Target{Name: name, Center: p.Center, Window: p.Window}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Style returns the chart style for this configuration.
func (c Config) Style() chart.Style {
	st := chart.DefaultStyle()
	if c.Range != nil {
		st.XMin, st.XMax = c.Range.Min, c.Range.Max
	}
	st.XTickStep = c.Plot.TickStep
	st.Width = vg.Length(c.Plot.Width) * vg.Inch
	st.Height = vg.Length(c.Plot.Height) * vg.Inch
	return st
}
