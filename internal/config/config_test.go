package config

import (
	"errors"
	"math"
	"testing"

	"github.com/chawaici/Programs-for-Data-Analysis/internal/testutil"
	"github.com/chawaici/Programs-for-Data-Analysis/measure/peak"
	"gonum.org/v1/plot/vg"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	m, err := cfg.PeakMethod()
	if err != nil || m != peak.MethodHalfMax {
		t.Fatalf("PeakMethod = (%v, %v), want fwhm", m, err)
	}

	targets := cfg.Targets()
	if len(targets) != 2 || targets[0].Center != 500 || targets[0].Window != 30 ||
		targets[1].Center != 775 || targets[1].Window != 50 {
		t.Fatalf("unexpected targets: %+v", targets)
	}
}

func TestDefaultTargetsFollowMethod(t *testing.T) {
	tests := []struct {
		method string
		nir    float64
	}{
		{"fwhm", 775},
		{"max", 780},
		{"median", 775},
	}

	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			cfg := Default()
			cfg.Method = tc.method
			targets := cfg.Targets()
			if len(targets) != 2 || targets[0].Center != 500 || targets[1].Center != tc.nir || targets[1].Window != 50 {
				t.Fatalf("unexpected targets: %+v", targets)
			}
		})
	}
}

func TestConfiguredPeaksOverrideDefaults(t *testing.T) {
	cfg := Default()
	cfg.Method = "max"
	cfg.Peaks = []Peak{{Name: "green", Center: 532, Window: 10}}
	targets := cfg.Targets()
	if len(targets) != 1 || targets[0].Center != 532 {
		t.Fatalf("unexpected targets: %+v", targets)
	}
}

func TestLoadTOML(t *testing.T) {
	path := testutil.WriteTempFile(t, "run.toml", `
input = "sample.txt"
output = "sample.svg"
method = "max"
normalize = true

[range]
min = 400
max = 900

[[peaks]]
name = "green"
center = 532
window = 10

[plot]
tick_step = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.Input != "sample.txt" || cfg.Output != "sample.svg" || cfg.Method != "max" || !cfg.Normalize {
		t.Fatalf("unexpected scalars: %+v", cfg)
	}
	if cfg.Range.Min != 400 || cfg.Range.Max != 900 {
		t.Fatalf("unexpected range: %+v", *cfg.Range)
	}
	if len(cfg.Peaks) != 1 || cfg.Peaks[0] != (Peak{Name: "green", Center: 532, Window: 10}) {
		t.Fatalf("unexpected peaks: %+v", cfg.Peaks)
	}
	if cfg.Plot.TickStep != 50 || cfg.Plot.Width != 6.4 || cfg.Plot.Height != 4.8 {
		t.Fatalf("unexpected plot settings: %+v", cfg.Plot)
	}
}

func TestLoadYAML(t *testing.T) {
	path := testutil.WriteTempFile(t, "run.yaml", `
method: fwhm
peaks:
  - center: 650
    window: 25
  - name: nir
    center: 850
    window: 40
plot:
  width: 8
  height: 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.Input != "analysis.txt" || cfg.Output != "spectrum.png" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Range.Min != 300 || cfg.Range.Max != 1000 {
		t.Fatalf("default range not applied: %+v", *cfg.Range)
	}

	targets := cfg.Targets()
	if len(targets) != 2 || targets[0].Name != "650 nm" || targets[1].Name != "nir" {
		t.Fatalf("unexpected targets: %+v", targets)
	}

	st := cfg.Style()
	if st.Width != 8*vg.Inch || st.Height != 3*vg.Inch || st.XMin != 300 || st.XMax != 1000 {
		t.Fatalf("unexpected style: %+v", st)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(testutil.WriteTempFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	if _, err := Load(testutil.WriteTempFile(t, "bad.toml", "colour = \"red\"\n")); err == nil {
		t.Fatal("expected error for unknown TOML key")
	}
	if _, err := Load(testutil.WriteTempFile(t, "bad.yaml", "colour: red\n")); err == nil {
		t.Fatal("expected error for unknown YAML key")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(testutil.WriteTempFile(t, "run.json", "{}")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Load(t.TempDir() + "/missing.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"nil range", func(c *Config) { c.Range = nil }},
		{"empty range", func(c *Config) { c.Range = &Range{Min: 500, Max: 500} }},
		{"reversed range", func(c *Config) { c.Range = &Range{Min: 1000, Max: 300} }},
		{"nan range", func(c *Config) { c.Range = &Range{Min: math.NaN(), Max: 300} }},
		{"method", func(c *Config) { c.Method = "median" }},
		{"window", func(c *Config) { c.Peaks = []Peak{{Center: 500, Window: 0}} }},
		{"output", func(c *Config) { c.Output = "spectrum.txt" }},
		{"plot size", func(c *Config) { c.Plot.Width = -1 }},
		{"tick step", func(c *Config) { c.Plot.TickStep = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
