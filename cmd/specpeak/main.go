// Command specpeak plots a wavelength/intensity spectrum and marks the
// peaks found in configured search windows.
//
// Usage:
//
//	specpeak [flags] [data-file]
//
// The data file holds one sample per line; the last two whitespace
// separated fields are taken as wavelength and intensity, other lines are
// ignored. Without a config file the reference analysis is run: samples
// between 300 and 1000 nm, half-maximum midpoints near 500 nm (+-30) and
// 775 nm (+-50), chart written to spectrum.png. With -method max the
// near-infrared window is centered at 780 nm instead.
//
// Examples:
//
//	specpeak analysis.txt
//	specpeak -method max -o peaks.pdf analysis.txt
//	specpeak -config run.toml
//	specpeak -roi-min 400 -roi-max 900 -normalize sample.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chawaici/Programs-for-Data-Analysis/chart"
	"github.com/chawaici/Programs-for-Data-Analysis/dsp/series"
	"github.com/chawaici/Programs-for-Data-Analysis/internal/config"
	"github.com/chawaici/Programs-for-Data-Analysis/internal/log"
	"github.com/chawaici/Programs-for-Data-Analysis/measure/peak"
	"github.com/chawaici/Programs-for-Data-Analysis/stats/spectral"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configFile string
	method     string
	output     string
	roiMin     float64
	roiMax     float64
	normalize  bool
	verbose    bool
	noColor    bool
}

func parseFlags(args []string, stderr io.Writer) (options, []string, map[string]bool, error) {
	var o options

	fs := flag.NewFlagSet("specpeak", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configFile, "config", "", "TOML or YAML configuration file")
	fs.StringVar(&o.method, "method", "", "peak marker method: fwhm or max")
	fs.StringVar(&o.output, "o", "", "output image (png, svg, pdf, ...)")
	fs.Float64Var(&o.roiMin, "roi-min", math.NaN(), "lower wavelength limit")
	fs.Float64Var(&o.roiMax, "roi-max", math.NaN(), "upper wavelength limit")
	fs.BoolVar(&o.normalize, "normalize", false, "scale intensities to a peak of 1")
	fs.BoolVar(&o.verbose, "v", false, "verbose (debug) logging")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: specpeak [flags] [data-file]\n\n")
		fmt.Fprintf(stderr, "Plots a spectrum and marks peaks inside configured search windows.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  specpeak analysis.txt\n")
		fmt.Fprintf(stderr, "  specpeak -method max -o peaks.pdf analysis.txt\n")
		fmt.Fprintf(stderr, "  specpeak -config run.toml\n")
	}
	if err := fs.Parse(args); err != nil {
		return o, nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, fs.Args(), set, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, rest, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(rest) > 1 {
		fmt.Fprintf(stderr, "error: expected at most one data file, got %d\n", len(rest))
		return 2
	}
	if o.noColor {
		color.NoColor = true
	}

	logger := log.New(stderr, o.verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(o, rest, set)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return 1
	}

	if err := analyze(cfg, stdout, logger); err != nil {
		logger.Error("analysis failed", zap.Error(err))
		return 1
	}
	return 0
}

func loadConfig(o options, rest []string, set map[string]bool) (config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		cfg, err = config.Load(o.configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	if len(rest) == 1 {
		cfg.Input = rest[0]
	}
	if set["method"] {
		cfg.Method = o.method
	}
	if set["o"] {
		cfg.Output = o.output
	}
	if set["roi-min"] || set["roi-max"] {
		r := *cfg.Range
		if set["roi-min"] {
			r.Min = o.roiMin
		}
		if set["roi-max"] {
			r.Max = o.roiMax
		}
		cfg.Range = &r
	}
	if set["normalize"] {
		cfg.Normalize = o.normalize
	}

	return cfg, cfg.Validate()
}

func analyze(cfg config.Config, stdout io.Writer, logger *zap.Logger) error {
	method, err := cfg.PeakMethod()
	if err != nil {
		return err
	}

	s, err := series.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug("read spectrum", zap.String("file", cfg.Input), zap.Int("samples", s.Len()))

	s = s.Crop(cfg.Range.Min, cfg.Range.Max)
	if s.Len() == 0 {
		logger.Warn("no samples inside range",
			zap.Float64("min", cfg.Range.Min), zap.Float64("max", cfg.Range.Max))
	}

	if cfg.Normalize {
		ns, err := s.Normalize()
		if err != nil {
			logger.Warn("intensities left unscaled", zap.Error(err))
		} else {
			s = ns
		}
	}

	markers, missing := peak.LocateAll(s, cfg.Targets(), method)
	for _, t := range missing {
		logger.Warn("no samples in search window",
			zap.String("target", t.Name),
			zap.Float64("center", t.Center),
			zap.Float64("window", t.Window))
	}
	for _, m := range markers {
		logger.Debug("located peak",
			zap.String("target", m.Target.Name),
			zap.Stringer("method", m.Method),
			zap.Float64("x", m.X),
			zap.Float64("peak_x", m.Peak.X),
			zap.Float64("peak_y", m.Peak.Y))
	}

	st := spectral.Calculate(s)
	if err := printReport(stdout, st, markers, missing); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	style := cfg.Style()
	p, err := chart.Render(s, markers, style)
	if err != nil {
		return err
	}
	if err := chart.Save(p, cfg.Output, style); err != nil {
		return err
	}
	logger.Info("wrote chart", zap.String("file", cfg.Output), zap.Int("markers", len(markers)))
	return nil
}
