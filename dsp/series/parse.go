package series

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Parse reads whitespace-delimited text and returns one sample per usable
// line. The last two fields of a line are taken as X and Y, so exports with
// leading index or timestamp columns parse unchanged. Blank lines, lines with
// fewer than two fields and lines whose last two fields are not finite
// numbers are skipped. Line length is not limited.
func Parse(r io.Reader) (Series, error) {
	var s Series

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if x, y, ok := parseLine(line); ok {
			s.X = append(s.X, x)
			s.Y = append(s.Y, y)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Series{}, fmt.Errorf("series: read input: %w", err)
		}
	}
	return s, nil
}

// ReadFile opens path and parses it with [Parse].
func ReadFile(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("series: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseLine(line string) (x, y float64, ok bool) {
	fs := strings.Fields(line)
	if len(fs) < 2 {
		return 0, 0, false
	}
	x, err := strconv.ParseFloat(fs[len(fs)-2], 64)
	if err != nil {
		return 0, 0, false
	}
	y, err = strconv.ParseFloat(fs[len(fs)-1], 64)
	if err != nil {
		return 0, 0, false
	}
	if !finite(x) || !finite(y) {
		return 0, 0, false
	}
	return x, y, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
