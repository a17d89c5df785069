package series

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/chawaici/Programs-for-Data-Analysis/internal/testutil"
)

func TestNewPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched lengths")
		}
	}()
	_ = New([]float64{1, 2}, []float64{1})
}

func TestCropKeepsClosedInterval(t *testing.T) {
	s := New(
		[]float64{250, 300, 450, 1000, 1001},
		[]float64{1, 2, 3, 4, 5},
	)

	got := s.Crop(300, 1000)
	testutil.RequireSliceNearlyEqual(t, got.X, []float64{300, 450, 1000}, 0)
	testutil.RequireSliceNearlyEqual(t, got.Y, []float64{2, 3, 4}, 0)

	if s.Len() != 5 {
		t.Fatalf("Crop modified receiver: len=%d", s.Len())
	}
}

func TestCropEmpty(t *testing.T) {
	s := New([]float64{1, 2, 3}, []float64{1, 2, 3})

	got := s.Crop(10, 20)
	if got.Len() != 0 {
		t.Fatalf("expected empty series, got %d samples", got.Len())
	}
}

func TestWindow(t *testing.T) {
	s := New(
		[]float64{0, 1, 2, 3, 4, 5, 6},
		[]float64{0, 0, 1, 3, 1, 0, 0},
	)

	got := s.Window(3, 1)
	testutil.RequireSliceNearlyEqual(t, got.X, []float64{2, 3, 4}, 0)
	testutil.RequireSliceNearlyEqual(t, got.Y, []float64{1, 3, 1}, 0)
}

func TestBoundsAndRange(t *testing.T) {
	if _, _, ok := (Series{}).Bounds(); ok {
		t.Fatal("Bounds of empty series reported ok")
	}
	if _, _, ok := (Series{}).Range(); ok {
		t.Fatal("Range of empty series reported ok")
	}

	s := New([]float64{400, 500, 600}, []float64{-2, 7, 3})

	lo, hi, ok := s.Bounds()
	if !ok || lo != 400 || hi != 600 {
		t.Fatalf("Bounds = (%v, %v, %v), want (400, 600, true)", lo, hi, ok)
	}

	lo, hi, ok = s.Range()
	if !ok || lo != -2 || hi != 7 {
		t.Fatalf("Range = (%v, %v, %v), want (-2, 7, true)", lo, hi, ok)
	}
}

func TestNormalize(t *testing.T) {
	s := New([]float64{1, 2, 3}, []float64{2, -8, 4})

	got, err := s.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Y, []float64{0.25, -1, 0.5}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, got.X, s.X, 0)

	if s.Y[1] != -8 {
		t.Fatalf("Normalize modified receiver: %v", s.Y)
	}
}

func TestNormalizeIgnoresScale(t *testing.T) {
	x := testutil.Grid(400, 1, 201)
	y := testutil.Gaussian(x, 500, 30, 4, 0.5)
	scaled := make([]float64, len(y))
	for i, v := range y {
		scaled[i] = 250 * v
	}

	a, err := New(x, y).Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	b, err := New(x, scaled).Normalize()
	if err != nil {
		t.Fatalf("Normalize scaled: %v", err)
	}

	d, err := testutil.MaxAbsDiff(a.Y, b.Y)
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if d > 1e-12 {
		t.Fatalf("normalized series differ by %v", d)
	}
}

func TestNormalizeErrors(t *testing.T) {
	if _, err := (Series{}).Normalize(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty series: got %v, want ErrEmpty", err)
	}

	s := New([]float64{1, 2}, []float64{0, 0})
	if _, err := s.Normalize(); !errors.Is(err, ErrZeroPeak) {
		t.Fatalf("zero series: got %v, want ErrZeroPeak", err)
	}
}

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"# exported by spectrometer",
		"",
		"1 300.5 12.0",
		"2\t301.0\t13.5",
		"bad line here",
		"3 302.0 NaNx",
		"single",
		"   303.5    1e2   ",
		"500 nan",
		"510 +Inf",
		"NaN 2",
		"-inf 3",
		"2024-01-01 12:00:00 304.0 -1.25",
	}, "\n")

	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, s.X, []float64{300.5, 301.0, 303.5, 304.0}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Y, []float64{12.0, 13.5, 100, -1.25}, 0)
}

func TestParseLongLine(t *testing.T) {
	long := strings.Repeat("0 ", 100000) + "600 7"
	input := "500 1\n" + long + "\n700 2"

	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s.X, []float64{500, 600, 700}, 0)
	testutil.RequireSliceNearlyEqual(t, s.Y, []float64{1, 7, 2}, 0)
}

func TestParseReadError(t *testing.T) {
	errRead := errors.New("device unplugged")
	_, err := Parse(io.MultiReader(strings.NewReader("500 1\n"), iotest.ErrReader(errRead)))
	if !errors.Is(err, errRead) {
		t.Fatalf("got %v, want wrapped read error", err)
	}
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected no samples, got %d", s.Len())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(t.TempDir() + "/missing.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFile(t *testing.T) {
	path := testutil.WriteTempFile(t, "analysis.txt", "400 1\n500 3\n600 2\n")

	s, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if s.Len() != 3 || s.Y[1] != 3 {
		t.Fatalf("unexpected series: %+v", s)
	}
}
