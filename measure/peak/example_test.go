package peak_test

import (
	"fmt"

	"github.com/chawaici/Programs-for-Data-Analysis/measure/peak"
)

func ExampleEstimate() {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	y := []float64{0, 0, 1, 3, 1, 0, 0}

	hm, ok := peak.Estimate(x, y, 3, 3)
	if !ok {
		fmt.Println("no samples in window")
		return
	}
	fmt.Printf("left=%.2f right=%.2f midpoint=%.2f half=%.1f\n", hm.Left, hm.Right, hm.Midpoint, hm.HalfHeight)

	// Output:
	// left=2.25 right=3.75 midpoint=3.00 half=1.5
}

func ExampleFind() {
	x := []float64{490, 495, 500, 505, 510}
	y := []float64{2, 6, 9, 9, 3}

	p, ok := peak.Find(x, y, 500, 10)
	fmt.Println(p.X, p.Y, ok)

	_, ok = peak.Find(x, y, 800, 10)
	fmt.Println(ok)

	// Output:
	// 500 9 true
	// false
}
