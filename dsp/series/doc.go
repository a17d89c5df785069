// Package series holds sampled spectra as two parallel slices of wavelength
// and intensity values.
//
// A [Series] is usually produced by [Parse] or [ReadFile] from a plain-text
// export where every line ends in an "x y" pair, then narrowed to a region
// of interest with [Series.Crop]:
//
//	s, err := series.ReadFile("analysis.txt")
//	if err != nil {
//	    return err
//	}
//	s = s.Crop(300, 1000)
//
// All operations return new series and never modify the receiver.
package series
