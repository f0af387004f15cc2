// Package probe computes summary statistics of grayscale noise frames.
package probe

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/mjibson/go-dsp/fft"
)

type Stats struct {
	Mean     float64 // intensities normalized to [0, 1]
	StdDev   float64
	Min      float64
	Max      float64
	Flatness float64 // mean spectral flatness of the rows, 1 for white noise power spectra
}

func (s Stats) String() string {
	return fmt.Sprintf("mean=%.4f stddev=%.4f min=%.4f max=%.4f flatness=%.4f",
		s.Mean, s.StdDev, s.Min, s.Max, s.Flatness)
}

// ToGray converts img to an 8-bit grayscale image with its origin at (0, 0),
// weighting channels the way bild's Grayscale does. Gray input is returned
// unchanged.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	// Grayscale yields an RGBA image with equal R, G and B.
	rgba := effect.Grayscale(img)
	b := rgba.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := g.Pix[y*g.Stride:]
		for x := 0; x < b.Dx(); x++ {
			dst[x] = src[x*4]
		}
	}
	return g
}

// Analyze returns the intensity statistics of img and the average spectral
// flatness of its rows.
func Analyze(img *image.Gray) Stats {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return Stats{}
	}

	st := Stats{Min: 1, Max: 0}
	var sum, sumSq, flat float64
	row := make([]float64, w)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := float64(img.GrayAt(x, y).Y) / 255
			row[x-b.Min.X] = v
			sum += v
			sumSq += v * v
			st.Min = math.Min(st.Min, v)
			st.Max = math.Max(st.Max, v)
		}
		flat += SpectralFlatness(row)
	}

	n := float64(w * h)
	st.Mean = sum / n
	st.StdDev = math.Sqrt(math.Max(sumSq/n-st.Mean*st.Mean, 0))
	st.Flatness = flat / float64(h)
	return st
}

// SpectralFlatness is the ratio of the geometric to the arithmetic mean of
// the power spectrum of samples, DC excluded. It is 0 for constant signals
// and for signals with an empty bin.
func SpectralFlatness(samples []float64) float64 {
	if len(samples) < 4 || variance(samples) < 1e-12 {
		return 0
	}
	spectrum := fft.FFTReal(samples)
	bins := spectrum[1 : len(samples)/2+1]

	var logSum, sum float64
	for _, c := range bins {
		p := real(c)*real(c) + imag(c)*imag(c)
		if p == 0 {
			return 0
		}
		logSum += math.Log(p)
		sum += p
	}
	k := float64(len(bins))
	return math.Exp(logSum/k) / (sum / k)
}

func variance(samples []float64) float64 {
	var sum, sumSq float64
	for _, v := range samples {
		sum += v
		sumSq += v * v
	}
	n := float64(len(samples))
	mean := sum / n
	return sumSq/n - mean*mean
}
