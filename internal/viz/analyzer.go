package viz

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Analyzer turns raw PCM into the fixed-resolution byte magnitude spectrum
// the sampler consumes. The capture (or demo) callback pushes samples from
// the audio thread; the frame loop calls Frame once per rendered frame.
// Bytes follow the classic analyser contract: linear magnitudes smoothed
// across frames, then a [SpectrumMinDB, SpectrumMaxDB] dB range mapped
// onto 0..255.
type Analyzer struct {
	mu     sync.Mutex
	ring   [FFTSize]float64
	w      int
	filled int

	plan *algofft.Plan[complex128]
	win  []float64
	norm float64 // 2 / (FFTSize * coherent gain)

	frame  []float64
	in     []complex128
	out    []complex128
	re     []float64
	im     []float64
	mags   []float64
	smooth []float64
	bytes  []uint8
}

func NewAnalyzer() (*Analyzer, error) {
	plan, err := algofft.NewPlan64(FFTSize)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}

	win := window.Generate(window.TypeHann, FFTSize, window.WithPeriodic())
	sum := 0.0
	for _, c := range win {
		sum += c
	}
	if sum <= 0 {
		return nil, fmt.Errorf("degenerate analysis window")
	}

	return &Analyzer{
		plan:   plan,
		win:    win,
		norm:   2.0 / sum,
		frame:  make([]float64, FFTSize),
		in:     make([]complex128, FFTSize),
		out:    make([]complex128, FFTSize),
		re:     make([]float64, SpectrumBins),
		im:     make([]float64, SpectrumBins),
		mags:   make([]float64, SpectrumBins),
		smooth: make([]float64, SpectrumBins),
		bytes:  make([]uint8, SpectrumBins),
	}, nil
}

// Push appends mono samples in [-1,1] to the analysis ring. Safe to call
// from the audio backend's thread.
func (a *Analyzer) Push(samples []float64) {
	a.mu.Lock()
	for _, s := range samples {
		a.ring[a.w] = s
		a.w = (a.w + 1) % FFTSize
	}
	a.filled += len(samples)
	if a.filled > FFTSize {
		a.filled = FFTSize
	}
	a.mu.Unlock()
}

// Frame computes the current byte spectrum. An under-filled ring (source
// not yet started, or permanently unavailable) yields all zeros — silence,
// never an error.
func (a *Analyzer) Frame() []uint8 {
	a.mu.Lock()
	if a.filled < FFTSize {
		a.mu.Unlock()
		for i := range a.bytes {
			a.bytes[i] = 0
		}
		return a.bytes
	}
	// Oldest sample first: the write index points at it.
	n := copy(a.frame, a.ring[a.w:])
	copy(a.frame[n:], a.ring[:a.w])
	a.mu.Unlock()

	for i, s := range a.frame {
		a.in[i] = complex(s*a.win[i], 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		// Plan and buffer sizes are fixed at construction; this cannot
		// fail mid-session. Degrade to silence regardless.
		for i := range a.bytes {
			a.bytes[i] = 0
		}
		return a.bytes
	}

	for i := 0; i < SpectrumBins; i++ {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
	spectrum.MagnitudeFromParts(a.mags, a.re, a.im)
	vecmath.ScaleBlock(a.mags, a.mags, a.norm)

	for i, m := range a.mags {
		a.smooth[i] = SpectrumSmoothing*a.smooth[i] + (1-SpectrumSmoothing)*m
		a.bytes[i] = magByte(a.smooth[i])
	}
	return a.bytes
}

func magByte(m float64) uint8 {
	if m <= 0 {
		return 0
	}
	db := 20 * math.Log10(m)
	v := (db - SpectrumMinDB) / (SpectrumMaxDB - SpectrumMinDB) * 255.0
	return uint8(clamp(int(v), 0, 255))
}
