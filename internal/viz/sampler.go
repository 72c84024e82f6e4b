package viz

// FrequencySnapshot holds one frame's band averages, each normalized to [0,1].
type FrequencySnapshot struct {
	Bass, Mid, Treble float64
}

// BandLevels reduces a 0-255 magnitude spectrum to three band means.
// The band boundaries are fixed constants; a nil or short spectrum (audio
// source unavailable) yields the zero snapshot rather than an error, so the
// frame loop never fails on silence.
func BandLevels(spectrum []uint8) FrequencySnapshot {
	if len(spectrum) < SpectrumBins {
		return FrequencySnapshot{}
	}
	return FrequencySnapshot{
		Bass:   bandMean(spectrum[:BassHi]),
		Mid:    bandMean(spectrum[BassHi:TrebleLo]),
		Treble: bandMean(spectrum[TrebleLo:SpectrumBins]),
	}
}

func bandMean(bins []uint8) float64 {
	if len(bins) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bins {
		sum += float64(b)
	}
	return sum / float64(len(bins)) / 255.0
}
