package viz

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/oto/v2"
)

// DemoSource synthesizes a looping kick/hat pattern, plays it through the
// speakers, and tees the mono signal into the analyzer. It lets the
// visualizer be exercised without a microphone (FIREWORKS_DEMO=1).
type DemoSource struct {
	ctx   *oto.Context
	ready chan struct{}

	mu     sync.Mutex
	player oto.Player
}

func StartDemo(an *Analyzer) (*DemoSource, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("demo audio: %w", err)
	}
	d := &DemoSource{ctx: ctx, ready: ready}
	go func() {
		<-ready
		p := ctx.NewPlayer(&demoStream{an: an, rng: NewRand(0x9A7)})
		d.mu.Lock()
		d.player = p
		d.mu.Unlock()
		p.Play()
	}()
	return d, nil
}

func (d *DemoSource) Close() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if d.player != nil {
		d.player.Close()
	}
	d.mu.Unlock()
}

// Demo pattern timing.
const (
	demoKickPeriod = 0.5
	demoHatPeriod  = 2.0
	demoHatOffset  = 0.25
)

// demoStream produces float32 LE stereo PCM on demand (oto pulls from its
// own goroutine) and pushes the mono signal into the analyzer.
type demoStream struct {
	an   *Analyzer
	rng  *Rand
	t    float64
	mono []float64
}

func (s *demoStream) Read(p []byte) (int, error) {
	frames := len(p) / 8 // 2 channels * 4 bytes
	if frames == 0 {
		return 0, nil
	}
	if cap(s.mono) < frames {
		s.mono = make([]float64, frames)
	}
	s.mono = s.mono[:frames]

	const step = 1.0 / SampleRate
	for i := 0; i < frames; i++ {
		v := s.sample()
		s.mono[i] = v
		bits := math.Float32bits(float32(v))
		binary.LittleEndian.PutUint32(p[i*8:], bits)
		binary.LittleEndian.PutUint32(p[i*8+4:], bits)
		s.t += step
	}
	s.an.Push(s.mono)
	return frames * 8, nil
}

// sample mixes a thumping low kick with a periodic bright hat so both the
// bass and treble emission rules get exercised.
func (s *demoStream) sample() float64 {
	kt := math.Mod(s.t, demoKickPeriod)
	kickFreq := 50.0 + 60.0*math.Exp(-18.0*kt)
	v := 0.85 * math.Exp(-9.0*kt) * math.Sin(2*math.Pi*kickFreq*kt)

	ht := math.Mod(s.t-demoHatOffset, demoHatPeriod)
	if ht >= 0 && ht < 0.2 {
		noise := s.rng.RangeF(-1, 1)
		v += 0.5 * math.Exp(-24.0*ht) * (0.6*math.Sin(2*math.Pi*8200.0*s.t) + 0.4*noise)
	}

	return clampF(v, -1, 1)
}
