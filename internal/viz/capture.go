package viz

import (
	"fmt"

	"github.com/gen2brain/malgo"
)

// CaptureSource is the live microphone input. Acquisition happens exactly
// once, before the frame loop starts; if it fails the visualizer runs on
// permanent silence and the idle emission rule keeps the scene alive.
type CaptureSource struct {
	ctx *malgo.AllocatedContext
	dev *malgo.Device
}

// StartCapture opens the default capture device (mono S16 at SampleRate)
// and pushes converted samples into the analyzer from the backend's audio
// thread.
func StartCapture(an *Analyzer) (*CaptureSource, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = 1
	cfg.SampleRate = SampleRate
	cfg.Alsa.NoMMap = 1

	buf := make([]float64, 0, 1024)
	onRecv := func(_, in []byte, frames uint32) {
		buf = buf[:0]
		for i := 0; i+1 < len(in); i += 2 {
			s := int16(uint16(in[i]) | uint16(in[i+1])<<8)
			buf = append(buf, float64(s)/32768.0)
		}
		an.Push(buf)
	}

	dev, err := malgo.InitDevice(ctx.Context, cfg, malgo.DeviceCallbacks{Data: onRecv})
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("capture device: %w", err)
	}
	if err := dev.Start(); err != nil {
		dev.Uninit()
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("capture start: %w", err)
	}

	return &CaptureSource{ctx: ctx, dev: dev}, nil
}

// Close stops the device and releases the backend context. Called together
// with window teardown; no partial state is observable afterwards.
func (c *CaptureSource) Close() {
	if c == nil {
		return
	}
	if c.dev != nil {
		c.dev.Uninit()
	}
	if c.ctx != nil {
		_ = c.ctx.Uninit()
		c.ctx.Free()
	}
}
