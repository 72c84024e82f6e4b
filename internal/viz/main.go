package viz

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop owns the whole visualizer lifecycle: window and GL setup, the
// one-shot audio source acquisition, and the per-frame loop that runs
// sampling, emission, simulation, and rendering in strict sequence on this
// thread. Teardown releases the audio source and window together when the
// loop exits.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		panic(fmt.Errorf("analyzer: %w", err))
	}

	// Audio source: demo loop, or the microphone. Either may fail; the
	// visualizer then runs on permanent silence and the idle emission
	// rule keeps the scene alive. No retries — restart to try again.
	if os.Getenv("FIREWORKS_DEMO") != "" {
		demo, err := StartDemo(analyzer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "demo audio failed (running on silence): %v\n", err)
		}
		defer demo.Close()
	} else {
		capture, err := StartCapture(analyzer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "microphone unavailable (running on silence): %v\n", err)
		}
		defer capture.Close()
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("FIREWORKS_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.01, 0.01, 0.03, 1.0)

	// Systems.
	rockets := NewRocketSystem(splitmix64(seed ^ 0xF13E))
	particles := NewParticleSystem(splitmix64(seed ^ 0xB007))
	palRng := NewRand(splitmix64(seed ^ 0xC0105))
	cam := NewCamera()

	// Reusable render buffers.
	var rocketBuf, burstBuf []float32

	sinceEmit := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		cam.SetViewport(fbW, fbH)

		// Sample → emit → simulate.
		snap := BandLevels(analyzer.Frame())
		sinceEmit += dt
		if class, ok := DecideEmission(snap, sinceEmit); ok {
			rockets.Launch(class, LaunchPalette[palRng.Intn(len(LaunchPalette))])
			sinceEmit = 0
		}
		rockets.Update(dt, particles)
		particles.Update(dt)
		cam.Update(dt)

		// Render: bursts additive, rocket heads as glow cores.
		viewProj := cam.ViewProjection()
		pointScale := cam.PointScale(fbH)
		rend.BeginFrame(fbW, fbH)
		burstBuf = particles.RenderData(burstBuf)
		rend.DrawSprites(burstBuf, viewProj, pointScale, true)
		rocketBuf = rockets.RenderData(rocketBuf)
		rend.DrawGlowSprites(rocketBuf, viewProj, pointScale)

		window.SwapBuffers()
	}
}
