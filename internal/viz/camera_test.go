package viz

import "testing"

// Resizing updates only the projection aspect; nothing else in the camera
// (and nothing in the simulation, which the camera never touches) changes.
func TestCamera_SetViewportOnlyChangesAspect(t *testing.T) {
	cam := NewCamera()
	before := *cam

	cam.SetViewport(1920, 1080)
	if cam.Aspect != 1920.0/1080.0 {
		t.Errorf("aspect = %v, want %v", cam.Aspect, 1920.0/1080.0)
	}
	cam.Aspect = before.Aspect
	if *cam != before {
		t.Errorf("resize touched more than the aspect: %+v vs %+v", *cam, before)
	}
}

func TestCamera_IgnoresDegenerateViewport(t *testing.T) {
	cam := NewCamera()
	want := cam.Aspect
	cam.SetViewport(0, 0)
	cam.SetViewport(-5, 100)
	if cam.Aspect != want {
		t.Errorf("degenerate viewport changed aspect to %v", cam.Aspect)
	}
}

func TestCamera_ResizeDoesNotResetSimulation(t *testing.T) {
	rs := NewRocketSystem(1)
	ps := NewParticleSystem(2)
	rs.Launch(HighEnergy, RGB{255, 0, 0})
	ps.SpawnBurst(0, 40, 0, RGB{0, 255, 0}, Calm)
	rocketsBefore := make([]Rocket, len(rs.R))
	copy(rocketsBefore, rs.R)
	particlesBefore := make([]Particle, len(ps.P))
	copy(particlesBefore, ps.P)

	cam := NewCamera()
	cam.SetViewport(640, 480)
	cam.SetViewport(2560, 1440)

	for i := range rs.R {
		if rs.R[i] != rocketsBefore[i] {
			t.Fatal("resize altered rocket state")
		}
	}
	for i := range ps.P {
		if ps.P[i] != particlesBefore[i] {
			t.Fatal("resize altered particle state")
		}
	}
}

func TestCamera_PointScalePositive(t *testing.T) {
	cam := NewCamera()
	if cam.PointScale(768) <= 0 {
		t.Error("point scale must be positive")
	}
	if cam.PointScale(1536) <= cam.PointScale(768) {
		t.Error("point scale should grow with framebuffer height")
	}
}
