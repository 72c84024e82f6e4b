package viz

import (
	"math"
	"testing"
)

func speedOf(p *Particle) float64 {
	return math.Sqrt(p.VX*p.VX + p.VY*p.VY + p.VZ*p.VZ)
}

// High-energy bursts always spawn more particles, with a higher speed
// bound and longer life, than calm bursts — for any seed.
func TestSpawnBurst_ClassOrdering(t *testing.T) {
	if HighBurstCount <= CalmBurstCount || HighBurstSpeed <= CalmBurstSpeed {
		t.Fatal("high-energy class must exceed calm in count and speed bound")
	}
	for seed := uint64(1); seed <= 50; seed++ {
		calm := NewParticleSystem(seed)
		calm.SpawnBurst(0, 40, 0, RGB{200, 80, 40}, Calm)
		high := NewParticleSystem(seed)
		high.SpawnBurst(0, 40, 0, RGB{200, 80, 40}, HighEnergy)

		if high.AliveCount() <= calm.AliveCount() {
			t.Fatalf("seed %d: high burst %d <= calm burst %d", seed, high.AliveCount(), calm.AliveCount())
		}
		for i := range calm.P {
			if s := speedOf(&calm.P[i]); s > CalmBurstSpeed+1e-9 {
				t.Fatalf("seed %d: calm particle speed %v exceeds bound %v", seed, s, CalmBurstSpeed)
			}
		}
		for i := range high.P {
			if s := speedOf(&high.P[i]); s > HighBurstSpeed+1e-9 {
				t.Fatalf("seed %d: high particle speed %v exceeds bound %v", seed, s, HighBurstSpeed)
			}
		}
	}
}

// Opacity is monotonically non-increasing while life decreases, and is
// exactly 0 only at or after life reaches zero.
func TestOpacity_MonotoneFade(t *testing.T) {
	ps := NewParticleSystem(3)
	ps.SpawnBurst(0, 40, 0, RGB{255, 255, 255}, Calm)

	prev := make([]float64, len(ps.P))
	for i := range ps.P {
		prev[i] = ps.P[i].Opacity()
		if prev[i] <= 0 {
			t.Fatal("fresh particle must start visible")
		}
	}

	for step := 0; step < 300; step++ {
		ps.Update(0.016)
		for i := range ps.P {
			p := &ps.P[i]
			o := p.Opacity()
			if o > prev[i]+1e-12 {
				t.Fatalf("opacity increased from %v to %v at step %d", prev[i], o, step)
			}
			if !p.Active && o != 0 {
				t.Fatal("dead particle must have zero opacity")
			}
			if p.Active && p.Life > 0 && o == 0 {
				t.Fatal("live particle must have non-zero opacity")
			}
			prev[i] = o
		}
	}
	if ps.AliveCount() != 0 {
		t.Errorf("%d particles outlived their max life", ps.AliveCount())
	}
}

// With dt clamped to MaxFrameDelta, a single frame's displacement is
// bounded by the class speed bound times the clamp (drag only shrinks the
// launch speed; gravity adds at most ParticleGravity*dt per frame, checked
// against the horizontal plane where it does not apply).
func TestUpdate_DisplacementBound(t *testing.T) {
	ps := NewParticleSystem(9)
	ps.SpawnBurst(0, 40, 0, RGB{255, 255, 255}, HighEnergy)

	before := make([]Particle, len(ps.P))
	copy(before, ps.P)
	ps.Update(MaxFrameDelta)

	bound := HighBurstSpeed*MaxFrameDelta + 1e-9
	for i := range ps.P {
		p := &ps.P[i]
		if !p.Active {
			continue
		}
		dx := p.X - before[i].X
		dy := p.Y - before[i].Y
		dz := p.Z - before[i].Z
		if d := math.Sqrt(dx*dx + dy*dy + dz*dz); d > bound {
			t.Fatalf("particle moved %v in one clamped frame, bound %v", d, bound)
		}
	}
}

func TestUpdate_GravityAndDrag(t *testing.T) {
	ps := NewParticleSystem(4)
	ps.P = append(ps.P, Particle{
		VX: 10, VY: 0, VZ: 0,
		Life: 5, MaxLife: 5,
		Scale: 1, ScaleDecay: CalmScaleDecay,
		Active: true,
	})

	ps.Update(0.1)
	p := ps.P[0]
	if p.VY >= 0 {
		t.Error("gravity must pull the vertical velocity down")
	}
	if p.VX >= 10 {
		t.Error("air drag must shrink horizontal velocity")
	}
	if p.Scale >= 1 {
		t.Error("scale decay must shrink the particle")
	}
}

func TestSpawnBurst_OverwritesStaleSlot(t *testing.T) {
	ps := NewParticleSystem(5)
	ps.P = append(ps.P, Particle{
		X: 123, VY: -99, Life: -1, MaxLife: 2, Scale: 0.01,
		Active: false,
	})

	ps.SpawnBurst(7, 40, -7, RGB{10, 20, 30}, Calm)

	p := ps.P[0]
	if !p.Active {
		t.Fatal("inactive slot should be reused first")
	}
	if p.X != 7 || p.Y != 40 || p.Z != -7 {
		t.Errorf("stale position survived reactivation: %+v", p)
	}
	if p.Life <= 0 || p.Life != p.MaxLife || p.Scale != 1.0 {
		t.Errorf("stale lifetime/scale survived reactivation: %+v", p)
	}
}

func TestSpawnBurst_HighlightRecolor(t *testing.T) {
	base := RGB{10, 200, 10}
	found := false
	for seed := uint64(1); seed <= 10 && !found; seed++ {
		ps := NewParticleSystem(seed)
		ps.SpawnBurst(0, 40, 0, base, HighEnergy)
		for i := range ps.P {
			if ps.P[i].Col == HighlightColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("high-energy bursts should recolor a fraction of particles to the highlight color")
	}

	ps := NewParticleSystem(1)
	ps.SpawnBurst(0, 40, 0, base, Calm)
	for i := range ps.P {
		if ps.P[i].Col != base {
			t.Error("calm bursts must keep the rocket color")
		}
	}
}
