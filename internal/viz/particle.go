package viz

import "math"

// Particle is one pooled fragment of an explosion burst. As with rockets,
// Active alone decides participation; position and velocity are not reset
// on death and must be trusted only after the next spawn overwrites them.
type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Life       float64 // remaining seconds
	MaxLife    float64
	Scale      float64
	ScaleDecay float64 // per-frame multiplicative shrink
	Col        RGB
	Active     bool
}

// ParticleSystem owns the burst pool (scan-for-inactive, then grow).
type ParticleSystem struct {
	P   []Particle
	rng *Rand
}

func NewParticleSystem(seed uint64) *ParticleSystem {
	return &ParticleSystem{rng: NewRand(seed)}
}

func (ps *ParticleSystem) acquire() *Particle {
	for i := range ps.P {
		if !ps.P[i].Active {
			return &ps.P[i]
		}
	}
	ps.P = append(ps.P, Particle{})
	return &ps.P[len(ps.P)-1]
}

// SpawnBurst converts an expired rocket into outward-moving particles at
// its apex position. High-energy bursts spawn more particles at higher
// speed and longer life than calm bursts. Directions are sampled in
// spherical coordinates (uniform theta and phi — slightly pole-biased,
// matching the tuned look), magnitude uniform up to the class speed bound.
func (ps *ParticleSystem) SpawnBurst(x, y, z float64, col RGB, class EnergyClass) {
	count := CalmBurstCount
	maxSpeed := CalmBurstSpeed
	lifeMin, lifeMax := CalmLifeMin, CalmLifeMax
	scaleDecay := CalmScaleDecay
	if class == HighEnergy {
		count = HighBurstCount
		maxSpeed = HighBurstSpeed
		lifeMin, lifeMax = HighLifeMin, HighLifeMax
		scaleDecay = HighScaleDecay
	}

	for range count {
		theta := ps.rng.RangeF(0, 2*math.Pi)
		phi := ps.rng.RangeF(0, math.Pi)
		speed := ps.rng.RangeF(0, maxSpeed)

		p := ps.acquire()
		p.X = x
		p.Y = y
		p.Z = z
		p.VX = speed * math.Sin(phi) * math.Cos(theta)
		p.VY = speed * math.Cos(phi)
		p.VZ = speed * math.Sin(phi) * math.Sin(theta)
		p.MaxLife = ps.rng.RangeF(lifeMin, lifeMax)
		p.Life = p.MaxLife
		p.Scale = 1.0
		p.ScaleDecay = scaleDecay
		p.Col = col
		if class == HighEnergy && ps.rng.Float64() < HighlightFraction {
			p.Col = HighlightColor
		}
		p.Active = true
	}
}

// Update advances all live particles: lifetime countdown, velocity
// integration, true gravity on the vertical axis, per-frame air drag, and
// per-frame scale decay. Life reaching zero deactivates the slot.
func (ps *ParticleSystem) Update(dt float64) {
	for i := range ps.P {
		p := &ps.P[i]
		if !p.Active {
			continue
		}

		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
			continue
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Z += p.VZ * dt
		p.VY -= ParticleGravity * dt
		p.VX *= ParticleAirDrag
		p.VY *= ParticleAirDrag
		p.VZ *= ParticleAirDrag
		p.Scale *= p.ScaleDecay
	}
}

// AliveCount reports how many particles are currently live.
func (ps *ParticleSystem) AliveCount() int {
	n := 0
	for i := range ps.P {
		if ps.P[i].Active {
			n++
		}
	}
	return n
}

// Opacity returns a particle's render alpha: the remaining-life fraction.
func (p *Particle) Opacity() float64 {
	if !p.Active || p.Life <= 0 {
		return 0
	}
	return clampF(p.Life/p.MaxLife, 0, 1)
}

// RenderData appends one sprite per live particle to buf.
// Format: [x, y, z, size, r, g, b, a] * N. RGB is pre-multiplied by alpha
// for the additive glow pass.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		if !p.Active {
			continue
		}
		a := float32(p.Opacity())
		if a <= 0 {
			continue
		}
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Z), float32(p.Scale),
			float32(p.Col.R)/255.0*a, float32(p.Col.G)/255.0*a, float32(p.Col.B)/255.0*a, a,
		)
	}
	return buf
}
