package viz

// Rocket is a pooled rising projectile. Active is the sole authority on
// whether the slot participates in physics and rendering; an inactive slot
// retains stale data until Launch fully overwrites it.
type Rocket struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Target     float64 // apex height
	Col        RGB
	Class      EnergyClass
	Active     bool
}

// RocketSystem owns the rocket pool: scan for an inactive slot before
// growing the backing slice.
type RocketSystem struct {
	R   []Rocket
	rng *Rand
}

func NewRocketSystem(seed uint64) *RocketSystem {
	return &RocketSystem{rng: NewRand(seed)}
}

func (rs *RocketSystem) acquire() *Rocket {
	for i := range rs.R {
		if !rs.R[i].Active {
			return &rs.R[i]
		}
	}
	rs.R = append(rs.R, Rocket{})
	return &rs.R[len(rs.R)-1]
}

// Launch activates a rocket of the given class at a jittered ground
// position. Every field is overwritten; nothing from the slot's previous
// life survives.
func (rs *RocketSystem) Launch(class EnergyClass, col RGB) {
	r := rs.acquire()

	riseMin, riseMax := CalmRiseSpeedMin, CalmRiseSpeedMax
	targetMin, targetMax := CalmTargetMin, CalmTargetMax
	if class == HighEnergy {
		riseMin, riseMax = HighRiseSpeedMin, HighRiseSpeedMax
		targetMin, targetMax = HighTargetMin, HighTargetMax
	}

	r.X = rs.rng.RangeF(-LaunchSpread, LaunchSpread)
	r.Y = 0
	r.Z = rs.rng.RangeF(-LaunchSpread, LaunchSpread)
	r.VX = rs.rng.RangeF(-2.0, 2.0)
	r.VY = rs.rng.RangeF(riseMin, riseMax)
	r.VZ = rs.rng.RangeF(-2.0, 2.0)
	r.Target = rs.rng.RangeF(targetMin, targetMax)
	r.Col = col
	r.Class = class
	r.Active = true
}

// Update advances all active rockets. Vertical velocity decays by a fixed
// per-frame damping factor (drag tuning, not true gravity). A rocket that
// reaches its target height, or whose rise has decayed below the apex
// threshold, deactivates and spawns its burst in the same step — possibly
// below its nominal target, which is the intended look.
func (rs *RocketSystem) Update(dt float64, bursts *ParticleSystem) {
	for i := range rs.R {
		r := &rs.R[i]
		if !r.Active {
			continue
		}

		r.X += r.VX * dt
		r.Y += r.VY * dt
		r.Z += r.VZ * dt
		r.VY *= RocketRiseDamping

		if r.Y >= r.Target || r.VY < RocketApexMinRise {
			r.Active = false
			bursts.SpawnBurst(r.X, r.Y, r.Z, r.Col, r.Class)
		}
	}
}

// ActiveCount reports how many rockets are currently rising.
func (rs *RocketSystem) ActiveCount() int {
	n := 0
	for i := range rs.R {
		if rs.R[i].Active {
			n++
		}
	}
	return n
}

// RenderData appends one glow sprite per active rocket to buf.
// Format: [x, y, z, size, r, g, b, a] * N.
func (rs *RocketSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range rs.R {
		r := &rs.R[i]
		if !r.Active {
			continue
		}
		buf = append(buf,
			float32(r.X), float32(r.Y), float32(r.Z), 1.4,
			float32(r.Col.R)/255.0, float32(r.Col.G)/255.0, float32(r.Col.B)/255.0, 1.0,
		)
	}
	return buf
}
