package viz

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
)

// Audio analysis.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	FFTSize      = 1024
	SpectrumBins = FFTSize / 2

	// Byte-spectrum dB mapping and inter-frame smoothing.
	SpectrumMinDB     = -100.0
	SpectrumMaxDB     = -30.0
	SpectrumSmoothing = 0.8
)

// Band boundaries over the SpectrumBins magnitude array.
// Fixed per session; bass [0,BassHi), mid [BassHi,TrebleLo), treble [TrebleLo,SpectrumBins).
const (
	BassHi   = 24
	TrebleLo = 160
)

// Emission policy.
const (
	TrebleThreshold = 0.55
	TrebleCooldown  = 0.15
	BassThreshold   = 0.40
	BassCooldown    = 0.40
	IdleTimeout     = 2.5
)

// Rocket physics. Rise drag is per-frame multiplicative, not dt-scaled.
const (
	RocketRiseDamping = 0.985
	RocketApexMinRise = 2.5
	LaunchSpread      = 30.0

	CalmRiseSpeedMin = 26.0
	CalmRiseSpeedMax = 36.0
	CalmTargetMin    = 30.0
	CalmTargetMax    = 48.0

	HighRiseSpeedMin = 48.0
	HighRiseSpeedMax = 64.0
	HighTargetMin    = 58.0
	HighTargetMax    = 80.0
)

// Particle physics and burst classes.
const (
	ParticleGravity = 24.0
	ParticleAirDrag = 0.985 // per-frame multiplicative

	CalmBurstCount = 60
	CalmBurstSpeed = 20.0
	CalmLifeMin    = 0.9
	CalmLifeMax    = 1.5
	CalmScaleDecay = 0.986

	HighBurstCount = 200
	HighBurstSpeed = 38.0
	HighLifeMin    = 1.3
	HighLifeMax    = 2.2
	HighScaleDecay = 0.994

	HighlightFraction = 0.15
)

// Camera.
const CameraOrbitRate = 0.08 // rad/s

// Frame timing. Large deltas after stalls are clamped so particles cannot
// tunnel past lifetime checks and rockets cannot overshoot their targets.
const MaxFrameDelta = 0.1

// Render limits.
const MaxSpriteRender = 20000
