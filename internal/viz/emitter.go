package viz

// EnergyClass selects a rocket's rise profile and eventual burst size.
type EnergyClass uint8

const (
	Calm EnergyClass = iota
	HighEnergy
)

// DecideEmission is the per-frame emission policy. Rules are evaluated in
// priority order and at most one fires:
//  1. strong treble after a short cooldown launches a high-energy rocket,
//  2. strong bass after a longer cooldown launches a calm rocket,
//  3. prolonged silence launches a default calm rocket to keep the scene
//     alive.
//
// sinceLast is the time elapsed since the previous emission; the caller
// resets it to zero whenever this returns true.
func DecideEmission(snap FrequencySnapshot, sinceLast float64) (EnergyClass, bool) {
	switch {
	case snap.Treble > TrebleThreshold && sinceLast >= TrebleCooldown:
		return HighEnergy, true
	case snap.Bass > BassThreshold && sinceLast >= BassCooldown:
		return Calm, true
	case sinceLast >= IdleTimeout:
		return Calm, true
	}
	return Calm, false
}
