package viz

import "testing"

func TestDecideEmission_TrebleBeatsBass(t *testing.T) {
	snap := FrequencySnapshot{Bass: 0.9, Treble: 0.9}
	class, ok := DecideEmission(snap, 10)
	if !ok || class != HighEnergy {
		t.Errorf("treble rule has priority: got class=%v ok=%v", class, ok)
	}
}

func TestDecideEmission_TrebleCooldown(t *testing.T) {
	snap := FrequencySnapshot{Treble: 0.9}
	if _, ok := DecideEmission(snap, TrebleCooldown/2); ok {
		t.Error("treble rule fired before its cooldown elapsed")
	}
	if class, ok := DecideEmission(snap, TrebleCooldown); !ok || class != HighEnergy {
		t.Error("treble rule should fire exactly at cooldown")
	}
}

func TestDecideEmission_BassRule(t *testing.T) {
	snap := FrequencySnapshot{Bass: 0.8}
	if _, ok := DecideEmission(snap, BassCooldown/2); ok {
		t.Error("bass rule fired before its cooldown elapsed")
	}
	if class, ok := DecideEmission(snap, BassCooldown); !ok || class != Calm {
		t.Error("bass rule should emit a calm rocket")
	}
}

func TestDecideEmission_QuietBelowIdle(t *testing.T) {
	if _, ok := DecideEmission(FrequencySnapshot{}, IdleTimeout-0.01); ok {
		t.Error("no rule should fire on silence before the idle timeout")
	}
}

func TestDecideEmission_IdleKeepAlive(t *testing.T) {
	class, ok := DecideEmission(FrequencySnapshot{}, IdleTimeout)
	if !ok || class != Calm {
		t.Error("idle timeout should emit a default calm rocket")
	}
}

// Sustained silence emits exactly one default rocket per idle interval,
// regardless of frame rate.
func TestDecideEmission_IdleIdempotence(t *testing.T) {
	const dt = 0.0625 // exact in binary so the interval sums are exact
	const total = 10.0
	sinceLast := 0.0
	emissions := 0
	for t2 := 0.0; t2 < total; t2 += dt {
		sinceLast += dt
		if _, ok := DecideEmission(FrequencySnapshot{}, sinceLast); ok {
			emissions++
			sinceLast = 0
		}
	}
	want := int(total / IdleTimeout)
	if emissions != want {
		t.Errorf("silence over %vs emitted %d rockets, want %d", total, emissions, want)
	}
}
