package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/boxworld/teleport"
)

// glide is one voice whose pitch slides linearly from `from` to `to`
// Amplitude ramps up over the attack and down over the release
type glide struct {
	from, to float64
	square   bool
	rate     beep.SampleRate

	total, attack, release int
	pos                    int
	phase                  float64
}

func newGlide(from, to float64, d, attack, release time.Duration, square bool, rate beep.SampleRate) *glide {
	return &glide{
		from:    from,
		to:      to,
		square:  square,
		rate:    rate,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

// tone is a glide that holds one pitch
func tone(freq float64, d, attack, release time.Duration, square bool, rate beep.SampleRate) *glide {
	return newGlide(freq, freq, d, attack, release, square, rate)
}

func (g *glide) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}

		v := math.Sin(2 * math.Pi * g.phase)
		if g.square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		v *= g.gain()
		samples[i][0] = v
		samples[i][1] = v

		freq := g.from + (g.to-g.from)*float64(g.pos)/float64(g.total)
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *glide) gain() float64 {
	if g.pos < g.attack {
		return float64(g.pos) / float64(g.attack)
	}
	if rem := g.total - g.pos; rem < g.release {
		return float64(rem) / float64(g.release)
	}
	return 1
}

func (g *glide) Err() error { return nil }

// newVolume wraps s at linear gain vol
// Log2(0) is -Inf, so zero maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// pitchFor returns the base note for an address depth; deeper boxes ring higher
func pitchFor(depth int) float64 {
	steps := depth - 1
	if steps < 0 {
		steps = 0
	}
	if steps > maxPitchSteps {
		steps = maxPitchSteps
	}
	return rootPitch * math.Pow(2, float64(steps)/stepsPerOct)
}

// teleportLength returns the sweep duration and end pitch for a jump of hops
// Explicit teleports report zero hops and sound like a single jump
func teleportLength(hops int) (time.Duration, float64) {
	if hops < 1 {
		hops = 1
	}
	if hops > teleport.MaxHops {
		hops = teleport.MaxHops
	}
	d := teleportBase + time.Duration(hops)*teleportPerHop
	return d, teleportFrom * math.Pow(2, float64(hops)/teleportHopsPerOct)
}

func rejectedSound(rate beep.SampleRate) beep.Streamer {
	return newGlide(rejectedFrom, rejectedTo, rejectedDuration, rejectedAttack, rejectedRelease, true, rate)
}

func createSound(depth int, rate beep.SampleRate) beep.Streamer {
	p := pitchFor(depth)
	return beep.Mix(
		newVolume(tone(p, createDuration, createAttack, createFundamentalRelease, false, rate), 0.7),
		newVolume(tone(2*p, createDuration, createAttack, createOvertoneRelease, false, rate), 0.3),
	)
}

func teleportSound(hops int, rate beep.SampleRate) beep.Streamer {
	d, to := teleportLength(hops)
	return newGlide(teleportFrom, to, d, d/4, d/2, false, rate)
}

func deleteSound(depth int, rate beep.SampleRate) beep.Streamer {
	p := pitchFor(depth)
	return beep.Seq(
		tone(p*1.5, deleteNote1Duration, deleteAttack, deleteNote1Release, true, rate),
		tone(p, deleteNote2Duration, deleteAttack, deleteNote2Release, true, rate),
	)
}

// Synthesize builds the streamer for c at the configured volume, nil for unknown sounds
func Synthesize(c Cue, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c.Sound {
	case SoundRejected:
		s = rejectedSound(rate)
	case SoundCreate:
		s = createSound(c.Depth, rate)
	case SoundTeleport:
		s = teleportSound(c.Hops, rate)
	case SoundDelete:
		s = deleteSound(c.Depth, rate)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[c.Sound]*cfg.MasterVolume)
}
