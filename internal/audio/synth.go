package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a fixed-length oscillator that can sweep linearly between two
// frequencies and fades out over its last quarter.
type tone struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	rng      *rand.Rand
}

// Tone returns a streamer of the given length sweeping from one frequency to another.
func Tone(rate beep.SampleRate, from, to float64, d time.Duration, wave Wave) beep.Streamer {
	return &tone{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewPCG(1, 2)),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		var v float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}

		if progress > 0.75 {
			v *= (1 - progress) / 0.25
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Stream builds the streamer for an effect at the given sample rate, or nil
// for an unknown effect.
func Stream(e Effect, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectPaddle:
		s = Tone(rate, 440, 440, 60*time.Millisecond, WaveSquare)
	case EffectWall:
		s = Tone(rate, 220, 220, 60*time.Millisecond, WaveSquare)
	case EffectScore:
		s = beep.Seq(
			Tone(rate, 523, 523, 90*time.Millisecond, WaveSine),
			Tone(rate, 784, 784, 120*time.Millisecond, WaveSine),
		)
	case EffectLaser:
		s = Tone(rate, 1400, 300, 120*time.Millisecond, WaveSquare)
	case EffectExplosion:
		s = Tone(rate, 0, 0, 250*time.Millisecond, WaveNoise)
	case EffectHit:
		s = Tone(rate, 160, 80, 100*time.Millisecond, WaveSquare)
	case EffectGameOver:
		s = Tone(rate, 440, 110, 600*time.Millisecond, WaveSine)
	default:
		return nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: -2}
}
