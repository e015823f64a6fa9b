// internal/audio/synth.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweepGenerator ведёт синус от одной частоты к другой за время жизни
// сигнала. Фаза накапливается, чтобы смена частоты не давала щелчков.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	span     int
	pos      int
	phase    float64
}

func newSweepGenerator(sr beep.SampleRate, from, to float64, dur time.Duration) *sweepGenerator {
	return &sweepGenerator{sr: sr, from: from, to: to, span: sr.N(dur)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.span)
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.2 * attackRelease(progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}

// buzzGenerator даёт жёсткое низкое жужжание из трёх гармоник.
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	span int
	pos  int
}

func newBuzzGenerator(sr beep.SampleRate, freq float64, dur time.Duration) *buzzGenerator {
	return &buzzGenerator{sr: sr, freq: freq, span: sr.N(dur)}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.span)
		if progress > 1 {
			progress = 1
		}

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= 0.6 * attackRelease(progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}

// chimeGenerator — два восходящих тона для взятия уровня.
type chimeGenerator struct {
	sr    beep.SampleRate
	span  int
	pos   int
	phase float64
}

func newChimeGenerator(sr beep.SampleRate, dur time.Duration) *chimeGenerator {
	return &chimeGenerator{sr: sr, span: sr.N(dur)}
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.span)
		if progress > 1 {
			progress = 1
		}

		// Первая половина — C5, вторая — G5; каждая нота со своей огибающей.
		freq := 523.25
		noteProgress := progress * 2
		if progress >= 0.5 {
			freq = 783.99
			noteProgress = (progress - 0.5) * 2
		}
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.18 * attackRelease(noteProgress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error {
	return nil
}

// attackRelease — огибающая с быстрой атакой и плавным затуханием,
// без щелчков на границах сигнала.
func attackRelease(progress float64) float64 {
	attack := math.Min(progress/0.08, 1)
	release := math.Min((1-progress)/0.35, 1)
	if release < 0 {
		release = 0
	}
	return attack * release
}
