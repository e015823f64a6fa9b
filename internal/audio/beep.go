// internal/audio/beep.go
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// BeepPlayer синтезирует сигналы на лету и сводит их в общий микшер.
// Звуковых файлов нет — каждый сигнал считается генератором волны.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBeepPlayer поднимает динамик. Ошибка инициализации не фатальна:
// плеер остаётся немым и логирует причину один раз.
func NewBeepPlayer() *BeepPlayer {
	p := &BeepPlayer{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		log.Printf("audio init failed, sound disabled: %v", err)
		return p
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p
}

func (p *BeepPlayer) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	var (
		gen beep.Streamer
		dur time.Duration
	)
	switch cue {
	case CueDash:
		dur = 120 * time.Millisecond
		gen = newSweepGenerator(sampleRate, 300, 700, dur)
	case CueHit:
		dur = 150 * time.Millisecond
		gen = newBuzzGenerator(sampleRate, 110, dur)
	case CueKill:
		dur = 140 * time.Millisecond
		gen = newSweepGenerator(sampleRate, 500, 250, dur)
	case CueLevelUp:
		dur = 450 * time.Millisecond
		gen = newChimeGenerator(sampleRate, dur)
	case CueFire:
		dur = 70 * time.Millisecond
		gen = newSweepGenerator(sampleRate, 900, 500, dur)
	case CueGameOver:
		dur = 700 * time.Millisecond
		gen = newSweepGenerator(sampleRate, 400, 60, dur)
	default:
		return
	}

	// Микшер читается горутиной динамика, поэтому Add — под speaker.Lock.
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(dur), gen))
	speaker.Unlock()
}

// Close глушит всё, что ещё звучит.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
