package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names a game sound.
type Cue int

const (
	CueAttack Cue = iota
	CueHit
	CueMonsterDeath
	CuePlayerHurt
	CueCoin
	CueLevelUp
	CueMenuSelect
	CueSave
	CueGameOver
	cueCount
)

var cueNames = [...]string{
	CueAttack:       "attack",
	CueHit:          "hit",
	CueMonsterDeath: "monster_death",
	CuePlayerHurt:   "player_hurt",
	CueCoin:         "coin",
	CueLevelUp:      "level_up",
	CueMenuSelect:   "menu_select",
	CueSave:         "save",
	CueGameOver:     "game_over",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cues lists every cue.
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}

// Stream builds a fresh finite streamer for c.
func (c Cue) Stream(sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueAttack:
		// short noise whoosh
		d := 90 * time.Millisecond
		return newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, sr), d, 10*time.Millisecond, 60*time.Millisecond, sr), 0.25)

	case CueHit:
		d := 80 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(220, 110, d, WaveSaw, sr), d, 2*time.Millisecond, 50*time.Millisecond, sr), 0.4)

	case CueMonsterDeath:
		d := 300 * time.Millisecond
		return newVolume(NewEnvelope(NewSweep(330, 60, d, WaveSquare, sr), d, 5*time.Millisecond, 200*time.Millisecond, sr), 0.3)

	case CuePlayerHurt:
		d := 120 * time.Millisecond
		return newVolume(beep.Mix(
			tone(90, d, WaveSquare, sr),
			newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, sr), d, time.Millisecond, 80*time.Millisecond, sr), 0.3),
		), 0.45)

	case CueCoin:
		return newVolume(beep.Seq(
			tone(988, 60*time.Millisecond, WaveSquare, sr),
			tone(1319, 140*time.Millisecond, WaveSquare, sr),
		), 0.2)

	case CueLevelUp:
		notes := []float64{523, 659, 784, 1047}
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			parts = append(parts, tone(f, 90*time.Millisecond, WaveSquare, sr))
		}
		return newVolume(beep.Seq(parts...), 0.25)

	case CueMenuSelect:
		return newVolume(tone(660, 40*time.Millisecond, WaveSine, sr), 0.3)

	case CueSave:
		d := 250 * time.Millisecond
		return newVolume(beep.Mix(
			tone(880, d, WaveSine, sr),
			newVolume(tone(1760, d, WaveSine, sr), 0.4),
		), 0.3)

	case CueGameOver:
		notes := []float64{392, 330, 262}
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			parts = append(parts, tone(f, 220*time.Millisecond, WaveSaw, sr))
		}
		return newVolume(beep.Seq(parts...), 0.3)
	}
	return beep.Silence(0)
}
