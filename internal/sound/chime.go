// Package sound plays the short chimes that accompany opening and closing.
package sound

import (
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const chimeLength = 120 * time.Millisecond

// Tone returns a sine sweep from fromHz to toHz lasting d, with a decaying
// envelope so it ends without a click.
func Tone(sr beep.SampleRate, fromHz, toHz float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(total)
			freq := fromHz + (toHz-fromHz)*t
			phase += 2 * math.Pi * freq / float64(sr)
			v := math.Sin(phase) * math.Exp(-4*t) * 0.5
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// Chime owns the speaker. A zero Chime, or one whose Init failed, stays mute.
type Chime struct {
	sr       beep.SampleRate
	ringSize int
	ready    bool
	Enabled  bool
	// Volume in beep's log2 scale; 0 is unchanged.
	Volume float64

	tap *Tap
}

func NewChime(sampleRate, ringSize int) *Chime {
	return &Chime{
		sr:       beep.SampleRate(sampleRate),
		ringSize: ringSize,
		Enabled:  true,
		Volume:   -1,
	}
}

// Init opens the audio device.
func (c *Chime) Init() error {
	if err := speaker.Init(c.sr, c.sr.N(time.Second/20)); err != nil {
		return err
	}
	c.ready = true
	return nil
}

// PlayOpen plays a rising chime.
func (c *Chime) PlayOpen() {
	c.play(Tone(c.sr, 520, 880, chimeLength))
}

// PlayClose plays a falling chime.
func (c *Chime) PlayClose() {
	c.play(Tone(c.sr, 880, 440, chimeLength))
}

func (c *Chime) play(s beep.Streamer) {
	if !c.ready || !c.Enabled {
		return
	}
	tap := NewTap(s, c.ringSize)
	vol := &effects.Volume{Streamer: tap, Base: 2, Volume: c.Volume}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	c.tap = tap
	speaker.Play(vol)
	log.Printf("[Sound] chime started")
}

// Level returns the loudness of the chime being played, 0 when silent.
func (c *Chime) Level(n int) float64 {
	if c.tap == nil {
		return 0
	}
	return c.tap.Level(n)
}
