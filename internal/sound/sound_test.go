package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer, chunk int) (total int) {
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(1000)
	s := Tone(sr, 440, 880, 100*time.Millisecond)
	if got := drain(s, 32); got != 100 {
		t.Fatalf("tone length = %d samples, want 100", got)
	}
}

func TestToneStaysInRange(t *testing.T) {
	buf := make([][2]float64, 2000)
	n, _ := Tone(beep.SampleRate(8000), 520, 880, 200*time.Millisecond).Stream(buf)
	if n != 1600 {
		t.Fatalf("streamed %d samples, want 1600", n)
	}
	for i := 0; i < n; i++ {
		if math.Abs(buf[i][0]) > 0.5 || buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d = %v", i, buf[i])
		}
	}
}

// counter streams 1, 2, 3 ... on both channels and ends after limit samples.
type counter struct {
	next, limit int
}

func (c *counter) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if c.next >= c.limit {
			return i, i > 0
		}
		c.next++
		samples[i] = [2]float64{float64(c.next), float64(c.next)}
	}
	return len(samples), true
}

func (c *counter) Err() error { return nil }

func TestTapSnapshotOrder(t *testing.T) {
	tap := NewTap(&counter{limit: 100}, 4)
	buf := make([][2]float64, 6)
	tap.Stream(buf)

	got := tap.Snapshot(10)
	want := []float64{3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("snapshot length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i][0] != want[i] {
			t.Errorf("snapshot[%d] = %v, want %v", i, got[i][0], want[i])
		}
	}
	if got := tap.Snapshot(2); got[0][0] != 5 || got[1][0] != 6 {
		t.Errorf("Snapshot(2) = %v, want [5 6]", got)
	}
}

func TestTapLevel(t *testing.T) {
	tap := NewTap(&counter{limit: 100}, 8)
	if tap.Level(8) != 0 {
		t.Fatal("empty tap has a level")
	}
	tap.Stream(make([][2]float64, 2))
	// RMS of 1 and 2.
	want := math.Sqrt(2.5)
	if got := tap.Level(8); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Level = %v, want %v", got, want)
	}
}

func TestTapFallsSilentWhenDrained(t *testing.T) {
	tap := NewTap(&counter{limit: 3}, 8)
	drain(tap, 2)
	if got := tap.Level(8); got != 0 {
		t.Fatalf("drained tap level = %v, want 0", got)
	}
	if len(tap.Snapshot(8)) != 0 {
		t.Fatal("drained tap kept samples")
	}
}

func TestChimeWithoutDeviceIsMute(t *testing.T) {
	c := NewChime(44100, 1024)
	c.PlayOpen()
	c.PlayClose()
	if c.Level(1024) != 0 {
		t.Fatal("chime without a device reported a level")
	}
	var zero Chime
	zero.PlayOpen()
	if zero.Level(16) != 0 {
		t.Fatal("zero chime reported a level")
	}
}
