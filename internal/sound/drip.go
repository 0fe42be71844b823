package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Drip synthesizes a short sine ping. Its loudness rises and falls with
// sin(pi*phase) over d, the same envelope the rings use for thickness.
func Drip(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := math.Sin(math.Pi * float64(pos) / float64(total))
			t := float64(pos) / float64(sr)
			v := volume * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
