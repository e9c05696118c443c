package alarm

import (
	"math"
)

// Tone shape: the alarm ramps up quickly, holds, ramps down, then stays
// silent for the rest of the cycle. Roughly one second of tone inside a
// 1.7 second cycle.
const (
	sampleRate = 44100
	frequency  = 880.0

	attackSeconds  = 0.05
	holdSeconds    = 0.85
	releaseSeconds = 0.1
	silenceSeconds = 0.7

	cycleSeconds = attackSeconds + holdSeconds + releaseSeconds + silenceSeconds

	amplitude = 0.6
)

var samplesPerCycle = int(cycleSeconds * sampleRate)

// envelope gives the gain at an offset (in seconds) into the cycle.
func envelope(t float64) float64 {
	switch {
	case t < attackSeconds:
		return t / attackSeconds
	case t < attackSeconds+holdSeconds:
		return 1
	case t < attackSeconds+holdSeconds+releaseSeconds:
		return 1 - (t-attackSeconds-holdSeconds)/releaseSeconds
	default:
		return 0
	}
}

// synthesize fills a little-endian 16-bit mono PCM buffer starting at the
// given absolute sample position. A non-negative fadeStart sample position
// applies a terminal fade so a mid-cycle stop does not click.
func synthesize(buf []byte, startSample int, fadeStart int, fadeLen int) {
	n := len(buf) / 2
	for i := 0; i < n; i++ {
		pos := startSample + i
		t := float64(pos%samplesPerCycle) / sampleRate

		gain := envelope(t)
		if fadeStart >= 0 && pos >= fadeStart {
			faded := 1 - float64(pos-fadeStart)/float64(fadeLen)
			if faded < 0 {
				faded = 0
			}
			gain *= faded
		}

		sample := amplitude * gain * math.Sin(2*math.Pi*frequency*float64(pos)/sampleRate)
		v := int16(sample * math.MaxInt16)

		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
}
