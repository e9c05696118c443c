package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeShape(t *testing.T) {
	assert.Equal(t, 0.0, envelope(0), "cycle starts silent")
	assert.Equal(t, 1.0, envelope(attackSeconds), "full gain after the attack ramp")
	assert.Equal(t, 1.0, envelope(attackSeconds+holdSeconds/2), "holds at full gain")
	assert.Equal(t, 0.0, envelope(attackSeconds+holdSeconds+releaseSeconds), "silent after release")
	assert.Equal(t, 0.0, envelope(cycleSeconds-0.01), "silent for the rest of the cycle")
}

func TestEnvelopeRampsAreMonotonic(t *testing.T) {
	assert.True(t, envelope(attackSeconds/4) < envelope(attackSeconds/2), "attack must ramp up")

	releaseStart := attackSeconds + holdSeconds
	assert.True(t, envelope(releaseStart+releaseSeconds/4) > envelope(releaseStart+releaseSeconds/2), "release must ramp down")
}

func TestSynthesizeSilenceInGap(t *testing.T) {
	// a buffer positioned wholly inside the silent tail must be all zero
	gapStart := int((attackSeconds + holdSeconds + releaseSeconds) * sampleRate)
	buf := make([]byte, 256)
	synthesize(buf, gapStart+100, -1, 0)

	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
}

func TestSynthesizeFadeEndsSilent(t *testing.T) {
	fadeLen := 64
	buf := make([]byte, (fadeLen+16)*2)
	// fade starts mid-hold, where gain is 1
	start := int((attackSeconds + 0.1) * sampleRate)
	synthesize(buf, start, start, fadeLen)

	// everything past the fade window is silence
	for i := fadeLen; i < fadeLen+16; i++ {
		assert.Equal(t, byte(0), buf[2*i], "sample %d", i)
		assert.Equal(t, byte(0), buf[2*i+1], "sample %d", i)
	}
}
