// Package alarm synthesizes the repeating audible alert for fired
// reminders. The sounder owns its audio context explicitly: callers must
// Close it on teardown regardless of whether an alarm is playing.
package alarm

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/oto"
	log "github.com/sirupsen/logrus"
)

const logPrefix = "alarm"

// ErrAudioUnavailable marks a platform without a usable audio output. A
// failed alarm sound never blocks reminder bookkeeping.
var ErrAudioUnavailable = fmt.Errorf("audio output is unavailable")

// Sounder - lifecycle of the audible alert
type Sounder interface {
	// Start begins the repeating tone. Calling Start while already
	// playing is a no-op.
	Start() error
	// Stop fades the tone to silence and releases the player. Safe to
	// call when not playing.
	Stop()
	// Close stops any playback and releases the audio context.
	Close() error
}

// ToneSounder plays the shaped tone through an oto audio context acquired
// lazily on the first Start.
type ToneSounder struct {
	mu      sync.Mutex
	context *oto.Context
	playing bool
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

// NewToneSounder - new Sounder; the audio device is not touched until
// the first Start.
func NewToneSounder() *ToneSounder {
	return &ToneSounder{}
}

func (s *ToneSounder) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrAudioUnavailable
	}
	if s.playing {
		return nil
	}

	if s.context == nil {
		ctx, err := oto.NewContext(sampleRate, 1, 2, 8192)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"error":  err,
			}).Error("acquire audio context")
			return ErrAudioUnavailable
		}
		s.context = ctx
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.playing = true

	go s.play(s.stop, s.done)

	return nil
}

// play streams PCM cycles until told to stop, then writes a short fade so
// the tone never ends with a click.
func (s *ToneSounder) play(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	player := s.context.NewPlayer()
	defer player.Close()

	const chunkSamples = sampleRate / 10
	buf := make([]byte, chunkSamples*2)
	pos := 0

	for {
		select {
		case <-stop:
			fadeLen := sampleRate / 20
			fade := make([]byte, fadeLen*2)
			synthesize(fade, pos, pos, fadeLen)
			_, _ = player.Write(fade)
			return
		default:
			synthesize(buf, pos, -1, 0)
			if _, err := player.Write(buf); err != nil {
				log.WithFields(log.Fields{
					"prefix": logPrefix,
					"error":  err,
				}).Warn("audio write failed")
				return
			}
			pos += chunkSamples
		}
	}
}

func (s *ToneSounder) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

func (s *ToneSounder) stopLocked() {
	if !s.playing {
		return
	}

	close(s.stop)
	<-s.done
	s.playing = false
}

func (s *ToneSounder) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.stopLocked()

	if s.context != nil {
		err := s.context.Close()
		s.context = nil
		return err
	}
	return nil
}
