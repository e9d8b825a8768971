package main

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// speaker turns the core's audio-tick callback (cycles elapsed since
// the previous $C030 toggle) into queued square-wave samples, the
// "queue a waveform sample of appropriate length" contract SPEC_FULL
// describes for the host's speaker consumer.
type speaker struct {
	ctx    *audio.Context
	player *audio.Player
	level  int16
}

func newSpeaker() *speaker {
	ctx := audio.NewContext(sampleRate)
	p, _ := ctx.NewPlayer(bytes.NewReader(nil))
	return &speaker{ctx: ctx, player: p}
}

// cpuHz is the 6502's approximate clock rate in an Apple II Plus,
// used to convert a cycle count into a sample count.
const cpuHz = 1_023_000

// onTick is wired as the machine's audio-tick callback.
func (s *speaker) onTick(cyclesSinceLast uint64) {
	if cyclesSinceLast == 0 {
		return
	}
	s.level = -s.level
	if s.level == 0 {
		s.level = 1
	}

	samples := int(cyclesSinceLast * sampleRate / cpuHz)
	if samples <= 0 {
		samples = 1
	}
	if samples > sampleRate {
		samples = sampleRate // clamp a stray huge gap to one second
	}

	// Stereo 16-bit little-endian PCM, matching audio.Context's
	// default sample format.
	buf := make([]byte, samples*4)
	v := uint16(4000 * s.level)
	for i := 0; i < samples; i++ {
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}

	p, err := s.ctx.NewPlayer(bytes.NewReader(buf))
	if err != nil {
		return
	}
	p.Play()
}
