package ui

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the session's sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundGameOver
)

type audioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *audioSystem

// InitAudio opens the audio device. Without it PlaySound is a no-op,
// so the game still runs on machines with no audio output.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return err
	}
	globalAudio = &audioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated effect. It returns
// immediately; playback runs on its own goroutine.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}

	var samples []byte
	switch kind {
	case SoundEat:
		samples = genEat()
	case SoundGameOver:
		samples = genGameOver()
	}
	if len(samples) == 0 {
		return
	}

	go func() {
		player := globalAudio.ctx.NewPlayer(&soundReader{data: samples})
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo
// channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle saturation so stacked partials never clip hard.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// genEat: short ascending FM pop.
func genEat() []byte {
	n := int(0.08 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.45, 0.0, 0.12)
		freq := 520 + 640*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: descending minor phrase, each note ringing into the next.
func genGameOver() []byte {
	dur := 0.8
	n := int(dur * sampleRate)
	notes := []struct{ freq, onset float64 }{
		{392.00, 0.00}, // G4
		{311.13, 0.15}, // Eb4
		{261.63, 0.30}, // C4
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * sampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / sampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.3, 0.25, 0.4)
			s := fm(t, note.freq, 2.0, 1.8*env) * env * 0.3
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
