package ui

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const (
	sampleRate = 44100
	toneHz     = 440
)

// audio turns the sound timer state into a square-wave beep. The host
// loop feeds one frame of samples per tick while the buzzer is active;
// the portaudio callback plays silence when the channel runs dry.
type audio struct {
	stream  *portaudio.Stream
	channel chan float32
	sample  int
}

func newAudio() *audio {
	a := &audio{}
	a.channel = make(chan float32, sampleRate)
	return a
}

func (a *audio) start() error {
	portaudio.Initialize()
	cb := func(out []float32) {
		for i := range out {
			select {
			case x := <-a.channel:
				out[i] = x * 0.05
			default:
				out[i] = 0
			}
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, 0, cb)
	if err != nil {
		return fmt.Errorf("Failed to open the audio stream: %w", err)
	}
	a.stream = stream
	if err := stream.Start(); err != nil {
		return fmt.Errorf("Failed to start the audio stream: %w", err)
	}
	return nil
}

// feed pushes one 60Hz frame worth of square wave while the buzzer is
// active.
func (a *audio) feed(active bool) {
	if !active {
		a.sample = 0
		return
	}
	half := sampleRate / toneHz / 2
	for i := 0; i < sampleRate/ticksPerSecond; i++ {
		x := float32(1)
		if (a.sample/half)%2 == 1 {
			x = -1
		}
		select {
		case a.channel <- x:
		default:
		}
		a.sample++
	}
}

func (a *audio) terminate() {
	portaudio.Terminate()
	a.stream.Close()
}
