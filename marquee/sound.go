package marquee

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

type soundEffect struct {
	buffer *beep.Buffer
	volume float64
}

var audioReady bool
var musicStreamers = map[string]beep.StreamSeekCloser{}
var soundEffects = map[string]*soundEffect{}

func prepareStreamer(file string) (beep.StreamSeekCloser, *beep.Format, error) {
	sound, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	streamer, format, err := mp3.Decode(sound)
	if err != nil {
		return nil, nil, err
	}

	return streamer, &format, nil
}

func prepareBuffer(file string) (*beep.Buffer, error) {
	sound, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	ext := strings.Split(file, ".")[1]

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case "mp3":
		streamer, format, err = mp3.Decode(sound)
	case "wav":
		streamer, format, err = wav.Decode(sound)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}

	if err != nil {
		return nil, err
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	streamer.Close()

	return buffer, nil
}

// InitAudio loads the overture and the chime. A promo splash without sound
// is still a promo splash, so any failure here just disables audio.
func InitAudio() {
	overture, format, err := prepareStreamer("sound/overture.mp3")
	if err != nil {
		fmt.Printf("[Audio] disabled: %v\n", err)
		return
	}
	musicStreamers["overture"] = overture

	chime, err := prepareBuffer("sound/chime.wav")
	if err != nil {
		fmt.Printf("[Audio] disabled: %v\n", err)
		return
	}
	soundEffects["chime"] = &soundEffect{
		buffer: chime,
		volume: -0.9,
	}

	speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	audioReady = true
}

func updateMusic(songName string) {
	if !audioReady {
		return
	}
	if musicStreamers[songName].Position() == musicStreamers[songName].Len() {
		PlaySong(songName)
	}
}

func PlaySong(songName string) {
	if !audioReady {
		return
	}
	speaker.Clear()
	s, ok := musicStreamers[songName]
	if !ok {
		fmt.Printf("[Audio] unknown song: %s\n", songName)
		return
	}

	s.Seek(0)
	speaker.Play(s)
}

func StopMusic() {
	if !audioReady {
		return
	}
	speaker.Clear()
}

func PlaySound(soundName string) {
	if !audioReady {
		return
	}
	soundEffect, ok := soundEffects[soundName]
	if !ok {
		fmt.Printf("[Audio] unknown sound: %s\n", soundName)
		return
	}

	sound := soundEffect.buffer.Streamer(0, soundEffect.buffer.Len())

	volume := &effects.Volume{
		Streamer: sound,
		Base:     10,
		Volume:   soundEffect.volume,
		Silent:   false,
	}

	speaker.Play(volume)
}
