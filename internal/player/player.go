// Package player plays sound files through the local audio device. The
// known-sound set is whatever audio files sit in the configured
// directory; files are decoded with ffmpeg and fed to the speaker.
package player

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/rs/zerolog"
)

const (
	channels   = 2
	sampleRate = 48000
)

var soundExtensions = map[string]bool{
	".mp3":  true,
	".ogg":  true,
	".opus": true,
	".wav":  true,
	".flac": true,
}

type Player struct {
	ctx    *oto.Context
	sounds map[string]string // canonical name -> file path
	log    zerolog.Logger

	mu      sync.Mutex
	playing string
	stop    chan struct{}
}

// New scans dir for playable files and opens the audio device. Sound
// names are lowercased file stems.
func New(dir string, logger zerolog.Logger) (*Player, error) {
	sounds, err := scanSounds(dir)
	if err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	return &Player{
		ctx:    ctx,
		sounds: sounds,
		log:    logger.With().Str("component", "player").Logger(),
	}, nil
}

func scanSounds(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read sounds dir: %w", err)
	}

	sounds := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !soundExtensions[ext] {
			continue
		}
		name := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		sounds[name] = filepath.Join(dir, entry.Name())
	}
	return sounds, nil
}

// Has reports whether name is a known sound.
func (p *Player) Has(name string) bool {
	_, ok := p.sounds[name]
	return ok
}

// Sounds returns every known sound name, sorted.
func (p *Player) Sounds() []string {
	names := make([]string, 0, len(p.sounds))
	for name := range p.sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Playing returns the sound currently playing, or "" when idle.
func (p *Player) Playing() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Play starts name if the device is idle. A request arriving while a
// sound is playing is dropped; the first request wins.
func (p *Player) Play(name, requestedBy string) {
	path, ok := p.sounds[name]
	if !ok {
		return
	}

	p.mu.Lock()
	if p.playing != "" {
		p.mu.Unlock()
		return
	}
	p.playing = name
	p.stop = make(chan struct{})
	stop := p.stop
	p.mu.Unlock()

	p.log.Info().Str("sound", name).Str("requested_by", requestedBy).Msg("playing")
	go p.run(name, path, stop)
}

// Stop interrupts the current sound. Ignored when nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing == "" {
		return
	}
	close(p.stop)
	p.stop = nil
	p.playing = ""
}

func (p *Player) run(name, path string, stop chan struct{}) {
	defer p.finish(name)

	pcm, cleanup, err := decodePipe(path)
	if err != nil {
		p.log.Warn().Err(err).Str("sound", name).Msg("decode failed")
		return
	}
	defer cleanup()

	speaker := p.ctx.NewPlayer(pcm)
	defer speaker.Close()
	speaker.Play()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for speaker.IsPlaying() {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

// finish clears the busy flag, unless Stop already did.
func (p *Player) finish(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing == name {
		p.playing = ""
		p.stop = nil
	}
}
