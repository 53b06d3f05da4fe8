// Package tts speaks chat-requested text through espeak-ng. Sends are
// fire-and-forget and rate limited so chat cannot flood the speaker.
package tts

import (
	"os/exec"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const defaultBinary = "espeak-ng"

type Speaker struct {
	binary  string
	limiter *rate.Limiter
	log     zerolog.Logger
}

func New(logger zerolog.Logger) *Speaker {
	return &Speaker{
		binary:  defaultBinary,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 3),
		log:     logger.With().Str("component", "tts").Logger(),
	}
}

// Say speaks text and returns immediately. Requests over the rate limit
// are dropped.
func (s *Speaker) Say(text string) {
	if text == "" {
		return
	}
	if !s.limiter.Allow() {
		s.log.Warn().Msg("tts rate limit hit, dropping message")
		return
	}

	go func() {
		if err := exec.Command(s.binary, text).Run(); err != nil {
			s.log.Warn().Err(err).Msg("tts playback failed")
		}
	}()
}
