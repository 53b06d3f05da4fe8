package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"soundbored/internal/config"
	"soundbored/internal/logging"
	"soundbored/internal/player"
	"soundbored/internal/soundboard"
	"soundbored/internal/storage"
	"soundbored/internal/tts"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.Setup(cfg.LogPath)

	store, err := storage.New(cfg.StoragePath, cfg.Channel, cfg.Prefix)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	snd, err := player.New(cfg.SoundsDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open player")
	}

	engine := soundboard.New(store, snd, tts.New(logger), logger)

	logger.Info().
		Str("channel", cfg.Channel).
		Int("sounds", len(snd.Sounds())).
		Msg("soundboard ready")
	for _, info := range engine.Commands() {
		logger.Info().
			Str("command", info.Path).
			Str("allows", info.Allows.String()).
			Str("example", info.Example).
			Msg("command registered")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		readChat(ctx, engine)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
	case <-done:
	}
}

// readChat consumes "<user> <message>" lines from stdin, one dispatched
// to completion before the next is read, until EOF or cancellation.
func readChat(ctx context.Context, engine *soundboard.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		parts := strings.SplitN(scanner.Text(), " ", 2)
		if len(parts) != 2 {
			continue
		}
		engine.HandleMessage(parts[0], parts[1])
	}
}
