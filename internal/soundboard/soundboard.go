// Package soundboard is the dispatch-and-policy engine: it routes chat
// messages into the command tree, gates them by role, and owns alias
// resolution and cooldown bookkeeping. Playback, speech, and persistence
// are collaborators behind narrow interfaces.
package soundboard

import (
	"strings"

	"github.com/rs/zerolog"

	"soundbored/internal/command"
	"soundbored/internal/storage"
)

// Player is the playback collaborator. Playing returns the name of the
// sound currently playing, or "" when idle.
type Player interface {
	Playing() string
	Play(sound, requestedBy string)
	Stop()
	Has(sound string) bool
}

// Speaker is the text-to-speech collaborator, fire-and-forget.
type Speaker interface {
	Say(text string)
}

type Engine struct {
	store   *storage.Storage
	player  Player
	speaker Speaker
	tree    *command.Branch
	log     zerolog.Logger
}

func New(store *storage.Storage, player Player, speaker Speaker, logger zerolog.Logger) *Engine {
	e := &Engine{
		store:   store,
		player:  player,
		speaker: speaker,
		log:     logger.With().Str("component", "soundboard").Logger(),
	}
	e.tree = e.buildTree()
	return e
}

// HandleMessage dispatches one chat message to completion. The prefix is
// re-read from the store for every message, so a prefix change applies
// immediately. Anything that is not a successful invocation looks, from
// chat, like nothing happened; only successes are logged.
func (e *Engine) HandleMessage(userName, rawText string) command.Result {
	prefix, err := e.store.Prefix()
	if err != nil || prefix == "" {
		return command.RoutingMiss
	}
	if !strings.HasPrefix(rawText, prefix) {
		return command.RoutingMiss
	}

	tokens := strings.Fields(strings.TrimPrefix(rawText, prefix))

	role, err := e.store.UserRole(userName)
	if err != nil {
		return command.RoutingMiss
	}
	user := command.User{Name: userName, Role: role}

	result, _ := command.Dispatch(e.tree, user, tokens)
	if result == command.Invoked {
		e.log.Info().
			Str("user", userName).
			Str("role", role.String()).
			Str("command", strings.Join(tokens, " ")).
			Msg("command invoked")
	}
	return result
}

// Commands lists the command surface with examples rendered against the
// live prefix.
func (e *Engine) Commands() []command.Info {
	prefix, err := e.store.Prefix()
	if err != nil {
		prefix = ""
	}
	return command.Describe(e.tree, prefix)
}
