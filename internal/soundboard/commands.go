package soundboard

import (
	"errors"
	"fmt"
	"strings"

	"soundbored/internal/command"
	"soundbored/internal/permissions"
	"soundbored/internal/storage"
	"soundbored/pkg/duration"
)

var (
	errMissingArgs  = errors.New("missing arguments")
	errUnknownSound = errors.New("unknown sound")
	errBusy         = errors.New("a sound is already playing")
	errIdle         = errors.New("nothing is playing")
	errDisabled     = errors.New("disabled by preference")
)

func (e *Engine) buildTree() *command.Branch {
	play := &command.Leaf{
		Allows:      permissions.User,
		Description: "Play a sound by name or alias",
		Example:     "%sdoot",
		Run:         e.play,
	}

	return &command.Branch{
		Default: play,
		Children: map[string]command.Node{
			"play": play,
			"stop": &command.Leaf{
				Allows:      permissions.User,
				Description: "Stop the sound that is playing",
				Example:     "%sstop",
				Run:         e.stop,
			},
			"say": &command.Leaf{
				Allows:      permissions.Editor,
				Description: "Speak a message aloud",
				Example:     "%ssay hello chat",
				Run:         e.say,
			},
			"role": &command.Leaf{
				Allows:      permissions.Streamer,
				Description: "Assign a role (none, user, editor, streamer) to a user",
				Example:     "%srole someone editor",
				Run:         e.setRole,
			},
			"prefs": &command.Leaf{
				Allows:      permissions.Editor,
				Description: "Toggle a preference on or off",
				Example:     "%sprefs tts off",
				Run:         e.setPref,
			},
			"prefix": &command.Leaf{
				Allows:      permissions.Streamer,
				Description: "Change the command prefix",
				Example:     "%sprefix !sb",
				Run:         e.setPrefix,
			},
			"alias": &command.Branch{
				Children: map[string]command.Node{
					"set": &command.Leaf{
						Allows:      permissions.Editor,
						Description: "Point an alias at a sound",
						Example:     "%salias set boom explosion",
						Run:         e.aliasSet,
					},
					"rm": &command.Leaf{
						Allows:      permissions.Editor,
						Description: "Remove an alias",
						Example:     "%salias rm boom",
						Run:         e.aliasRemove,
					},
				},
			},
			"cooldown": &command.Branch{
				Children: map[string]command.Node{
					"set": &command.Branch{
						Children: map[string]command.Node{
							"user": &command.Leaf{
								Allows:      permissions.Editor,
								Description: "Set a sound's per-user cooldown",
								Example:     "%scooldown set user boom 1m",
								Run:         e.cooldownSet(PerUser),
							},
							"sound": &command.Leaf{
								Allows:      permissions.Editor,
								Description: "Set a sound's global cooldown",
								Example:     "%scooldown set sound boom 30s",
								Run:         e.cooldownSet(PerSound),
							},
						},
					},
					"rm": &command.Branch{
						Children: map[string]command.Node{
							"user": &command.Leaf{
								Allows:      permissions.Editor,
								Description: "Clear a sound's per-user cooldown",
								Example:     "%scooldown rm user boom",
								Run:         e.cooldownClear(PerUser),
							},
							"sound": &command.Leaf{
								Allows:      permissions.Editor,
								Description: "Clear a sound's global cooldown",
								Example:     "%scooldown rm sound boom",
								Run:         e.cooldownClear(PerSound),
							},
						},
					},
				},
			},
		},
	}
}

// canonicalSound resolves an alias and checks the result against the
// player's known sound set. Every handler that names a sound goes
// through here before touching any state.
func (e *Engine) canonicalSound(name string) (string, error) {
	aliases, err := e.store.Aliases()
	if err != nil {
		return "", err
	}
	canonical := ResolveAlias(aliases, name)
	if !e.player.Has(canonical) {
		return "", fmt.Errorf("%w: %s", errUnknownSound, name)
	}
	return canonical, nil
}

func (e *Engine) play(user command.User, args ...string) error {
	if len(args) == 0 {
		return errMissingArgs
	}
	enabled, err := e.store.Pref("sounds")
	if err != nil {
		return err
	}
	if !enabled {
		return fmt.Errorf("%w: sounds", errDisabled)
	}
	canonical, err := e.canonicalSound(args[0])
	if err != nil {
		return err
	}
	// First request wins; anything arriving while busy is dropped.
	if e.player.Playing() != "" {
		return errBusy
	}
	e.player.Play(canonical, user.Name)
	return nil
}

func (e *Engine) stop(command.User, ...string) error {
	if e.player.Playing() == "" {
		return errIdle
	}
	e.player.Stop()
	return nil
}

func (e *Engine) say(_ command.User, args ...string) error {
	if len(args) == 0 {
		return errMissingArgs
	}
	enabled, err := e.store.Pref("tts")
	if err != nil {
		return err
	}
	if !enabled {
		return fmt.Errorf("%w: tts", errDisabled)
	}
	e.speaker.Say(strings.Join(args, " "))
	return nil
}

func (e *Engine) setRole(_ command.User, args ...string) error {
	if len(args) != 2 {
		return errMissingArgs
	}
	role, ok := permissions.RoleByName(args[1])
	if !ok {
		return fmt.Errorf("unknown role: %s", args[1])
	}
	return e.store.SetUserRole(args[0], role)
}

func (e *Engine) setPref(_ command.User, args ...string) error {
	if len(args) != 2 {
		return errMissingArgs
	}
	key := strings.ToLower(args[0])
	if !storage.KnownPref(key) {
		return fmt.Errorf("unknown preference: %s", key)
	}
	var value bool
	switch strings.ToLower(args[1]) {
	case "on", "true":
		value = true
	case "off", "false":
		value = false
	default:
		return fmt.Errorf("unknown value: %s", args[1])
	}
	return e.store.SetPref(key, value)
}

func (e *Engine) setPrefix(_ command.User, args ...string) error {
	if len(args) != 1 {
		return errMissingArgs
	}
	return e.store.SetPrefix(args[0])
}

func (e *Engine) aliasSet(_ command.User, args ...string) error {
	if len(args) != 2 {
		return errMissingArgs
	}
	// Targets resolve one hop only, so an alias may not point at another
	// alias; the target must itself be a playable sound.
	target := strings.ToLower(args[1])
	if !e.player.Has(target) {
		return fmt.Errorf("%w: %s", errUnknownSound, args[1])
	}
	return e.store.SetAlias(strings.ToLower(args[0]), target)
}

func (e *Engine) aliasRemove(_ command.User, args ...string) error {
	if len(args) != 1 {
		return errMissingArgs
	}
	removed, err := e.store.RemoveAlias(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("unknown alias: %s", args[0])
	}
	return nil
}

func (e *Engine) cooldownSet(field CooldownField) command.HandlerFunc {
	return func(_ command.User, args ...string) error {
		if len(args) < 2 {
			return errMissingArgs
		}
		canonical, err := e.canonicalSound(args[0])
		if err != nil {
			return err
		}
		window := duration.Parse(strings.Join(args[1:], " "))
		return e.store.UpdateCooldowns(func(table map[string]storage.Cooldown) map[string]storage.Cooldown {
			return SetCooldown(table, canonical, field, window)
		})
	}
}

func (e *Engine) cooldownClear(field CooldownField) command.HandlerFunc {
	return func(_ command.User, args ...string) error {
		if len(args) != 1 {
			return errMissingArgs
		}
		canonical, err := e.canonicalSound(args[0])
		if err != nil {
			return err
		}
		return e.store.UpdateCooldowns(func(table map[string]storage.Cooldown) map[string]storage.Cooldown {
			return ClearCooldown(table, canonical, field)
		})
	}
}
