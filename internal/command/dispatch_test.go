package command_test

import (
	"errors"
	"testing"

	"soundbored/internal/command"
	"soundbored/internal/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(allows permissions.Role, calls *[][]string) *command.Leaf {
	return &command.Leaf{
		Allows: allows,
		Run: func(_ command.User, args ...string) error {
			*calls = append(*calls, args)
			return nil
		},
	}
}

func TestDispatch_DefaultReceivesFullTokenSequence(t *testing.T) {
	var playCalls, defaultCalls [][]string
	root := &command.Branch{
		Children: map[string]command.Node{
			"play": leaf(permissions.User, &playCalls),
		},
		Default: leaf(permissions.User, &defaultCalls),
	}

	user := command.User{Name: "viewer", Role: permissions.User}
	result, err := command.Dispatch(root, user, []string{"explode"})

	require.NoError(t, err)
	assert.Equal(t, command.Invoked, result)
	assert.Empty(t, playCalls)
	// The unmatched token is not discarded; it is argument 0.
	require.Len(t, defaultCalls, 1)
	assert.Equal(t, []string{"explode"}, defaultCalls[0])
}

func TestDispatch_MatchedChildConsumesToken(t *testing.T) {
	var playCalls [][]string
	root := &command.Branch{
		Children: map[string]command.Node{
			"play": leaf(permissions.User, &playCalls),
		},
	}

	user := command.User{Name: "viewer", Role: permissions.User}
	result, err := command.Dispatch(root, user, []string{"play", "doot"})

	require.NoError(t, err)
	assert.Equal(t, command.Invoked, result)
	require.Len(t, playCalls, 1)
	assert.Equal(t, []string{"doot"}, playCalls[0])
}

func TestDispatch_NestedBranches(t *testing.T) {
	var setUserCalls [][]string
	root := &command.Branch{
		Children: map[string]command.Node{
			"cooldown": &command.Branch{
				Children: map[string]command.Node{
					"set": &command.Branch{
						Children: map[string]command.Node{
							"user": leaf(permissions.Editor, &setUserCalls),
						},
					},
				},
			},
		},
	}

	user := command.User{Name: "mod", Role: permissions.Editor}
	result, err := command.Dispatch(root, user, []string{"cooldown", "set", "user", "boom", "1m"})

	require.NoError(t, err)
	assert.Equal(t, command.Invoked, result)
	require.Len(t, setUserCalls, 1)
	assert.Equal(t, []string{"boom", "1m"}, setUserCalls[0])
}

func TestDispatch_RoutingMissWithoutDefault(t *testing.T) {
	var calls [][]string
	root := &command.Branch{
		Children: map[string]command.Node{
			"stop": leaf(permissions.User, &calls),
		},
	}

	user := command.User{Name: "viewer", Role: permissions.User}

	result, err := command.Dispatch(root, user, []string{"nosuch"})
	require.NoError(t, err)
	assert.Equal(t, command.RoutingMiss, result)

	result, err = command.Dispatch(root, user, nil)
	require.NoError(t, err)
	assert.Equal(t, command.RoutingMiss, result)
	assert.Empty(t, calls)
}

func TestDispatch_PermissionGate(t *testing.T) {
	var calls [][]string
	root := &command.Branch{
		Children: map[string]command.Node{
			"role": leaf(permissions.Streamer, &calls),
		},
	}

	user := command.User{Name: "viewer", Role: permissions.User}
	result, err := command.Dispatch(root, user, []string{"role", "someone", "editor"})

	require.NoError(t, err)
	assert.Equal(t, command.PermissionDenied, result)
	assert.Empty(t, calls)
}

func TestDispatch_ZeroArgumentLeafStillRuns(t *testing.T) {
	var calls [][]string
	root := &command.Branch{
		Children: map[string]command.Node{
			"stop": leaf(permissions.User, &calls),
		},
	}

	user := command.User{Name: "viewer", Role: permissions.User}
	result, err := command.Dispatch(root, user, []string{"stop"})

	require.NoError(t, err)
	assert.Equal(t, command.Invoked, result)
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0])
}

func TestDispatch_HandlerErrorBecomesRejected(t *testing.T) {
	reason := errors.New("unknown sound")
	root := &command.Branch{
		Children: map[string]command.Node{
			"play": &command.Leaf{
				Allows: permissions.User,
				Run: func(_ command.User, _ ...string) error {
					return reason
				},
			},
		},
	}

	user := command.User{Name: "viewer", Role: permissions.User}
	result, err := command.Dispatch(root, user, []string{"play", "ghost"})

	assert.Equal(t, command.Rejected, result)
	assert.ErrorIs(t, err, reason)
}

func TestDescribe(t *testing.T) {
	root := &command.Branch{
		Children: map[string]command.Node{
			"play": &command.Leaf{
				Allows:      permissions.User,
				Description: "Play a sound",
				Example:     "%splay doot",
			},
			"alias": &command.Branch{
				Children: map[string]command.Node{
					"set": &command.Leaf{
						Allows:      permissions.Editor,
						Description: "Add a sound alias",
						Example:     "%salias set boom explosion",
					},
				},
			},
		},
	}

	infos := command.Describe(root, "!")
	require.Len(t, infos, 2)
	assert.Equal(t, "alias set", infos[0].Path)
	assert.Equal(t, "!alias set boom explosion", infos[0].Example)
	assert.Equal(t, "play", infos[1].Path)
	assert.Equal(t, "!play doot", infos[1].Example)
}
