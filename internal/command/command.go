// Package command implements a recursive command tree for chat input.
// Branches route by consuming one token each; leaves are invocable and
// carry the role required to run them. A branch may designate a default
// leaf that catches anything its children do not match.
package command

import (
	"soundbored/internal/permissions"
)

// User identifies who typed the command.
type User struct {
	Name string
	Role permissions.Role
}

// HandlerFunc runs a leaf command. Arguments arrive as raw chat tokens;
// handlers validate them immediately and return an error to reject the
// invocation without side effects. The error is never shown in chat.
type HandlerFunc func(user User, args ...string) error

// Node is either a *Leaf or a *Branch.
type Node interface {
	node()
}

// Leaf is a terminal, invocable command.
type Leaf struct {
	Allows      permissions.Role
	Description string
	Example     string // format string, %s is the live prefix
	Run         HandlerFunc
}

// Branch routes to children by literal token. Default, when set, is
// invoked with the full remaining token sequence whenever the next token
// matches no child (or there are no tokens left).
type Branch struct {
	Children map[string]Node
	Default  *Leaf
}

func (*Leaf) node()   {}
func (*Branch) node() {}
