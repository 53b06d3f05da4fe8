package command

import (
	"soundbored/internal/permissions"
)

// Result classifies a dispatch outcome. Chat observes none of these;
// everything except Invoked looks like nothing happened. The split exists
// for tests and the action log.
type Result int

const (
	Invoked Result = iota
	RoutingMiss
	PermissionDenied
	Rejected
)

func (r Result) String() string {
	switch r {
	case Invoked:
		return "invoked"
	case RoutingMiss:
		return "routing-miss"
	case PermissionDenied:
		return "permission-denied"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Dispatch walks tokens down the tree from root and invokes the leaf it
// lands on. A token matching a child is consumed; an unmatched (or absent)
// token falls through to the branch's default leaf, which receives the
// ENTIRE remaining sequence — the unmatched token becomes args[0]. The
// returned error carries the rejection reason when the result is Rejected
// and is nil otherwise.
func Dispatch(root *Branch, user User, tokens []string) (Result, error) {
	branch := root
	for {
		if len(tokens) == 0 {
			return invokeDefault(branch, user, tokens)
		}
		child, ok := branch.Children[tokens[0]]
		if !ok {
			return invokeDefault(branch, user, tokens)
		}
		rest := tokens[1:]
		switch n := child.(type) {
		case *Branch:
			branch = n
			tokens = rest
		case *Leaf:
			return invoke(n, user, rest)
		default:
			return RoutingMiss, nil
		}
	}
}

func invokeDefault(branch *Branch, user User, tokens []string) (Result, error) {
	if branch.Default == nil {
		return RoutingMiss, nil
	}
	return invoke(branch.Default, user, tokens)
}

func invoke(leaf *Leaf, user User, args []string) (Result, error) {
	if !permissions.Allows(user.Role, leaf.Allows) {
		return PermissionDenied, nil
	}
	if err := leaf.Run(user, args...); err != nil {
		return Rejected, err
	}
	return Invoked, nil
}
