package command

import (
	"fmt"
	"sort"
	"strings"

	"soundbored/internal/permissions"
)

// Info is one invocable command as presented to a chat frontend.
type Info struct {
	Path        string
	Allows      permissions.Role
	Description string
	Example     string
}

// Describe flattens the tree into a sorted list of leaves, rendering each
// example template with the current prefix.
func Describe(root *Branch, prefix string) []Info {
	var infos []Info
	describeBranch(root, nil, prefix, &infos)
	return infos
}

func describeBranch(branch *Branch, path []string, prefix string, out *[]Info) {
	names := make([]string, 0, len(branch.Children))
	for name := range branch.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sub := append(path[:len(path):len(path)], name)
		switch n := branch.Children[name].(type) {
		case *Leaf:
			example := n.Example
			if strings.Contains(example, "%s") {
				example = fmt.Sprintf(example, prefix)
			}
			*out = append(*out, Info{
				Path:        strings.Join(sub, " "),
				Allows:      n.Allows,
				Description: n.Description,
				Example:     example,
			})
		case *Branch:
			describeBranch(n, sub, prefix, out)
		}
	}
}
