package soundboard

import "strings"

// ResolveAlias maps name to its canonical sound name. The name is
// lowercased, then looked up; a single hop only, so if the table maps an
// alias to something that is itself an alias, the target is returned
// as-is. Names without an alias entry come back lowercased but otherwise
// unchanged.
func ResolveAlias(table map[string]string, name string) string {
	lower := strings.ToLower(name)
	if target, ok := table[lower]; ok {
		return target
	}
	return lower
}
