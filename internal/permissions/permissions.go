package permissions

import (
	"strconv"
	"strings"
)

// Role is an ordered access level. A higher role can do everything the roles
// below it can, so access checks are plain integer comparisons.
type Role int

const (
	None Role = iota
	User
	Editor
	Streamer
)

var roleNames = map[Role]string{
	None:     "None",
	User:     "User",
	Editor:   "Editor",
	Streamer: "Streamer",
}

var rolesByName = map[string]Role{
	"None":     None,
	"User":     User,
	"Editor":   Editor,
	"Streamer": Streamer,
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Allows reports whether a user holding `have` may run something that
// requires `want`.
func Allows(have, want Role) bool {
	return have >= want
}

// RoleByName resolves a chat-typed role name, tolerating any casing.
// Numeric input is rejected so chat can never address a role by its
// internal rank.
func RoleByName(name string) (Role, bool) {
	if name == "" {
		return None, false
	}
	if _, err := strconv.Atoi(name); err == nil {
		return None, false
	}
	normalized := strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
	role, ok := rolesByName[normalized]
	return role, ok
}
