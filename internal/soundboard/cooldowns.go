package soundboard

import (
	"maps"
	"time"

	"soundbored/internal/storage"
)

// CooldownField selects which half of a sound's cooldown record an
// operation touches.
type CooldownField int

const (
	PerUser CooldownField = iota
	PerSound
)

func (f CooldownField) String() string {
	if f == PerUser {
		return "user"
	}
	return "sound"
}

// SetCooldown returns a copy of table where sound's selected field is set
// to d, preserving the other field. The untouched field must survive: the
// two windows share one record precisely so that setting one never zeroes
// the other.
func SetCooldown(table map[string]storage.Cooldown, sound string, field CooldownField, d time.Duration) map[string]storage.Cooldown {
	out := maps.Clone(table)
	if out == nil {
		out = map[string]storage.Cooldown{}
	}

	record := out[sound]
	switch field {
	case PerUser:
		record.PerUser = d.Milliseconds()
	case PerSound:
		record.PerSound = d.Milliseconds()
	}

	return normalize(out, sound, record)
}

// ClearCooldown returns a copy of table with sound's selected field
// zeroed. When the record has no existing entry the table is returned
// unchanged.
func ClearCooldown(table map[string]storage.Cooldown, sound string, field CooldownField) map[string]storage.Cooldown {
	record, ok := table[sound]
	if !ok {
		return table
	}

	out := maps.Clone(table)
	switch field {
	case PerUser:
		record.PerUser = 0
	case PerSound:
		record.PerSound = 0
	}

	return normalize(out, sound, record)
}

// normalize keeps the table sparse: a sound appears only while at least
// one field is nonzero.
func normalize(table map[string]storage.Cooldown, sound string, record storage.Cooldown) map[string]storage.Cooldown {
	if record.PerUser == 0 && record.PerSound == 0 {
		delete(table, sound)
	} else {
		table[sound] = record
	}
	return table
}
