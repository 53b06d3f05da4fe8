package soundboard_test

import (
	"testing"
	"time"

	"soundbored/internal/soundboard"
	"soundbored/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCooldown_MergePreservesOtherField(t *testing.T) {
	table := map[string]storage.Cooldown{}

	table = soundboard.SetCooldown(table, "foo", soundboard.PerUser, 5*time.Second)
	table = soundboard.SetCooldown(table, "foo", soundboard.PerSound, 3*time.Second)

	require.Contains(t, table, "foo")
	assert.Equal(t, storage.Cooldown{PerUser: 5000, PerSound: 3000}, table["foo"])
}

func TestSetCooldown_DoesNotMutateInput(t *testing.T) {
	table := map[string]storage.Cooldown{
		"foo": {PerUser: 1000},
	}

	_ = soundboard.SetCooldown(table, "foo", soundboard.PerSound, time.Second)

	assert.Equal(t, storage.Cooldown{PerUser: 1000}, table["foo"])
}

func TestSetCooldown_ZeroingLastFieldDeletesRecord(t *testing.T) {
	table := map[string]storage.Cooldown{
		"foo": {PerUser: 1000},
	}

	table = soundboard.SetCooldown(table, "foo", soundboard.PerUser, 0)

	assert.NotContains(t, table, "foo")
}

func TestClearCooldown(t *testing.T) {
	t.Run("other field nonzero keeps record", func(t *testing.T) {
		table := map[string]storage.Cooldown{
			"foo": {PerUser: 5000, PerSound: 3000},
		}

		table = soundboard.ClearCooldown(table, "foo", soundboard.PerUser)

		require.Contains(t, table, "foo")
		assert.Equal(t, storage.Cooldown{PerUser: 0, PerSound: 3000}, table["foo"])
	})

	t.Run("other field zero deletes record", func(t *testing.T) {
		table := map[string]storage.Cooldown{
			"foo": {PerSound: 3000},
		}

		table = soundboard.ClearCooldown(table, "foo", soundboard.PerSound)

		assert.NotContains(t, table, "foo")
	})

	t.Run("absent record is a no-op", func(t *testing.T) {
		table := map[string]storage.Cooldown{
			"other": {PerUser: 1000},
		}

		got := soundboard.ClearCooldown(table, "foo", soundboard.PerUser)

		assert.Equal(t, table, got)
	})
}
