package configvalues

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spkconfig/apperrors"
)

func TestDefaultsPopulatesEveryKey(t *testing.T) {
	v := Defaults()

	m := v.Map()
	assert.Len(t, m, len(Keys()))
	for _, key := range Keys() {
		def, ok := Default(key)
		require.True(t, ok, "key %s should have a default", key)
		assert.Equal(t, def, m[key], "key %s should hold its default", key)
	}
	assert.Equal(t, 6, v.SulfurOreVeinsPerChunk)
	assert.Equal(t, 32, v.PotassiumOreMaxHeight)
}

func TestResetOverwritesPriorState(t *testing.T) {
	v := Defaults()
	v.SulfurOreVeinSize = 99
	require.NoError(t, v.Set("gunpowder_craft_yield", 12))

	v.Reset()

	assert.Equal(t, Defaults(), v)
}

func TestSetAndGet(t *testing.T) {
	v := Defaults()

	require.NoError(t, v.Set("potassium_ore_vein_size", 11))

	got, ok := v.Get("potassium_ore_vein_size")
	assert.True(t, ok)
	assert.Equal(t, 11, got)
	assert.Equal(t, 11, v.PotassiumOreVeinSize, "Set should write through to the typed field.")
}

func TestSetUnknownKey(t *testing.T) {
	v := Defaults()

	err := v.Set("copper_ore_vein_size", 3)

	assert.ErrorIs(t, err, apperrors.ErrUnknownKey)
	assert.Equal(t, Defaults(), v, "an unknown key must not change any setting")

	_, ok := v.Get("copper_ore_vein_size")
	assert.False(t, ok)
	_, ok = Default("copper_ore_vein_size")
	assert.False(t, ok)
}

func TestKeysAreSortedAndUnique(t *testing.T) {
	keys := Keys()

	assert.True(t, sort.StringsAreSorted(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
	assert.Len(t, keys, len(entries))
}

func TestMapIsACopy(t *testing.T) {
	v := Defaults()

	m := v.Map()
	m["sulfur_ore_vein_size"] = 1000

	assert.Equal(t, 9, v.SulfurOreVeinSize)
}
