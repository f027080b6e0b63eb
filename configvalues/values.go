// Package configvalues holds the Sulfur & Potassium mod settings.
//
// Settings are plain int fields on Values. The key table binds each field to
// its lower_snake_case name in the config file and to its default, so the
// string-keyed view only exists where the file is read or written.
package configvalues

import (
	"fmt"
	"sort"

	"spkconfig/apperrors"
)

// Values holds every tunable setting of the mod.
type Values struct {
	SulfurOreVeinsPerChunk     int
	SulfurOreVeinSize          int
	SulfurOreMinHeight         int
	SulfurOreMaxHeight         int
	PotassiumOreVeinsPerChunk  int
	PotassiumOreVeinSize       int
	PotassiumOreMinHeight      int
	PotassiumOreMaxHeight      int
	GunpowderCraftYield        int
	FertilizerBonemealStrength int
}

type entry struct {
	key   string
	def   int
	field func(*Values) *int
}

var entries = []entry{
	{"sulfur_ore_veins_per_chunk", 6, func(v *Values) *int { return &v.SulfurOreVeinsPerChunk }},
	{"sulfur_ore_vein_size", 9, func(v *Values) *int { return &v.SulfurOreVeinSize }},
	{"sulfur_ore_min_height", 0, func(v *Values) *int { return &v.SulfurOreMinHeight }},
	{"sulfur_ore_max_height", 48, func(v *Values) *int { return &v.SulfurOreMaxHeight }},
	{"potassium_ore_veins_per_chunk", 4, func(v *Values) *int { return &v.PotassiumOreVeinsPerChunk }},
	{"potassium_ore_vein_size", 7, func(v *Values) *int { return &v.PotassiumOreVeinSize }},
	{"potassium_ore_min_height", 0, func(v *Values) *int { return &v.PotassiumOreMinHeight }},
	{"potassium_ore_max_height", 32, func(v *Values) *int { return &v.PotassiumOreMaxHeight }},
	{"gunpowder_craft_yield", 4, func(v *Values) *int { return &v.GunpowderCraftYield }},
	{"fertilizer_bonemeal_strength", 3, func(v *Values) *int { return &v.FertilizerBonemealStrength }},
}

var byKey = func() map[string]entry {
	m := make(map[string]entry, len(entries))
	for _, e := range entries {
		m[e.key] = e
	}
	return m
}()

// Defaults returns a new Values populated with the built-in defaults.
func Defaults() *Values {
	v := &Values{}
	v.Reset()
	return v
}

// Reset overwrites every setting with its default value.
func (v *Values) Reset() {
	for _, e := range entries {
		*e.field(v) = e.def
	}
}

// Set updates the setting stored under key.
func (v *Values) Set(key string, value int) error {
	e, ok := byKey[key]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownKey, key)
	}
	*e.field(v) = value
	return nil
}

// Get returns the current value for key.
func (v *Values) Get(key string) (int, bool) {
	e, ok := byKey[key]
	if !ok {
		return 0, false
	}
	return *e.field(v), true
}

// Map returns a copy of all settings keyed by their config file name.
func (v *Values) Map() map[string]int {
	m := make(map[string]int, len(entries))
	for _, e := range entries {
		m[e.key] = *e.field(v)
	}
	return m
}

// Keys returns every known key in lexicographic order.
func Keys() []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.key)
	}
	sort.Strings(keys)
	return keys
}

// Default returns the built-in value for key.
func Default(key string) (int, bool) {
	e, ok := byKey[key]
	return e.def, ok
}
