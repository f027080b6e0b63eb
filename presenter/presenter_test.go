package presenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spkconfig/configvalues"
)

func TestPrintSettingsMarksOverrides(t *testing.T) {
	values := configvalues.Defaults()
	require.NoError(t, values.Set("gunpowder_craft_yield", 8))
	var buf bytes.Buffer

	PrintSettings(&buf, "/tmp/cfg/sulfurpotassiummod.json", values)

	out := buf.String()
	assert.Contains(t, out, "File: /tmp/cfg/sulfurpotassiummod.json")
	assert.Contains(t, out, "Overridden settings: 1")

	var yieldLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "gunpowder_craft_yield") {
			yieldLine = line
		}
	}
	require.NotEmpty(t, yieldLine)
	assert.Equal(t, []string{"gunpowder_craft_yield", "8*", "4"}, strings.Fields(yieldLine))
}

func TestPrintSettingsListsEveryKey(t *testing.T) {
	var buf bytes.Buffer

	PrintSettings(&buf, "mod.json", configvalues.Defaults())

	out := buf.String()
	for _, key := range configvalues.Keys() {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, "*")
	assert.Contains(t, out, "Overridden settings: 0")
}
