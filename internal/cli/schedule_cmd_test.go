package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFlag(t *testing.T) {
	today := time.Now()

	d, err := parseDateFlag("")
	require.NoError(t, err)
	assert.Equal(t, today.Day(), d.Day())
	assert.Zero(t, d.Hour())

	d, err = parseDateFlag("today")
	require.NoError(t, err)
	assert.Equal(t, today.Day(), d.Day())

	d, err = parseDateFlag("tomorrow")
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, 1).Day(), d.Day())

	d, err = parseDateFlag("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 10, d.Day())

	_, err = parseDateFlag("01/10/2024")
	assert.Error(t, err)
}

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd(&App{})

	want := []string{"schedule", "project", "task", "goal", "player", "routine", "setup"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %s", name)
	}
}
