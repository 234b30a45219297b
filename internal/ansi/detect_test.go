package ansi_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-cli/internal/ansi"
)

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, ansi.ColorEnabled(ansi.ColorAlways, f.Fd(), "1"))
	assert.False(t, ansi.ColorEnabled(ansi.ColorNever, f.Fd(), ""))
	assert.False(t, ansi.ColorEnabled(ansi.ColorAuto, f.Fd(), ""), "regular file is not a terminal")
	assert.False(t, ansi.ColorEnabled(ansi.ColorAuto, f.Fd(), "1"))
}
