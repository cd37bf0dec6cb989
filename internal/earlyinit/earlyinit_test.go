package earlyinit

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/Dhanuzh/termbg"
)

func TestApply(t *testing.T) {
	assert.True(t, lipgloss.HasDarkBackground(), "init presets a dark background")

	Apply(termbg.Light)
	assert.False(t, lipgloss.HasDarkBackground())

	Apply(termbg.Dark)
	assert.True(t, lipgloss.HasDarkBackground())
}
