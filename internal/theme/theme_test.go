package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhanuzh/termbg"
)

func TestBuiltinThemes(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"dusk", "midnight", "paper", "solar"}, r.List())
	assert.Equal(t, []string{"dusk", "midnight"}, r.ListByType("dark"))
	assert.Equal(t, []string{"paper", "solar"}, r.ListByType("light"))

	for _, name := range r.List() {
		th, err := r.Get(name)
		require.NoError(t, err)
		assert.NotEmpty(t, th.Primary, name)
		assert.NotEmpty(t, th.Text, name)
	}
}

func TestForBackground(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name    string
		bg      termbg.Theme
		dark    string
		light   string
		want    string
		wantErr bool
	}{
		{"dark background", termbg.Dark, "midnight", "paper", "midnight", false},
		{"light background", termbg.Light, "midnight", "paper", "paper", false},
		{"unknown name", termbg.Dark, "nope", "paper", "", true},
		{"type mismatch", termbg.Light, "midnight", "dusk", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := r.ForBackground(tt.bg, tt.dark, tt.light)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, th.Name)
		})
	}
}

func TestRegisterOverrides(t *testing.T) {
	r := NewRegistry()
	r.Register(&Theme{Name: "paper", Type: "light", Primary: "#000000"})
	th, err := r.Get("paper")
	require.NoError(t, err)
	assert.Equal(t, "#000000", string(th.Primary))
}

func TestSwatchContainsBlock(t *testing.T) {
	assert.Contains(t, Swatch(termbg.Color{R: 0xffff}), "    ")
}
