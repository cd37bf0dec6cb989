package theme

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dhanuzh/termbg"
)

// Theme is a palette for the CLI report, tuned for one kind of background.
type Theme struct {
	Name        string
	Description string
	Type        string // "dark" or "light"

	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color

	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Border    lipgloss.Color
}

// Registry holds all available themes
type Registry struct {
	themes map[string]*Theme
}

// NewRegistry creates a new theme registry with builtin themes
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}
	r.registerBuiltinThemes()
	return r
}

// Get returns a theme by name
func (r *Registry) Get(name string) (*Theme, error) {
	theme, ok := r.themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	return theme, nil
}

// List returns all available theme names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ListByType returns themes filtered by type (dark/light)
func (r *Registry) ListByType(themeType string) []string {
	var names []string
	for _, name := range r.List() {
		if r.themes[name].Type == themeType {
			names = append(names, name)
		}
	}
	return names
}

// Register registers a custom theme
func (r *Registry) Register(theme *Theme) {
	r.themes[theme.Name] = theme
}

// ForBackground picks the dark or light theme by name, depending on the
// detected background. The named theme has to match the background type.
func (r *Registry) ForBackground(bg termbg.Theme, dark, light string) (*Theme, error) {
	name, want := dark, "dark"
	if bg == termbg.Light {
		name, want = light, "light"
	}
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if t.Type != want {
		return nil, fmt.Errorf("theme %s is a %s theme, need %s", name, t.Type, want)
	}
	return t, nil
}

// Styles are the lipgloss styles the report renders with.
type Styles struct {
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Header lipgloss.Style
	Box    lipgloss.Style
}

// Styles builds the report styles for t.
func (t *Theme) Styles() Styles {
	return Styles{
		Label:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(9),
		Value:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
		Header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// Swatch renders a small block filled with c.
func Swatch(c termbg.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render("    ")
}
