package theme

// registerBuiltinThemes registers all builtin themes
func (r *Registry) registerBuiltinThemes() {
	r.Register(&Theme{
		Name:        "midnight",
		Description: "Cool blues for dark backgrounds",
		Type:        "dark",
		Primary:     "#89b4fa",
		Accent:      "#cba6f7",
		Success:     "#a6e3a1",
		Error:       "#f38ba8",
		Text:        "#cdd6f4",
		TextMuted:   "#7f849c",
		Border:      "#45475a",
	})

	r.Register(&Theme{
		Name:        "dusk",
		Description: "Warm tones for dark backgrounds",
		Type:        "dark",
		Primary:     "#fabd2f",
		Accent:      "#fe8019",
		Success:     "#b8bb26",
		Error:       "#fb4934",
		Text:        "#ebdbb2",
		TextMuted:   "#928374",
		Border:      "#504945",
	})

	r.Register(&Theme{
		Name:        "paper",
		Description: "Ink on paper for light backgrounds",
		Type:        "light",
		Primary:     "#1e66f5",
		Accent:      "#8839ef",
		Success:     "#40a02b",
		Error:       "#d20f39",
		Text:        "#4c4f69",
		TextMuted:   "#8c8fa1",
		Border:      "#bcc0cc",
	})

	r.Register(&Theme{
		Name:        "solar",
		Description: "Solarized accents for light backgrounds",
		Type:        "light",
		Primary:     "#268bd2",
		Accent:      "#d33682",
		Success:     "#859900",
		Error:       "#dc322f",
		Text:        "#586e75",
		TextMuted:   "#93a1a1",
		Border:      "#eee8d5",
	})
}
