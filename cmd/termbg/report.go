package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dhanuzh/termbg"
	"github.com/Dhanuzh/termbg/internal/theme"
)

// report is the outcome of one full probe.
type report struct {
	Term       termbg.Terminal
	Latency    time.Duration
	LatencyErr error
	Color      termbg.Color
	ColorErr   error
	Theme      termbg.Theme
}

type reportView struct {
	Term         termbg.Terminal `json:"term"`
	Latency      string          `json:"latency,omitempty"`
	LatencyError string          `json:"latency_error,omitempty"`
	Color        *termbg.Color   `json:"color,omitempty"`
	Hex          string          `json:"hex,omitempty"`
	Theme        *termbg.Theme   `json:"theme,omitempty"`
	ColorError   string          `json:"color_error,omitempty"`
	ErrorKind    string          `json:"error_kind,omitempty"`
}

func (r report) view() reportView {
	v := reportView{Term: r.Term}
	if r.LatencyErr != nil {
		v.LatencyError = r.LatencyErr.Error()
	} else {
		v.Latency = r.Latency.String()
	}
	if r.ColorErr != nil {
		v.ColorError = r.ColorErr.Error()
		v.ErrorKind = string(termbg.KindOf(r.ColorErr))
		return v
	}
	c, t := r.Color, r.Theme
	v.Color, v.Hex, v.Theme = &c, c.Hex(), &t
	return v
}

func renderText(r report, s theme.Styles) string {
	var lines []string
	line := func(label, value string) {
		lines = append(lines, fmt.Sprintf("%s: %s", s.Label.Render(label), value))
	}

	line("Term", s.Value.Render(r.Term.String()))
	if r.LatencyErr != nil {
		line("Latency", s.Error.Render("detection failed "+r.LatencyErr.Error()))
	} else {
		line("Latency", s.Value.Render(r.Latency.String()))
	}
	if r.ColorErr != nil {
		line("Color", s.Error.Render("detection failed "+r.ColorErr.Error()))
		line("Theme", s.Error.Render("detection failed "+r.ColorErr.Error()))
	} else {
		line("Color", fmt.Sprintf("%s %s %s",
			s.Value.Render(r.Color.String()),
			s.Muted.Render(r.Color.Hex()),
			theme.Swatch(r.Color)))
		line("Theme", s.Value.Render(r.Theme.String()))
	}

	return s.Header.Render("Check terminal background color") + "\n" +
		s.Box.Render(strings.Join(lines, "\n")) + "\n"
}
