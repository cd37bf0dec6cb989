package termbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		want    Color
		wantErr error
	}{
		{"unset", nil, Color{}, ErrUnsupported},
		{"no background field", ptr("15"), Color{}, ErrUnsupported},
		{"black background", ptr("15;0"), Color{}, nil},
		{"white background", ptr("0;15"), Color{R: 0xff00, G: 0xff00, B: 0xff00}, nil},
		{"bright blue", ptr("0;12"), Color{R: 0x5c00, G: 0x5c00, B: 0xff00}, nil},
		{"white normal", ptr("0;7"), Color{R: 0xe500, G: 0xe500, B: 0xe500}, nil},
		{"three fields", ptr("0;default;15"), Color{}, ErrParse},
		{"rxvt three fields", ptr("15;0;0"), Color{}, nil},
		{"beyond palette", ptr("0;16"), Color{}, nil},
		{"byte max", ptr("0;255"), Color{}, nil},
		{"overflow", ptr("0;256"), Color{}, ErrParse},
		{"not decimal", ptr("0;abc"), Color{}, ErrParse},
		{"negative", ptr("0;-1"), Color{}, ErrParse},
		{"empty field", ptr("0;"), Color{}, ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{}
			if tt.value != nil {
				env["COLORFGBG"] = *tt.value
			}
			got, err := colorFromEnv(envMap(env))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsoleColor(t *testing.T) {
	tests := []struct {
		name string
		attr uint16
		want Color
	}{
		{"black", 0x0000, Color{}},
		{"foreground bits ignored", 0x000f, Color{}},
		{"red", backgroundRed, Color{R: 0x8000}},
		{"green", backgroundGreen, Color{G: 0x8000}},
		{"blue", backgroundBlue, Color{B: 0x8000}},
		{"gray", backgroundRed | backgroundGreen | backgroundBlue, Color{R: 0xc000, G: 0xc000, B: 0xc000}},
		{"dark gray", backgroundIntensity, Color{R: 0x8000, G: 0x8000, B: 0x8000}},
		{"bright yellow", backgroundIntensity | backgroundRed | backgroundGreen, Color{R: 0xff00, G: 0xff00}},
		{"white", 0x00f0, Color{R: 0xff00, G: 0xff00, B: 0xff00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, consoleColor(tt.attr))
		})
	}
}

func ptr(s string) *string { return &s }
