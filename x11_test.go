package termbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeX11ScaleLaw(t *testing.T) {
	tests := []struct {
		group string
		want  uint16
	}{
		{"1", 0x1000},
		{"11", 0x1100},
		{"111", 0x1110},
		{"1111", 0x1111},
		{"f", 0xf000},
		{"FF", 0xff00},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			r, g, b, err := DecodeX11(tt.group + "/" + tt.group + "/" + tt.group)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
			assert.Equal(t, tt.want, g)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestDecodeX11MixedWidths(t *testing.T) {
	r, g, b, err := DecodeX11("ffff/cc/9")
	require.NoError(t, err)
	assert.Equal(t, [3]uint16{0xffff, 0xcc00, 0x9000}, [3]uint16{r, g, b})
}

func TestDecodeX11IgnoresExtraGroups(t *testing.T) {
	r, g, b, err := DecodeX11("1/2/3/4")
	require.NoError(t, err)
	assert.Equal(t, [3]uint16{0x1000, 0x2000, 0x3000}, [3]uint16{r, g, b})
}

func TestDecodeX11Errors(t *testing.T) {
	for _, spec := range []string{
		"",
		"ffff",
		"ffff/cccc",
		"/cccc/9999",
		"ffff//9999",
		"ffff/cccc/",
		"fffff/cccc/9999",
		"zzzz/cccc/9999",
		"ffff/cc c/9999",
		"-1/0/0",
		"ffff/cccc/9999\x1b",
		"ü/ü/ü",
	} {
		t.Run(spec, func(t *testing.T) {
			_, _, _, err := DecodeX11(spec)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestSalvageUnterminated(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  bool
	}{
		{"exact", "11;rgb:ffff/cccc/9999", "rgb:ffff/cccc/9999", false},
		{"trailing junk", "11;rgb:ffff/cccc/9999xyz", "rgb:ffff/cccc/9999", false},
		{"short groups", "rgb:ff/cc/99", "rgb:ff/cc/99", false},
		{"third group cut", "rgb:ffff/cccc/99", "", true},
		{"second group short", "rgb:ffff/cc/9999", "", true},
		{"two fragments", "rgb:ffff/cccc", "", true},
		{"no marker", "ffff/cccc/9999", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := salvageUnterminated(tt.response)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
