package palette

import "strconv"

// Fallback is used for drivers without a team colour.
var Fallback = RGB{255, 255, 255}

var driverColors = map[string]RGB{
	"HAM": {0, 200, 200},
	"VER": {30, 65, 255},
	"LEC": {220, 0, 0},
	"NOR": {255, 135, 0},
	"SAI": {220, 0, 0},
	"PER": {30, 65, 255},
	"RUS": {0, 200, 200},
	"ALO": {0, 120, 40},
}

// ParseHex parses "RRGGBB" or "#RRGGBB".
func ParseHex(s string) (RGB, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// ColorFor prefers the fixed driver table, then the team colour reported by
// the provider, then Fallback.
func ColorFor(code, teamColour string) RGB {
	if c, ok := driverColors[code]; ok {
		return c
	}
	if c, ok := ParseHex(teamColour); ok {
		return c
	}
	return Fallback
}
