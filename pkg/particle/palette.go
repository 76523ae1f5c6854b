package particle

import (
	"image/color"
	"math"
	"math/rand"
	"strings"
)

// Palette is an ordered list of color stops. Cycling styles sample it
// with At(t) where t wraps around [0,1); discrete styles pick a fixed
// stop per entity with Pick.
type Palette []color.RGBA

// Named palettes selectable from the host configuration.
var palettes = map[string]Palette{
	"classic": {
		{255, 215, 130, 255}, {255, 255, 255, 255},
		{170, 220, 255, 255}, {255, 180, 220, 255},
	},
	"ocean": {
		{90, 200, 250, 255}, {60, 130, 240, 255},
		{140, 240, 220, 255}, {220, 250, 255, 255},
	},
	"sunset": {
		{255, 150, 80, 255}, {255, 90, 120, 255},
		{250, 210, 120, 255}, {200, 100, 200, 255},
	},
	"forest": {
		{120, 200, 120, 255}, {200, 240, 160, 255},
		{80, 160, 110, 255}, {230, 255, 210, 255},
	},
	"mono": {
		{255, 255, 255, 255}, {200, 200, 200, 255},
		{255, 255, 255, 255}, {160, 160, 160, 255},
	},
}

// Love is the dedicated love-bomb palette. The love-bomb style always
// cycles this one regardless of the configured palette.
var Love = Palette{
	{255, 105, 140, 255}, {255, 60, 90, 255},
	{255, 170, 200, 255}, {230, 30, 70, 255},
}

// Pride is the fixed six-color confetti set. Entities get one stop
// each, no cycling.
var Pride = Palette{
	{228, 3, 3, 255}, {255, 140, 0, 255}, {255, 237, 0, 255},
	{0, 128, 38, 255}, {36, 64, 142, 255}, {115, 41, 130, 255},
}

// Autumn is the fixed per-entity leaf color set.
var Autumn = Palette{
	{196, 98, 16, 255}, {227, 154, 37, 255}, {160, 54, 35, 255},
	{222, 120, 31, 255}, {130, 80, 30, 255}, {206, 170, 60, 255},
}

// Rockets holds the resolved burst colors assigned to fireworks
// rockets.
var Rockets = Palette{
	{255, 80, 80, 255}, {90, 160, 255, 255}, {120, 255, 140, 255},
	{255, 220, 90, 255}, {255, 120, 230, 255}, {150, 240, 255, 255},
	{255, 160, 70, 255},
}

// ByName returns the named cycling palette, falling back to "classic"
// for unknown names.
func ByName(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["classic"]
}

// WithAccent returns a copy of p with the accent color appended as an
// extra stop. Used to blend the host's custom color into a cycling
// palette.
func (p Palette) WithAccent(c color.RGBA) Palette {
	out := make(Palette, len(p), len(p)+1)
	copy(out, p)
	return append(out, c)
}

// At cyclically interpolates the palette at t. Any t is accepted; it
// is wrapped into [0,1).
func (p Palette) At(t float64) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	if len(p) == 1 {
		return p[0]
	}
	t = t - math.Floor(t)
	pos := t * float64(len(p))
	i := int(pos) % len(p)
	j := (i + 1) % len(p)
	f := pos - math.Floor(pos)
	return lerpRGBA(p[i], p[j], f)
}

// Pick returns one random stop of the palette.
func (p Palette) Pick(r *rand.Rand) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	return p[r.Intn(len(p))]
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// ParseHex parses "#rgb" or "#rrggbb" (leading '#' optional). The
// host sanitizes color inputs before they reach the engine, so on a
// malformed value this simply falls back to white.
func ParseHex(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	hex := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}
	white := color.RGBA{255, 255, 255, 255}
	switch len(s) {
	case 3:
		var v [3]uint8
		for i := 0; i < 3; i++ {
			h, ok := hex(s[i])
			if !ok {
				return white
			}
			v[i] = h*16 + h
		}
		return color.RGBA{v[0], v[1], v[2], 255}
	case 6:
		var v [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hex(s[2*i])
			lo, ok2 := hex(s[2*i+1])
			if !ok1 || !ok2 {
				return white
			}
			v[i] = hi*16 + lo
		}
		return color.RGBA{v[0], v[1], v[2], 255}
	}
	return white
}
