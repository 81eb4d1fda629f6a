package display

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf16"
)

// RGB is a resolved swatch color, one byte per channel.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase #RRGGBB string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NeutralGray is returned for empty or blank labels (#CBD5E1).
var NeutralGray = RGB{0xCB, 0xD5, 0xE1}

// reModifier matches a tone modifier followed by a base color name,
// separated by a space or hyphen ("dark green", "dusty-rose").
var reModifier = regexp.MustCompile(`^(dark|light|deep|pale|bright|soft|medium|dusty)[\s-]?(.+)$`)

// compoundSeparators split a two-color label ("blue + white", "black and
// gold"). Checked in order; the first separator present wins.
var compoundSeparators = []string{"+", " and ", "&", "-"}

// Resolver maps free-text color labels to swatch colors. It always succeeds:
// labels outside the palette fall through a modifier parser, a two-color
// blender, a per-word lookup, and finally a deterministic hash. The zero
// value is not usable; construct with NewResolver.
type Resolver struct {
	palette map[string]RGB
}

// NewResolver returns a Resolver over the given palette. The map is copied so
// callers cannot mutate it afterwards. A nil palette selects DefaultPalette.
func NewResolver(palette map[string]RGB) *Resolver {
	if palette == nil {
		palette = DefaultPalette
	}
	copied := make(map[string]RGB, len(palette))
	for k, v := range palette {
		copied[strings.ToLower(k)] = v
	}
	return &Resolver{palette: copied}
}

// Resolve maps a color label to a swatch color. The rules are ordered and the
// first applicable one wins:
//
//  1. blank label -> NeutralGray
//  2. exact palette match
//  3. modifier + base ("dark green"): resolve base, apply channel transform
//  4. two-color compound ("blue + white"): blend both halves 50/50
//  5. any single word of the label matching the palette
//  6. deterministic hash -> hue, fixed saturation/lightness
//
// Identical input always yields the identical color, which keeps swatches
// stable across renders and across processes.
func (r *Resolver) Resolve(label string) RGB {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return NeutralGray
	}

	if c, ok := r.palette[label]; ok {
		return c
	}

	if m := reModifier.FindStringSubmatch(label); m != nil {
		base := r.Resolve(m[2])
		return applyModifier(m[1], base)
	}

	for _, sep := range compoundSeparators {
		if strings.Contains(label, sep) {
			parts := strings.SplitN(label, sep, 2)
			a := r.exactOrHash(strings.TrimSpace(parts[0]))
			b := r.exactOrHash(strings.TrimSpace(parts[1]))
			return blend(a, b)
		}
	}

	for _, word := range strings.Fields(label) {
		if c, ok := r.palette[word]; ok {
			return c
		}
	}

	return hashColor(label)
}

// ResolveHex is Resolve for callers that only need the #RRGGBB string.
func (r *Resolver) ResolveHex(label string) string {
	return r.Resolve(label).Hex()
}

// exactOrHash resolves one half of a compound label. Compound halves do not
// recurse through the full rule chain; they either hit the palette or fall
// straight to the hash.
func (r *Resolver) exactOrHash(label string) RGB {
	if label == "" {
		return NeutralGray
	}
	if c, ok := r.palette[label]; ok {
		return c
	}
	return hashColor(label)
}

// applyModifier transforms a base color by the named tone modifier. Each
// channel is clamped to [0,255] after the transform.
func applyModifier(modifier string, base RGB) RGB {
	transform := func(c uint8) uint8 { return c }
	switch modifier {
	case "dark", "deep":
		transform = func(c uint8) uint8 {
			return clampChannel(float64(c) * 0.7)
		}
	case "light", "pale", "soft":
		transform = func(c uint8) uint8 {
			return clampChannel(float64(c) + (255-float64(c))*0.7)
		}
	case "bright":
		avg := (float64(base.R) + float64(base.G) + float64(base.B)) / 3
		transform = func(c uint8) uint8 {
			return clampChannel(float64(c) + (float64(c)-avg)*0.5)
		}
	case "dusty":
		transform = func(c uint8) uint8 {
			return clampChannel((float64(c) + 128) / 2)
		}
	case "medium":
		transform = func(c uint8) uint8 {
			return clampChannel(float64(c) * 0.9)
		}
	}
	return RGB{transform(base.R), transform(base.G), transform(base.B)}
}

// blend averages two colors per channel, flooring the result.
func blend(a, b RGB) RGB {
	return RGB{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Floor(v))
}

// labelHash is the classic polynomial rolling hash (h = h*31 + code unit)
// over UTF-16 code units with 32-bit signed wraparound. The exact bit
// behavior matters: swatch colors produced by the hash fallback must not
// change across releases or hosts.
func labelHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	return h
}

// hashColor maps an arbitrary label to a stable, reasonably saturated color:
// hue from the hash, saturation 70%, lightness 60%.
func hashColor(label string) RGB {
	hue := int(labelHash(label)) % 360
	if hue < 0 {
		hue += 360
	}
	return hslToRGB(float64(hue), 0.70, 0.60)
}

// hslToRGB converts HSL to RGB using the standard sector formula.
// h is in degrees [0,360), s and l in [0,1].
func hslToRGB(h, s, l float64) RGB {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}
