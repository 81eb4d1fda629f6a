package display

// DefaultPalette maps lowercase color labels to swatch colors. It covers the
// basic web colors plus the fashion and neutral tones sellers actually type
// into listing forms. Keys must be lowercase; Resolve normalizes input before
// lookup.
var DefaultPalette = map[string]RGB{
	"red":       {0xEF, 0x44, 0x44},
	"orange":    {0xF9, 0x73, 0x16},
	"amber":     {0xF5, 0x9E, 0x0B},
	"yellow":    {0xEA, 0xB3, 0x08},
	"lime":      {0x84, 0xCC, 0x16},
	"green":     {0x22, 0xC5, 0x5E},
	"emerald":   {0x10, 0xB9, 0x81},
	"teal":      {0x14, 0xB8, 0xA6},
	"cyan":      {0x06, 0xB6, 0xD4},
	"sky":       {0x0E, 0xA5, 0xE9},
	"blue":      {0x3B, 0x82, 0xF6},
	"indigo":    {0x63, 0x66, 0xF1},
	"violet":    {0x8B, 0x5C, 0xF6},
	"purple":    {0xA8, 0x55, 0xF7},
	"fuchsia":   {0xD9, 0x46, 0xEF},
	"pink":      {0xEC, 0x48, 0x99},
	"rose":      {0xF4, 0x3F, 0x5E},
	"black":     {0x00, 0x00, 0x00},
	"white":     {0xFF, 0xFF, 0xFF},
	"gray":      {0x6B, 0x72, 0x80},
	"grey":      {0x6B, 0x72, 0x80},
	"silver":    {0xC0, 0xC0, 0xC0},
	"charcoal":  {0x36, 0x45, 0x4F},
	"brown":     {0x92, 0x40, 0x0E},
	"beige":     {0xF5, 0xF5, 0xDC},
	"cream":     {0xFF, 0xFD, 0xD0},
	"ivory":     {0xFF, 0xFF, 0xF0},
	"tan":       {0xD2, 0xB4, 0x8C},
	"khaki":     {0xF0, 0xE6, 0x8C},
	"nude":      {0xE3, 0xBC, 0x9A},
	"navy":      {0x1E, 0x3A, 0x8A},
	"denim":     {0x15, 0x60, 0xBD},
	"maroon":    {0x7F, 0x1D, 0x1D},
	"burgundy":  {0x80, 0x00, 0x20},
	"olive":     {0x80, 0x80, 0x00},
	"gold":      {0xFF, 0xD7, 0x00},
	"coral":     {0xFF, 0x7F, 0x50},
	"salmon":    {0xFA, 0x80, 0x72},
	"peach":     {0xFF, 0xDA, 0xB9},
	"mint":      {0xA7, 0xF3, 0xD0},
	"lavender":  {0xE6, 0xE6, 0xFA},
	"turquoise": {0x40, 0xE0, 0xD0},
	"mustard":   {0xFF, 0xDB, 0x58},
}
