package render

import (
	"image/color"

	"github.com/hsluv/hsluv-go"

	"tileroam/internal/world"
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// Hue returns a saturated colour at hue degrees on the HSLuv wheel, so
// every hue reads equally bright.
func Hue(degrees float64) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(degrees, 75, 50)
	return color.RGBA{R: uint8(r * 0xff), G: uint8(g * 0xff), B: uint8(b * 0xff), A: 0xff}
}

// mimicHue sits between the troll cyan and goblin red.
const mimicHue = 285

// Palette maps display codes (world.Tile values) to colours.
func Palette() []color.RGBA {
	p := make([]color.RGBA, len(world.Tiles()))
	p[world.Empty] = rgb(0xa8a29e)
	p[world.Grass] = rgb(0x86efac)
	p[world.StompedGrass] = rgb(0xbbf7d0)
	p[world.Stone] = rgb(0x6b7280)
	p[world.Tree] = rgb(0x16a34a)
	p[world.Orc] = rgb(0xfef9c3)
	p[world.Troll] = rgb(0x67e8f9)
	p[world.Goblin] = rgb(0xfca5a5)
	p[world.Mimic] = Hue(mimicHue)
	return p
}
