package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tileroam/internal/world"
)

func TestPaletteCoversEveryTile(t *testing.T) {
	p := Palette()
	require.Len(t, p, len(world.Tiles()))
	seen := map[color.RGBA]world.Tile{}
	for _, tile := range world.Tiles() {
		c := p[tile]
		assert.Equal(t, uint8(0xff), c.A, tile.String())
		if other, dup := seen[c]; dup {
			t.Errorf("%v and %v share colour %v", tile, other, c)
		}
		seen[c] = tile
	}
	assert.Equal(t, color.RGBA{R: 0x86, G: 0xef, B: 0xac, A: 0xff}, p[world.Grass])
}

func TestHueVariesAroundTheWheel(t *testing.T) {
	assert.NotEqual(t, Hue(0), Hue(120))
	assert.NotEqual(t, Hue(120), Hue(240))
	assert.Equal(t, Hue(90), Hue(90))
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 7}, palette)
	assert.Equal(t, []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}, buf)

	fillPaletteRGBA(buf, []uint8{0, 1, 7}, nil)
	assert.Equal(t, make([]byte, 12), buf)
}

func TestTextShowsOccupantsOverGround(t *testing.T) {
	w, err := world.FromRows(".#*", "x..")
	require.NoError(t, err)
	w = w.Place(world.Coordinate{X: 1, Y: 1}, world.Orc)
	w = w.Update(world.Coordinate{X: 1, Y: 1}, world.Coordinate{X: 2, Y: 1}, world.Orc)

	assert.Equal(t, ";^*\n .O\n", Text(w))

	var out bytes.Buffer
	require.NoError(t, WriteFrame(&out, "tick 1", w))
	assert.Equal(t, "tick 1\n;^*\n .O\n", out.String())
}
