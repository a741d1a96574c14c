package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWKB(t *testing.T, g orb.Geometry) []byte {
	t.Helper()
	data, err := wkb.Marshal(g)
	require.NoError(t, err)
	return data
}

func TestPNG(t *testing.T) {
	mls := orb.MultiLineString{
		{{7.5, 46.5}, {7.6, 46.6}, {7.7, 46.55}},
		{{8.0, 47.0}, {8.1, 47.1}},
	}

	data, err := PNG(mustWKB(t, mls))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, width, bounds.Dx())
	assert.Equal(t, height, bounds.Dy())

	// The background is transparent, the track itself is not.
	drawn := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !drawn; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				drawn = true
				break
			}
		}
	}
	assert.True(t, drawn, "expected at least one opaque pixel")
}

func TestPNGLineString(t *testing.T) {
	ls := orb.LineString{{0, 0}, {1, 1}}

	data, err := PNG(mustWKB(t, ls))
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestPNGDegenerateExtent(t *testing.T) {
	// A single repeated point has a zero-size bound and must not blow up.
	mls := orb.MultiLineString{{{7.5, 46.5}, {7.5, 46.5}}}

	data, err := PNG(mustWKB(t, mls))
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestPNGErrors(t *testing.T) {
	t.Run("garbage input", func(t *testing.T) {
		_, err := PNG([]byte{0x00, 0x01, 0x02})
		assert.Error(t, err)
	})

	t.Run("unexpected geometry type", func(t *testing.T) {
		_, err := PNG(mustWKB(t, orb.Point{1, 2}))
		assert.Error(t, err)
	})
}
