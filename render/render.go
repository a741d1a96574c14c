// Package render rasterizes stored track geometries into static images.
package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
)

const (
	width   = 800
	height  = 600
	padding = 24.0
)

// PNG decodes a WKB multilinestring and draws it as white 2px lines on a
// transparent canvas, no axes, no border.
func PNG(data []byte) ([]byte, error) {
	geom, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode geometry: %w", err)
	}

	var mls orb.MultiLineString
	switch g := geom.(type) {
	case orb.MultiLineString:
		mls = g
	case orb.LineString:
		mls = orb.MultiLineString{g}
	default:
		return nil, fmt.Errorf("unexpected geometry type %q", geom.GeoJSONType())
	}
	if len(mls) == 0 {
		return nil, fmt.Errorf("geometry is empty")
	}

	project := projector(mls.Bound())

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	for _, line := range mls {
		for i, p := range line {
			x, y := project(p)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// projector maps geographic coordinates into image space, preserving aspect
// ratio and centering the drawing. Degenerate extents collapse to the canvas
// center instead of dividing by zero.
func projector(b orb.Bound) func(orb.Point) (float64, float64) {
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]

	scale := 0.0
	if dx > 0 || dy > 0 {
		sx := (width - 2*padding) / max(dx, 1e-12)
		sy := (height - 2*padding) / max(dy, 1e-12)
		scale = min(sx, sy)
	}

	offsetX := (width - dx*scale) / 2
	offsetY := (height - dy*scale) / 2

	return func(p orb.Point) (float64, float64) {
		x := offsetX + (p[0]-b.Min[0])*scale
		// Latitude grows upwards, image coordinates grow downwards.
		y := height - (offsetY + (p[1]-b.Min[1])*scale)
		return x, y
	}
}
