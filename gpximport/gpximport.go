// Package gpximport converts uploaded GPX files into track records ready for
// insertion.
package gpximport

import (
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/tkrajina/gpxgo/gpx"
)

// DefaultActivity is assumed when a GPX track carries no type.
const DefaultActivity = "walking"

// Track is the outcome of parsing a GPX upload.
type Track struct {
	Name     string
	Activity string
	// WKT holds the track geometry as a well-known-text MULTILINESTRING in
	// (lon, lat) order.
	WKT string
}

// Parse reads the first track of a GPX document. The track name falls back to
// the uploaded filename when the metadata has none; a trailing ".gpx" is
// stripped from the name either way. The activity falls back to
// DefaultActivity.
func Parse(r io.Reader, filename string) (*Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read gpx file: %w", err)
	}

	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gpx file: %w", err)
	}
	if len(doc.Tracks) == 0 {
		return nil, fmt.Errorf("gpx file contains no tracks")
	}
	trk := doc.Tracks[0]

	var mls orb.MultiLineString
	for _, seg := range trk.Segments {
		if len(seg.Points) == 0 {
			continue
		}
		line := make(orb.LineString, 0, len(seg.Points))
		for _, p := range seg.Points {
			line = append(line, orb.Point{p.Longitude, p.Latitude})
		}
		mls = append(mls, line)
	}
	if len(mls) == 0 {
		return nil, fmt.Errorf("gpx track contains no points")
	}

	name := trk.Name
	if name == "" {
		name = filename
	}
	if strings.HasSuffix(strings.ToLower(name), ".gpx") {
		name = name[:len(name)-4]
	}

	activity := trk.Type
	if activity == "" {
		activity = DefaultActivity
	}

	return &Track{
		Name:     name,
		Activity: activity,
		WKT:      wkt.MarshalString(mls),
	}, nil
}
