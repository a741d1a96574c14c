package database

import (
	"time"
)

// User represents a row in the users table.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Track represents a row in the tracks table. Username carries the owner's
// username when the track was loaded through the users join.
type Track struct {
	ID        int64
	Name      string
	Slug      string
	Activity  string
	UserID    int64
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrackFeature is a track listing entry with its geometry rendered as a
// GeoJSON document by the database. The geometry stays a string on the wire,
// the map frontend parses it itself.
type TrackFeature struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Activity string `json:"activity"`
	Username string `json:"username"`
	Geometry string `json:"geometry"`
}

// Extent aggregates the centroid and bounding box of all stored tracks,
// both as GeoJSON strings.
type Extent struct {
	Center string `json:"center"`
	Extent string `json:"extent"`
}
