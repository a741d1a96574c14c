package database

import "context"

// Store defines the database operations the route handlers depend on.
type Store interface {
	// Users
	CreateUser(ctx context.Context, username, email, passwordHash, role string) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// Tracks
	CreateTrack(ctx context.Context, name, slug, wkt, activity string, userID int64) (int64, error)
	CountTracks(ctx context.Context, userID int64) (int64, error)
	DeleteTrack(ctx context.Context, slug string, userID int64) error
	GetTrackBySlug(ctx context.Context, username, slug string) (*Track, error)
	GetTrackGeometry(ctx context.Context, username, slug string) ([]byte, error)
	ListTracksByUser(ctx context.Context, userID int64) ([]Track, error)
	ListTracks(ctx context.Context) ([]TrackFeature, error)
	TracksExtent(ctx context.Context) (*Extent, error)
}

var _ Store = (*DB)(nil)
