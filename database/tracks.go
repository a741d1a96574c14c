package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CreateTrack inserts a track owned by userID and returns its id. The
// geometry arrives as WKT and is typed and tagged with SRID 4326 at the
// database boundary. A (user_id, slug) collision surfaces as ErrDuplicate.
func (d *DB) CreateTrack(ctx context.Context, name, slug, wkt, activity string, userID int64) (int64, error) {
	query := `
		INSERT INTO tracks (name, slug, geometry, activity, user_id)
		VALUES ($1, $2, ST_SetSRID(ST_GeomFromText($3), 4326), $4, $5)
		RETURNING id`

	var id int64
	err := d.pool.QueryRow(ctx, query, name, slug, wkt, activity, userID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("slug %q: %w", slug, ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to insert track: %w", err)
	}
	return id, nil
}

// CountTracks returns the number of tracks owned by userID.
func (d *DB) CountTracks(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tracks WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	return count, nil
}

// DeleteTrack removes the track with the given slug owned by userID. Deleting
// a track that doesn't exist is not an error.
func (d *DB) DeleteTrack(ctx context.Context, slug string, userID int64) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM tracks WHERE slug = $1 AND user_id = $2`, slug, userID)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}
	return nil
}

// GetTrackBySlug resolves a (username, slug) pair to a track, or ErrNotFound.
func (d *DB) GetTrackBySlug(ctx context.Context, username, slug string) (*Track, error) {
	query := `
		SELECT tracks.id, name, slug, activity, user_id, username, tracks.created_at, tracks.updated_at
		FROM tracks
		JOIN users ON tracks.user_id = users.id
		WHERE users.username = $1 AND tracks.slug = $2`

	var t Track
	err := d.pool.QueryRow(ctx, query, username, slug).Scan(
		&t.ID, &t.Name, &t.Slug, &t.Activity, &t.UserID, &t.Username, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query track: %w", err)
	}
	return &t, nil
}

// GetTrackGeometry returns the WKB geometry of a (username, slug) pair, or
// ErrNotFound.
func (d *DB) GetTrackGeometry(ctx context.Context, username, slug string) ([]byte, error) {
	query := `
		SELECT ST_AsBinary(geometry)
		FROM tracks
		JOIN users ON tracks.user_id = users.id
		WHERE users.username = $1 AND tracks.slug = $2`

	var wkb []byte
	err := d.pool.QueryRow(ctx, query, username, slug).Scan(&wkb)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query track geometry: %w", err)
	}
	return wkb, nil
}

// ListTracksByUser returns the tracks owned by userID, newest first.
func (d *DB) ListTracksByUser(ctx context.Context, userID int64) ([]Track, error) {
	query := `
		SELECT id, name, slug, activity, user_id, created_at, updated_at
		FROM tracks
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := d.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var t Track
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Activity, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// ListTracks returns every track with its owner's username and its geometry
// as a GeoJSON string.
func (d *DB) ListTracks(ctx context.Context) ([]TrackFeature, error) {
	query := `
		SELECT tracks.id, slug, name, activity, username, ST_AsGeoJSON(geometry)
		FROM tracks
		JOIN users ON tracks.user_id = users.id
		ORDER BY tracks.id`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []TrackFeature
	for rows.Next() {
		var t TrackFeature
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.Activity, &t.Username, &t.Geometry); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// TracksExtent returns the centroid and bounding box of all stored tracks as
// GeoJSON strings. Both are empty when no tracks exist.
func (d *DB) TracksExtent(ctx context.Context) (*Extent, error) {
	query := `
		SELECT
			COALESCE(ST_AsGeoJSON(ST_Centroid(ST_Extent(geometry))), ''),
			COALESCE(ST_AsGeoJSON(ST_Extent(geometry)), '')
		FROM tracks`

	var e Extent
	if err := d.pool.QueryRow(ctx, query).Scan(&e.Center, &e.Extent); err != nil {
		return nil, fmt.Errorf("failed to query tracks extent: %w", err)
	}
	return &e, nil
}
