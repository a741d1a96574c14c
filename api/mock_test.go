package api

import (
	"context"
	"sync"
	"time"

	"github.com/trackslat/trackslat/database"
)

// mockStore is an in-memory database.Store with the same constraint
// behavior as the real schema: unique usernames and unique (user_id, slug)
// pairs.
type mockStore struct {
	mu     sync.Mutex
	nextID int64
	users  []*database.User
	tracks []*mockTrack

	extent database.Extent
}

type mockTrack struct {
	database.Track
	wkt string
	wkb []byte
}

var _ database.Store = (*mockStore)(nil)

func newMockStore() *mockStore {
	return &mockStore{}
}

func (m *mockStore) CreateUser(_ context.Context, username, email, passwordHash, role string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return 0, database.ErrDuplicate
		}
	}

	m.nextID++
	now := time.Now()
	m.users = append(m.users, &database.User{
		ID:           m.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return m.nextID, nil
}

func (m *mockStore) GetUserByUsername(_ context.Context, username string) (*database.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *mockStore) CreateTrack(_ context.Context, name, slug, wkt, activity string, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tracks {
		if t.UserID == userID && t.Slug == slug {
			return 0, database.ErrDuplicate
		}
	}

	m.nextID++
	now := time.Now()
	m.tracks = append(m.tracks, &mockTrack{
		Track: database.Track{
			ID:        m.nextID,
			Name:      name,
			Slug:      slug,
			Activity:  activity,
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		wkt: wkt,
	})
	return m.nextID, nil
}

func (m *mockStore) CountTracks(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, t := range m.tracks {
		if t.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockStore) DeleteTrack(_ context.Context, slug string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.tracks[:0]
	for _, t := range m.tracks {
		if t.UserID == userID && t.Slug == slug {
			continue
		}
		kept = append(kept, t)
	}
	m.tracks = kept
	return nil
}

func (m *mockStore) findTrack(username, slug string) *mockTrack {
	for _, t := range m.tracks {
		for _, u := range m.users {
			if u.ID == t.UserID && u.Username == username && t.Slug == slug {
				return t
			}
		}
	}
	return nil
}

func (m *mockStore) GetTrackBySlug(_ context.Context, username, slug string) (*database.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.findTrack(username, slug)
	if t == nil {
		return nil, database.ErrNotFound
	}
	track := t.Track
	track.Username = username
	return &track, nil
}

func (m *mockStore) GetTrackGeometry(_ context.Context, username, slug string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.findTrack(username, slug)
	if t == nil {
		return nil, database.ErrNotFound
	}
	return t.wkb, nil
}

func (m *mockStore) ListTracksByUser(_ context.Context, userID int64) ([]database.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var tracks []database.Track
	for _, t := range m.tracks {
		if t.UserID == userID {
			tracks = append(tracks, t.Track)
		}
	}
	return tracks, nil
}

func (m *mockStore) ListTracks(_ context.Context) ([]database.TrackFeature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var features []database.TrackFeature
	for _, t := range m.tracks {
		var username string
		for _, u := range m.users {
			if u.ID == t.UserID {
				username = u.Username
			}
		}
		features = append(features, database.TrackFeature{
			ID:       t.ID,
			Slug:     t.Slug,
			Name:     t.Name,
			Activity: t.Activity,
			Username: username,
			Geometry: `{"type":"MultiLineString","coordinates":[]}`,
		})
	}
	return features, nil
}

func (m *mockStore) TracksExtent(_ context.Context) (*database.Extent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	extent := m.extent
	return &extent, nil
}
