// Package auth holds password hashing and the cookie-backed session identity.
package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RoleAdmin is the role required for the admin routes. Everyone else gets
// RoleUser.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	sessionKeyID       = "user_id"
	sessionKeyUsername = "user_username"
	sessionKeyRole     = "user_role"
)

// SessionUser is the fixed-shape identity stored in the signed session. No
// password material ever enters it.
type SessionUser struct {
	ID       int64
	Username string
	Role     string
}

// IsAdmin reports whether the session user has the admin role.
func (u *SessionUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// SetUser stores the user identity in the session cookie.
func SetUser(c *gin.Context, id int64, username, role string) error {
	session := sessions.Default(c)
	session.Set(sessionKeyID, id)
	session.Set(sessionKeyUsername, username)
	session.Set(sessionKeyRole, role)
	return session.Save()
}

// CurrentUser decodes the session into a SessionUser. It returns nil for
// anonymous visitors and for sessions that don't hold all three fields with
// the expected types.
func CurrentUser(c *gin.Context) *SessionUser {
	session := sessions.Default(c)

	id, ok := session.Get(sessionKeyID).(int64)
	if !ok {
		return nil
	}
	username, ok := session.Get(sessionKeyUsername).(string)
	if !ok {
		return nil
	}
	role, ok := session.Get(sessionKeyRole).(string)
	if !ok {
		return nil
	}

	return &SessionUser{ID: id, Username: username, Role: role}
}

// Clear drops the whole session.
func Clear(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}
