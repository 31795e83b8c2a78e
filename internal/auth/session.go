// Package auth owns the signed-in session and the account service behind the
// login and signup pages.
package auth

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session identifies the signed-in account for the duration of a request.
type Session struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	SignedInAt time.Time `json:"signed_in_at"`
}

const contextKey = "Session"

// Cookie keys. Values stay basic types so the cookie codec needs no
// registration.
const (
	keyUserID     = "user_id"
	keyEmail      = "email"
	keySignedInAt = "signed_in_at"
)

func WithSession(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// FromContext returns the session placed by middleware.InjectSession.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok && s != nil
}

// Save writes s to the session cookie.
func Save(c *gin.Context, s *Session) error {
	sess := sessions.Default(c)
	sess.Set(keyUserID, s.UserID)
	sess.Set(keyEmail, s.Email)
	sess.Set(keySignedInAt, s.SignedInAt.Unix())
	return sess.Save()
}

// Clear drops the session cookie.
func Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}

// Load reads the session cookie without checking the account still exists.
func Load(c *gin.Context) (*Session, bool) {
	sess := sessions.Default(c)
	uid, _ := sess.Get(keyUserID).(string)
	if uid == "" {
		return nil, false
	}
	email, _ := sess.Get(keyEmail).(string)
	at, _ := sess.Get(keySignedInAt).(int64)
	return &Session{UserID: uid, Email: email, SignedInAt: time.Unix(at, 0).UTC()}, true
}
