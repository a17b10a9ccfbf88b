// Package session wraps a filesystem-backed cookie session store with the
// small surface the handlers need: identity, sign-in/out, and flash messages.
package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "daily_companion_session"

	keyUserID = "user_id"
	keyName   = "name"

	sessionMaxAge = 7 * 24 * 60 * 60 // seconds
)

// Identity is the authenticated user attached to a browser session.
type Identity struct {
	UserID int
	Name   string
}

// Manager owns the session store. Handlers never touch cookies directly.
type Manager struct {
	store *sessions.FilesystemStore
}

// NewManager builds a manager persisting sessions under dir, authenticated
// with secret. Sessions are opaque tokens in an HttpOnly cookie; the values
// live in files, matching the filesystem session model.
func NewManager(dir, secret string) *Manager {
	store := sessions.NewFilesystemStore(dir, []byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Current returns the identity bound to the request's session, if any.
func (m *Manager) Current(r *http.Request) (Identity, bool) {
	sess, err := m.store.Get(r, cookieName)
	if err != nil {
		// a tampered or stale cookie is the same as no session
		return Identity{}, false
	}
	id, ok := sess.Values[keyUserID].(int)
	if !ok {
		return Identity{}, false
	}
	name, _ := sess.Values[keyName].(string)
	return Identity{UserID: id, Name: name}, true
}

// SignIn binds the identity to the session, discarding any previous values.
// Options are reset in case the same request already expired the session.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, ident Identity) error {
	sess, _ := m.store.Get(r, cookieName)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values[keyUserID] = ident.UserID
	sess.Values[keyName] = ident.Name
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear forgets the session entirely. Safe to call without a session.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, cookieName)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Flash queues a one-shot message shown on the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, msg string) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.AddFlash(msg)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save flash: %w", err)
	}
	return nil
}

// TakeFlashes returns and consumes all queued flash messages.
func (m *Manager) TakeFlashes(w http.ResponseWriter, r *http.Request) []string {
	sess, err := m.store.Get(r, cookieName)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// reading flashes mutates the session; persist the consumption
	_ = sess.Save(r, w)

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
