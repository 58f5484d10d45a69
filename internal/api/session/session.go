// Package session implements the one-shot flash-message session carried in
// the signed __session cookie. A message flashed by an action handler is
// delivered to exactly one subsequent render and then cleared.
package session

import (
	"encoding/json"
	"net/http"

	"github.com/symmetrical-potato/web/internal/api/cookie"
	"github.com/symmetrical-potato/web/internal/core/domain"
)

// Session holds at most one pending flash message.
type Session struct {
	flash *domain.FlashMessage
	dirty bool
}

// Flash stages a message for one-time delivery on the next render.
// A second Flash before commit replaces the pending message.
func (s *Session) Flash(msg domain.FlashMessage) {
	s.flash = &msg
	s.dirty = true
}

// Pop returns the pending message and clears it. The second Pop on the same
// session reports absent.
func (s *Session) Pop() (domain.FlashMessage, bool) {
	if s.flash == nil {
		return domain.FlashMessage{}, false
	}
	msg := *s.flash
	s.flash = nil
	s.dirty = true
	return msg, true
}

// Dirty reports whether the session changed since it was read and therefore
// needs a Set-Cookie on the response.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Store reads and commits sessions through the signed cookie codec.
type Store struct {
	codec *cookie.Codec
}

func NewStore(codec *cookie.Codec) *Store {
	return &Store{codec: codec}
}

type payload struct {
	Flash *domain.FlashMessage `json:"flash,omitempty"`
}

// Read builds the session from the request's __session cookie. A missing or
// invalid cookie yields a fresh empty session, never an error.
func (st *Store) Read(r *http.Request) *Session {
	raw, ok := st.codec.Decode(r, cookie.SessionCookie)
	if !ok {
		return &Session{}
	}

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return &Session{}
	}
	return &Session{flash: p.Flash}
}

// Commit serializes the session into its Set-Cookie value. An empty session
// commits to an expired cookie so stale flashes cannot reappear.
func (st *Store) Commit(s *Session) (*http.Cookie, error) {
	if s.flash == nil {
		return st.codec.Clear(cookie.SessionCookie, cookie.Options{HTTPOnly: true}), nil
	}

	b, err := json.Marshal(payload{Flash: s.flash})
	if err != nil {
		return nil, err
	}
	return st.codec.Encode(cookie.SessionCookie, string(b), cookie.Options{HTTPOnly: true})
}
