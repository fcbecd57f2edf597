package credstore

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieStore is a credential store bound to one in-flight HTTP exchange.
// Reads come from the request's cookies, writes become Set-Cookie headers on
// the response (Path=/, SameSite=Lax). Values are URL-escaped so JSON can
// travel in cookie values.
//
// Writes and deletes made earlier in the same exchange are visible to later
// reads through an overlay, mirroring how document.cookie behaves in the
// browser the original admin client ran in.
type CookieStore struct {
	c echo.Context
	// overlay holds values written during this exchange; a nil entry
	// masks a request cookie that was deleted.
	overlay map[string]*string
}

// FromEchoContext binds a CookieStore to the given exchange.
func FromEchoContext(c echo.Context) *CookieStore {
	return &CookieStore{c: c, overlay: make(map[string]*string)}
}

const contextKey = "credentialStore"

// FromContext returns the exchange's CookieStore, creating and caching it on
// first use. Every caller in one exchange shares one store so writes made by
// the guard or a handler stay visible downstream.
func FromContext(c echo.Context) *CookieStore {
	if s, ok := c.Get(contextKey).(*CookieStore); ok {
		return s
	}
	s := FromEchoContext(c)
	c.Set(contextKey, s)
	return s
}

func (s *CookieStore) Set(name, value string, days int) {
	days = clampDays(days)
	s.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Expires:  time.Now().Add(time.Duration(days) * 24 * time.Hour),
		MaxAge:   days * 24 * 60 * 60,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	v := value
	s.overlay[name] = &v
}

func (s *CookieStore) SetJSON(name string, v any, days int) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Set(name, string(raw), days)
	return nil
}

func (s *CookieStore) Get(name string) (string, bool) {
	if v, ok := s.overlay[name]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	cookie, err := s.c.Cookie(name)
	if err != nil {
		return "", false
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		// Tolerate cookies written without escaping.
		return cookie.Value, true
	}
	return value, true
}

func (s *CookieStore) GetJSON(name string, out any) bool {
	raw, ok := s.Get(name)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (s *CookieStore) Delete(name string) {
	s.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	s.overlay[name] = nil
}

func (s *CookieStore) DeleteAll(names ...string) {
	for _, name := range names {
		s.Delete(name)
	}
}
