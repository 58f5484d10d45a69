package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/symmetrical-potato/web/internal/api/cookie"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

const scopeKey = "request_scope"

// Scope is the per-request context every handler reads from. It is built
// from scratch on each request and never shared or cached across requests.
type Scope struct {
	Client      ports.Backend
	User        *domain.Identity
	Locale      locale.Locale
	UseDarkMode bool
	Session     *session.Session
}

// ScopeConfig wires the scope builder's collaborators.
type ScopeConfig struct {
	Codec    *cookie.Codec
	Sessions *session.Store
	// NewBackend binds a backend client to the request's bearer; an empty
	// bearer yields an anonymous client.
	NewBackend func(bearer string) ports.Backend
	Log        zerolog.Logger
}

// BuildScope resolves locale, theme, bearer, backend client, identity, and
// flash session for the request, and stores the result in the echo context.
//
// Identity resolution fails safe: an absent, expired, or rejected bearer
// resolves to a nil user; callers cannot tell those cases apart.
func BuildScope(cfg ScopeConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()

			loc := locale.Default()
			if raw, ok := cfg.Codec.Decode(r, cookie.LocaleCookie); ok {
				if parsed, valid := locale.Parse(raw); valid {
					loc = parsed
				}
			} else {
				loc = locale.Negotiate(r.Header.Get("Accept-Language"))
			}

			dark := false
			if raw, ok := cfg.Codec.Decode(r, cookie.DarkModeCookie); ok {
				dark = raw == "true"
			}

			bearer, _ := cfg.Codec.Decode(r, cookie.BearerCookie)
			client := cfg.NewBackend(bearer)

			var user *domain.Identity
			if bearer != "" {
				resolved, err := client.CurrentUser(r.Context())
				if err != nil {
					cfg.Log.Debug().Err(err).Msg("identity resolution failed, continuing anonymous")
				} else {
					user = resolved
				}
			}

			c.Set(scopeKey, &Scope{
				Client:      client,
				User:        user,
				Locale:      loc,
				UseDarkMode: dark,
				Session:     cfg.Sessions.Read(r),
			})
			return next(c)
		}
	}
}

// RequestScope returns the scope built for this request, or nil when the
// middleware did not run (error handler on a panic path, for instance).
func RequestScope(c echo.Context) *Scope {
	s, _ := c.Get(scopeKey).(*Scope)
	return s
}
