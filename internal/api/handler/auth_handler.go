package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/symmetrical-potato/web/internal/api/cookie"
	"github.com/symmetrical-potato/web/internal/api/metrics"
	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
	"github.com/symmetrical-potato/web/internal/pkg/locale"
)

// AuthHandler serves login, logout, registration, and password reset.
type AuthHandler struct {
	codec    *cookie.Codec
	sessions *session.Store
	limiter  ports.LoginLimiter
	log      zerolog.Logger
}

func NewAuthHandler(codec *cookie.Codec, sessions *session.Store, limiter ports.LoginLimiter, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{codec: codec, sessions: sessions, limiter: limiter, log: log}
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginForm renders the login page; authenticated users go straight to the
// dashboard.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	if sc := middleware.RequestScope(c); sc != nil && sc.User != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return renderPage(c, h.sessions, "login.html", nil)
}

// Login authenticates against the backend and, on success, sets the bearer
// cookie with the backend-declared lifetime.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, "/login", errorFlash(c, locale.MsgLoginFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, "/login", domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	ctx := c.Request().Context()
	ip := c.RealIP()

	if h.limiter != nil {
		throttled, err := h.limiter.TooManyAttempts(ctx, form.Username, ip)
		if err != nil {
			// Fail open: a broken limiter must not lock everyone out.
			h.log.Warn().Err(err).Msg("login limiter unavailable")
		} else if throttled {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return flashRedirect(c, h.sessions, "/login", errorFlash(c, locale.MsgLoginThrottled))
		}
	}

	sc := middleware.RequestScope(c)
	token, err := sc.Client.Login(ctx, form.Username, form.Password)
	if err != nil {
		if h.limiter != nil {
			if lerr := h.limiter.RecordFailure(ctx, form.Username, ip); lerr != nil {
				h.log.Warn().Err(lerr).Msg("failed to record login attempt")
			}
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if redirect, handled := flashExpected(c, h.sessions, err, "/login", locale.MsgLoginFailed); handled {
			return redirect
		}
		return err
	}

	if h.limiter != nil {
		if lerr := h.limiter.Reset(ctx, form.Username, ip); lerr != nil {
			h.log.Warn().Err(lerr).Msg("failed to reset login attempts")
		}
	}

	maxAge := token.TokenTTL
	if maxAge <= 0 {
		maxAge = cookie.BearerMaxAge
	}
	bearerCk, err := h.codec.Encode(cookie.BearerCookie, "Bearer "+token.Token, cookie.Options{
		HTTPOnly: true,
		MaxAge:   maxAge,
	})
	if err != nil {
		return err
	}
	c.SetCookie(bearerCk)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.log.Info().Str("username", form.Username).Msg("login")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the bearer cookie. The token itself stays valid backend-side
// until it expires; the gateway only forgets it.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.codec.Clear(cookie.BearerCookie, cookie.Options{HTTPOnly: true}))
	return flashRedirect(c, h.sessions, "/login", successFlash(c, locale.MsgLoggedOut))
}

type registerForm struct {
	Username string `form:"username" validate:"required,min=3"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

func (h *AuthHandler) RegisterForm(c echo.Context) error {
	if sc := middleware.RequestScope(c); sc != nil && sc.User != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return renderPage(c, h.sessions, "register.html", nil)
}

func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, "/register", errorFlash(c, locale.MsgOperationFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, "/register", domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	sc := middleware.RequestScope(c)
	err := sc.Client.Register(c.Request().Context(), ports.RegisterInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Locale:   string(sc.Locale),
	})
	if err != nil {
		if redirect, handled := flashExpected(c, h.sessions, err, "/register", locale.MsgOperationFailed); handled {
			return redirect
		}
		return err
	}

	return flashRedirect(c, h.sessions, "/login", successFlash(c, locale.MsgRegistered))
}

type forgottenPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

func (h *AuthHandler) ForgottenPasswordForm(c echo.Context) error {
	return renderPage(c, h.sessions, "forgotten_password.html", nil)
}

// ForgottenPassword always flashes the same neutral message so the form
// cannot be used to probe which addresses exist.
func (h *AuthHandler) ForgottenPassword(c echo.Context) error {
	var form forgottenPasswordForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, h.sessions, "/forgotten-password", errorFlash(c, locale.MsgOperationFailed))
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, h.sessions, "/forgotten-password", domain.FlashMessage{Content: err.Error(), Type: domain.FlashError})
	}

	sc := middleware.RequestScope(c)
	if err := sc.Client.RequestPasswordReset(c.Request().Context(), form.Email); err != nil {
		apiErr, ok := graphql.AsAPIError(err)
		if !ok || !graphql.HasAnyStatus(apiErr, expectedStatuses...) {
			return err
		}
	}
	return flashRedirect(c, h.sessions, "/login", successFlash(c, locale.MsgPasswordResetSent))
}

func successFlash(c echo.Context, key locale.MessageKey) domain.FlashMessage {
	return domain.FlashMessage{Content: locale.T(requestLocale(c), key), Type: domain.FlashSuccess}
}

func errorFlash(c echo.Context, key locale.MessageKey) domain.FlashMessage {
	return domain.FlashMessage{Content: locale.T(requestLocale(c), key), Type: domain.FlashError}
}
