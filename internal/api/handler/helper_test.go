package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/symmetrical-potato/web/internal/api/cookie"
	"github.com/symmetrical-potato/web/internal/api/middleware"
	"github.com/symmetrical-potato/web/internal/api/session"
	"github.com/symmetrical-potato/web/internal/core/domain"
	"github.com/symmetrical-potato/web/internal/core/ports"
	"github.com/symmetrical-potato/web/internal/infrastructure/backend/graphql"
)

const testSecret = "test-secret"

// stubBackend implements only the methods a given test exercises; anything
// else panics through the embedded nil interface.
type stubBackend struct {
	ports.Backend
	currentUserFn func(ctx context.Context) (*domain.Identity, error)
	loginFn       func(ctx context.Context, username, password string) (*ports.AuthToken, error)
	placeFn       func(ctx context.Context, placeID string) (*domain.Place, error)
	joinHeistFn   func(ctx context.Context, heistID string) error
	deleteHeistFn func(ctx context.Context, heistID string) error
	deleteAssetFn func(ctx context.Context, id string) error
	getAssetFn    func(ctx context.Context, id string) (*domain.Asset, error)
	updateAssetFn func(ctx context.Context, id string, input ports.AssetInput) error
	listAssetsFn  func(ctx context.Context) ([]domain.Asset, error)
	passwordFn    func(ctx context.Context, email string) error
	registerFn    func(ctx context.Context, input ports.RegisterInput) error
	leaveHeistFn  func(ctx context.Context, heistID string) error
}

func (s *stubBackend) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	if s.currentUserFn == nil {
		return nil, nil
	}
	return s.currentUserFn(ctx)
}

func (s *stubBackend) Login(ctx context.Context, username, password string) (*ports.AuthToken, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubBackend) Register(ctx context.Context, input ports.RegisterInput) error {
	return s.registerFn(ctx, input)
}

func (s *stubBackend) RequestPasswordReset(ctx context.Context, email string) error {
	return s.passwordFn(ctx, email)
}

func (s *stubBackend) Place(ctx context.Context, placeID string) (*domain.Place, error) {
	return s.placeFn(ctx, placeID)
}

func (s *stubBackend) JoinHeist(ctx context.Context, heistID string) error {
	return s.joinHeistFn(ctx, heistID)
}

func (s *stubBackend) LeaveHeist(ctx context.Context, heistID string) error {
	return s.leaveHeistFn(ctx, heistID)
}

func (s *stubBackend) DeleteHeist(ctx context.Context, heistID string) error {
	return s.deleteHeistFn(ctx, heistID)
}

func (s *stubBackend) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.listAssetsFn(ctx)
}

func (s *stubBackend) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	return s.getAssetFn(ctx, id)
}

func (s *stubBackend) UpdateAsset(ctx context.Context, id string, input ports.AssetInput) error {
	return s.updateAssetFn(ctx, id, input)
}

func (s *stubBackend) DeleteAsset(ctx context.Context, id string) error {
	return s.deleteAssetFn(ctx, id)
}

// testEnv bundles the pieces a handler test needs to run a request through
// the scope middleware the way the router does.
type testEnv struct {
	e        *echo.Echo
	codec    *cookie.Codec
	sessions *session.Store
	backend  *stubBackend
}

func newTestEnv(backend *stubBackend) *testEnv {
	codec := cookie.NewCodec(testSecret, false)
	e := echo.New()
	e.Validator = NewValidator()
	return &testEnv{
		e:        e,
		codec:    codec,
		sessions: session.NewStore(codec),
		backend:  backend,
	}
}

// authenticate adds a bearer cookie so the scope resolves an identity.
func (env *testEnv) authenticate(t *testing.T, req *http.Request) {
	t.Helper()
	ck, err := env.codec.Encode(cookie.BearerCookie, "Bearer tok", cookie.Options{HTTPOnly: true})
	if err != nil {
		t.Fatalf("encode bearer: %v", err)
	}
	req.AddCookie(ck)
}

// run executes fn behind the scope middleware and returns the recorder plus
// the handler's error (nil when the handler wrote a response itself).
func (env *testEnv) run(t *testing.T, req *http.Request, params map[string]string, fn echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	names := append([]string{}, c.ParamNames()...)
	values := append([]string{}, c.ParamValues()...)
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	mw := middleware.BuildScope(middleware.ScopeConfig{
		Codec:    env.codec,
		Sessions: env.sessions,
		NewBackend: func(bearer string) ports.Backend {
			return env.backend
		},
		Log: zerolog.Nop(),
	})
	return rec, mw(fn)(c)
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// apiError builds a backend error with a single entry.
func apiError(status int, msg string, path ...any) *graphql.APIError {
	entry := graphql.ErrorEntry{Message: msg, Path: path}
	entry.Extensions.Status = status
	return &graphql.APIError{Entries: []graphql.ErrorEntry{entry}}
}

// flashedMessage decodes the committed session cookie from rec and returns
// the staged flash, if any.
func flashedMessage(t *testing.T, env *testEnv, rec *httptest.ResponseRecorder) *domain.FlashMessage {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range res.Cookies() {
		if ck.Name == cookie.SessionCookie {
			req.AddCookie(ck)
		}
	}
	s := env.sessions.Read(req)
	if msg, ok := s.Pop(); ok {
		return &msg
	}
	return nil
}
