// Package cookie encodes and decodes the application's signed cookies.
//
// Cookie values are wrapped in HS256-signed JWTs so that tampering, payload
// corruption, or a rotated secret all fail closed: Decode reports the cookie
// as absent instead of surfacing an error to the caller.
package cookie

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Names of the cookies owned by the gateway.
const (
	BearerCookie   = "BEARER"
	LocaleCookie   = "LOCALE"
	DarkModeCookie = "DARK_MODE"
	SessionCookie  = "__session"
)

// BearerMaxAge is the bearer cookie lifetime in seconds (one week).
const BearerMaxAge = 604800

// Options controls the attributes of an encoded cookie. SameSite is always
// Lax and Secure follows the codec's production flag.
type Options struct {
	HTTPOnly bool
	Path     string
	MaxAge   int
}

// Codec signs and verifies cookie values with a server-held secret.
type Codec struct {
	secret []byte
	secure bool
}

// NewCodec returns a Codec signing with secret. secure toggles the Secure
// attribute on emitted cookies (on in production).
func NewCodec(secret string, secure bool) *Codec {
	return &Codec{secret: []byte(secret), secure: secure}
}

// Encode wraps value in a signed token and returns the cookie to set.
func (c *Codec) Encode(name, value string, opts Options) (*http.Cookie, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"v":   value,
		"iat": now.Unix(),
	}
	if opts.MaxAge > 0 {
		claims["exp"] = now.Add(time.Duration(opts.MaxAge) * time.Second).Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     name,
		Value:    signed,
		Path:     pathOrRoot(opts.Path),
		MaxAge:   opts.MaxAge,
		HttpOnly: opts.HTTPOnly,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	}, nil
}

// Decode returns the value carried by the named cookie. A missing cookie,
// a bad signature, an expired token, or a malformed payload all yield
// ("", false); Decode never returns an error.
func (c *Codec) Decode(r *http.Request, name string) (string, bool) {
	ck, err := r.Cookie(name)
	if err != nil || ck.Value == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(ck.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	v, ok := claims["v"].(string)
	if !ok {
		return "", false
	}
	return v, true
}

// Clear returns a cookie that expires the named cookie on the client.
func (c *Codec) Clear(name string, opts Options) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     pathOrRoot(opts.Path),
		MaxAge:   -1,
		HttpOnly: opts.HTTPOnly,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	}
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
