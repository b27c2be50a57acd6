package middlewares

import (
	"net/http"

	"church-portal/internal/auth"

	"github.com/gin-gonic/gin"
)

const cookieJarKey = "cookie_jar"

// GinCookieJar exposes a request's cookies and the response's Set-Cookie
// headers as an auth.CookieJar. Writes are visible to later reads within
// the same request.
type GinCookieJar struct {
	c       *gin.Context
	pending map[string]*auth.Cookie // nil value marks a deletion
}

// CookieJar returns the jar bound to c, creating it on first use so that
// middlewares and handlers share pending writes.
func CookieJar(c *gin.Context) *GinCookieJar {
	if v, ok := c.Get(cookieJarKey); ok {
		if jar, ok := v.(*GinCookieJar); ok {
			return jar
		}
	}
	jar := &GinCookieJar{c: c, pending: make(map[string]*auth.Cookie)}
	c.Set(cookieJarKey, jar)
	return jar
}

func (j *GinCookieJar) Get(name string) (auth.Cookie, bool) {
	if c, ok := j.pending[name]; ok {
		if c == nil {
			return auth.Cookie{}, false
		}
		return *c, true
	}
	hc, err := j.c.Request.Cookie(name)
	if err != nil {
		return auth.Cookie{}, false
	}
	return auth.Cookie{Name: hc.Name, Value: hc.Value}, true
}

func (j *GinCookieJar) Set(c auth.Cookie) {
	http.SetCookie(j.c.Writer, toHTTPCookie(c))
	if c.MaxAge < 0 {
		j.pending[c.Name] = nil
		return
	}
	cp := c
	j.pending[c.Name] = &cp
}

func (j *GinCookieJar) Delete(name string) {
	// attributes must match the ones the cookie was set with
	c := auth.SessionCookie("")
	c.Name = name
	c.MaxAge = -1
	j.Set(c)
}

func (j *GinCookieJar) List() []auth.Cookie {
	seen := make(map[string]bool)
	var out []auth.Cookie
	for name, c := range j.pending {
		seen[name] = true
		if c != nil {
			out = append(out, *c)
		}
	}
	for _, hc := range j.c.Request.Cookies() {
		if !seen[hc.Name] {
			seen[hc.Name] = true
			out = append(out, auth.Cookie{Name: hc.Name, Value: hc.Value})
		}
	}
	return out
}

func toHTTPCookie(c auth.Cookie) *http.Cookie {
	hc := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		MaxAge:   c.MaxAge,
		HttpOnly: c.HTTPOnly,
		Secure:   c.Secure,
	}
	switch c.SameSite {
	case auth.SameSiteLax:
		hc.SameSite = http.SameSiteLaxMode
	case auth.SameSiteStrict:
		hc.SameSite = http.SameSiteStrictMode
	}
	return hc
}
