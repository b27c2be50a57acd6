package auth

import (
	"fmt"
	"sort"
	"sync"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "session"

// SameSite values understood by CookieJar implementations.
const (
	SameSiteLax    = "Lax"
	SameSiteStrict = "Strict"
)

// Cookie is a transport-neutral cookie with the attributes the session needs.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	MaxAge   int // seconds; negative deletes
	HTTPOnly bool
	Secure   bool
	SameSite string
}

// CookieJar is the request/response cookie surface a session works against.
type CookieJar interface {
	Get(name string) (Cookie, bool)
	Set(c Cookie)
	Delete(name string)
	List() []Cookie
}

// TokenIssuer is the subset of TokenService used by the session gateway.
type TokenIssuer interface {
	Issue(claim Claim) (string, error)
	Validate(token string) *Claim
}

// SessionGateway binds session tokens to the session cookie.
type SessionGateway struct {
	tokens TokenIssuer
}

// NewSessionGateway creates a gateway over the given token service.
func NewSessionGateway(tokens TokenIssuer) *SessionGateway {
	return &SessionGateway{tokens: tokens}
}

// SessionCookie builds the session cookie with its fixed attributes.
func SessionCookie(value string) Cookie {
	return Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: SameSiteLax,
	}
}

// CreateSession issues a token for claim and stores it in the session
// cookie, replacing any existing one.
func (g *SessionGateway) CreateSession(jar CookieJar, claim Claim) error {
	token, err := g.tokens.Issue(claim)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	jar.Set(SessionCookie(token))
	return nil
}

// GetSession returns the claim of the current session, or nil when the
// cookie is absent, empty, or holds a token that does not validate.
func (g *SessionGateway) GetSession(jar CookieJar) *Claim {
	c, ok := jar.Get(SessionCookieName)
	if !ok || c.Value == "" {
		return nil
	}
	return g.tokens.Validate(c.Value)
}

// DestroySession removes the session cookie. Safe when there is none.
func (g *SessionGateway) DestroySession(jar CookieJar) {
	jar.Delete(SessionCookieName)
}

// MemoryCookieJar is an in-process CookieJar.
type MemoryCookieJar struct {
	mu      sync.Mutex
	cookies map[string]Cookie
}

// NewMemoryCookieJar returns a jar preloaded with cookies.
func NewMemoryCookieJar(cookies ...Cookie) *MemoryCookieJar {
	j := &MemoryCookieJar{cookies: make(map[string]Cookie, len(cookies))}
	for _, c := range cookies {
		j.cookies[c.Name] = c
	}
	return j
}

func (j *MemoryCookieJar) Get(name string) (Cookie, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	c, ok := j.cookies[name]
	return c, ok
}

func (j *MemoryCookieJar) Set(c Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if c.MaxAge < 0 {
		delete(j.cookies, c.Name)
		return
	}
	j.cookies[c.Name] = c
}

func (j *MemoryCookieJar) Delete(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.cookies, name)
}

func (j *MemoryCookieJar) List() []Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Cookie, 0, len(j.cookies))
	for _, c := range j.cookies {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}
