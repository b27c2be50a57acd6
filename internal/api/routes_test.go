package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"church-portal/internal/auth"
	"church-portal/internal/database"
	"church-portal/internal/database/repositories"
	"church-portal/pkg/config"
	"church-portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret-0123456789"

type testServer struct {
	router   *Router
	services *Services
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{BcryptCost: auth.MinBcryptCost},
		Guard:    config.GuardConfig{ProtectedPrefix: "/panel", LoginPath: "/login", HomePath: "/panel"},
		API:      config.APIConfig{DashboardPushInterval: time.Second},
	}
}

func newTestServer(t *testing.T, secrets auth.SecretProvider) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	services := NewServices(db, logger.NewNop(), testConfig(), secrets)
	router, err := NewRouter(services)
	require.NoError(t, err)
	t.Cleanup(router.Close)

	return &testServer{router: router, services: services}
}

func (s *testServer) token(t *testing.T, role auth.Role) string {
	t.Helper()
	token, err := s.services.AuthService().Issue(auth.Claim{
		UserID: "user-" + string(role),
		Email:  string(role) + "@example.com",
		Role:   role,
	})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	s.router.Engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func (s *testServer) seedDonation(t *testing.T) string {
	t.Helper()
	d := &database.Donation{Amount: 50, DonationDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.services.DonationRepository().Create(context.Background(), d))
	return d.ID
}

func TestDonationPermissionMatrix(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	body := `{"amount": 20, "donation_date": "2025-04-06", "donation_type": "offering"}`

	tests := []struct {
		role                        auth.Role
		list, create, patch, remove int
	}{
		{auth.RoleAdmin, http.StatusOK, http.StatusCreated, http.StatusOK, http.StatusOK},
		{auth.RoleLeader, http.StatusOK, http.StatusCreated, http.StatusOK, http.StatusForbidden},
		{auth.RoleMember, http.StatusOK, http.StatusForbidden, http.StatusForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			token := s.token(t, tt.role)
			id := s.seedDonation(t)

			assert.Equal(t, tt.list, s.do(t, http.MethodGet, "/api/donations", token, "").Code)
			assert.Equal(t, tt.list, s.do(t, http.MethodGet, "/api/donations/"+id, token, "").Code)
			assert.Equal(t, tt.create, s.do(t, http.MethodPost, "/api/donations", token, body).Code)
			assert.Equal(t, tt.patch, s.do(t, http.MethodPatch, "/api/donations/"+id, token, `{"notes": "updated"}`).Code)
			assert.Equal(t, tt.remove, s.do(t, http.MethodDelete, "/api/donations/"+id, token, "").Code)
		})
	}

	t.Run("anonymous", func(t *testing.T) {
		id := s.seedDonation(t)
		for _, c := range []struct{ method, path, body string }{
			{http.MethodGet, "/api/donations", ""},
			{http.MethodGet, "/api/donations/" + id, ""},
			{http.MethodPost, "/api/donations", body},
			{http.MethodPatch, "/api/donations/" + id, `{"notes": "x"}`},
			{http.MethodDelete, "/api/donations/" + id, ""},
		} {
			w := s.do(t, c.method, c.path, "", c.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code, c.method+" "+c.path)
			assert.Equal(t, "UNAUTHORIZED", decode(t, w).Error.Code)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		forged, err := auth.NewTokenService(auth.StaticSecret("some-other-secret")).Issue(auth.Claim{
			UserID: "user-admin", Email: "admin@example.com", Role: auth.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/donations", forged, "").Code)
	})
}

func TestRoleCheckRunsBeforeBodyParsing(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))

	w := s.do(t, http.MethodPost, "/api/donations", s.token(t, auth.RoleMember), `{not json`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, w).Error.Code)

	w = s.do(t, http.MethodPost, "/api/donations", "", `{not json`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDonationValidationAndLookup(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	admin := s.token(t, auth.RoleAdmin)

	w := s.do(t, http.MethodPost, "/api/donations", admin, `{"donation_date": "2025-04-06"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "amount")

	w = s.do(t, http.MethodPost, "/api/donations", admin, `{"amount": -5, "donation_date": "2025-04-06"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/donations", admin, `{"amount": 5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/donations/does-not-exist", admin, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, w).Error.Code)

	w = s.do(t, http.MethodDelete, "/api/donations/does-not-exist", admin, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDonationsListedNewestFirst(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	admin := s.token(t, auth.RoleAdmin)

	for _, date := range []string{"2025-01-05", "2025-03-05", "2025-02-05"} {
		w := s.do(t, http.MethodPost, "/api/donations", admin, `{"amount": 10, "donation_date": "`+date+`"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.do(t, http.MethodGet, "/api/donations", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []database.Donation
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, time.March, list[0].DonationDate.Month())
	assert.Equal(t, time.February, list[1].DonationDate.Month())
	assert.Equal(t, time.January, list[2].DonationDate.Month())
	assert.Equal(t, "user-admin", list[0].CreatedBy)
}

func TestMutationsAreAudited(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	admin := s.token(t, auth.RoleAdmin)

	w := s.do(t, http.MethodPost, "/api/members", admin, `{"name": "Ana", "status": "active"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	logs, err := s.services.AuditLogRepository().GetAuditLogs(context.Background(),
		repositories.AuditFilter{Action: "member_created"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "user-admin", logs[0].UserID)
	assert.Equal(t, "member", logs[0].Resource)

	w = s.do(t, http.MethodGet, "/api/audit-logs", admin, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/api/audit-logs", s.token(t, auth.RoleLeader), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardAccess(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/dashboard", "", "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/dashboard", s.token(t, auth.RoleMember), "").Code)

	w := s.do(t, http.MethodGet, "/api/dashboard", s.token(t, auth.RoleLeader), "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats repositories.DashboardStats
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &stats))
	assert.Zero(t, stats.ActiveMembers)
	assert.Zero(t, stats.MonthlyDonationTotal)

	w = s.do(t, http.MethodGet, "/api/ws/dashboard", s.token(t, auth.RoleMember), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardWebSocketFeed(t *testing.T) {
	var secret atomic.Value
	secret.Store(testSecret)
	s := newTestServer(t, auth.SecretProviderFunc(func() (string, bool) {
		v := secret.Load().(string)
		return v, v != ""
	}))

	srv := httptest.NewServer(s.router.Engine)
	defer srv.Close()

	header := http.Header{}
	header.Set("Cookie", auth.SessionCookieName+"="+s.token(t, auth.RoleLeader))
	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws/dashboard", header)
	require.NoError(t, err)
	defer conn.Close()
	resp.Body.Close()

	pongs := make(chan string, 1)
	conn.SetPongHandler(func(data string) error {
		select {
		case pongs <- data:
		default:
		}
		return nil
	})
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))

	var msg struct {
		Type string                      `json:"type"`
		Data repositories.DashboardStats `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "dashboard_stats", msg.Type)

	require.NoError(t, conn.WriteControl(websocket.PingMessage, []byte("hello"), time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "dashboard_stats", msg.Type)
	select {
	case data := <-pongs:
		assert.Equal(t, "hello", data)
	default:
		t.Fatal("no pong before the next push")
	}

	secret.Store("rotated-secret-0123456789abcdef")
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation), err.Error())
}

func (s *testServer) seedUser(t *testing.T, email, password string, role auth.Role) {
	t.Helper()
	hash, err := s.services.Passwords().Hash(password)
	require.NoError(t, err)
	require.NoError(t, s.services.UserRepository().Create(context.Background(), &database.User{
		Email: email, PasswordHash: hash, Name: "Test User", Role: string(role),
	}))
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	resp := w.Result()
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLoginSessionLifecycle(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	s.seedUser(t, "leader@example.com", "s3cret-pass", auth.RoleLeader)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", `{"email": "leader@example.com", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, w).Error.Code)
	assert.Nil(t, sessionCookie(w))

	w = s.do(t, http.MethodPost, "/api/auth/login", "", `{"email": "nobody@example.com", "password": "s3cret-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", "", `{"email": "Leader@Example.com", "password": "s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	assert.NotContains(t, cookie.Value, "leader@example.com")
	assert.NotContains(t, w.Body.String(), cookie.Value)

	w = s.do(t, http.MethodGet, "/api/auth/me", cookie.Value, "")
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &me))
	assert.Equal(t, "leader@example.com", me.Email)
	assert.Equal(t, "leader", me.Role)

	w = s.do(t, http.MethodGet, "/panel", cookie.Value, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/login", cookie.Value, "")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/panel", w.Header().Get("Location"))

	w = s.do(t, http.MethodPost, "/api/auth/logout", cookie.Value, "")
	require.Equal(t, http.StatusOK, w.Code)
	cleared := sessionCookie(w)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/auth/me", "", "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/auth/logout", "", "").Code)
}

func TestFormLoginRedirects(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	s.seedUser(t, "admin@example.com", "admin-pass", auth.RoleAdmin)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		s.router.Engine.ServeHTTP(w, req)
		return w
	}

	w := post(url.Values{"email": {"admin@example.com"}, "password": {"admin-pass"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/panel", w.Header().Get("Location"))
	assert.NotNil(t, sessionCookie(w))

	w = post(url.Values{"email": {"admin@example.com"}, "password": {"nope"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?error=invalid_credentials", w.Header().Get("Location"))
}

func TestLoginWithoutSecret(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(""))
	s.seedUser(t, "admin@example.com", "admin-pass", auth.RoleAdmin)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", `{"email": "admin@example.com", "password": "admin-pass"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "CONFIGURATION_ERROR", decode(t, w).Error.Code)
	assert.Nil(t, sessionCookie(w))

	w = s.do(t, http.MethodGet, "/panel", "anything", "")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestPublicPages(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	ctx := context.Background()

	require.NoError(t, s.services.EventRepository().Create(ctx, &database.Event{
		Title: "Culto de oración", EventDate: time.Now().Add(48 * time.Hour),
	}))
	require.NoError(t, s.services.StreamRepository().Create(ctx, &database.Stream{
		Title: "Culto dominical", StreamURL: "https://www.youtube.com/live/abc", ScheduledDate: time.Now().Add(24 * time.Hour),
	}))

	w := s.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Culto de oración")
	assert.Contains(t, w.Body.String(), "Culto dominical")

	w = s.do(t, http.MethodGet, "/api/public/home", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var home struct {
		Events  []map[string]interface{} `json:"events"`
		Streams []map[string]interface{} `json:"streams"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &home))
	assert.Len(t, home.Events, 1)
	assert.Len(t, home.Streams, 1)
	assert.NotContains(t, home.Events[0], "created_by")

	for _, p := range []string{"/politica-de-privacidad", "/politica-de-cookies", "/login"} {
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, p, "", "").Code, p)
	}

	for _, p := range []string{"/panel", "/panel/donations", "/panel/members/1"} {
		w := s.do(t, http.MethodGet, p, "", "")
		assert.Equal(t, http.StatusTemporaryRedirect, w.Code, p)
		assert.Equal(t, "/login", w.Header().Get("Location"), p)
	}

	w = s.do(t, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, w).Error.Code)
}

func TestPublicLists(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	ctx := context.Background()

	for i, status := range []string{"scheduled", "ongoing", "completed", "cancelled"} {
		require.NoError(t, s.services.EventRepository().Create(ctx, &database.Event{
			Title: "Evento " + status, EventDate: time.Now().Add(time.Duration(i+1) * time.Hour),
			Status: status, CreatedBy: "user-admin",
		}))
	}
	for _, status := range []string{"scheduled", "ended"} {
		require.NoError(t, s.services.StreamRepository().Create(ctx, &database.Stream{
			Title: "Directo " + status, StreamURL: "https://www.youtube.com/live/" + status,
			ScheduledDate: time.Now().Add(time.Hour), Status: status,
		}))
	}

	w := s.do(t, http.MethodGet, "/api/public/events", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var events []map[string]interface{}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &events))
	require.Len(t, events, 2)
	assert.Equal(t, "Evento scheduled", events[0]["title"])
	assert.Equal(t, "Evento ongoing", events[1]["title"])
	assert.NotContains(t, events[0], "created_by")

	w = s.do(t, http.MethodGet, "/api/public/events?limit=1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &events))
	assert.Len(t, events, 1)

	w = s.do(t, http.MethodGet, "/api/public/streams", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var streams []map[string]interface{}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &streams))
	require.Len(t, streams, 1)
	assert.Equal(t, "Directo scheduled", streams[0]["title"])
}

func TestEventDateOrderHoldsAcrossPatches(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	admin := s.token(t, auth.RoleAdmin)

	w := s.do(t, http.MethodPost, "/api/events", admin, `{"title": "Retiro", "event_date": "2025-05-10", "end_date": "2025-05-01"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Error.Fields, "end_date")

	w = s.do(t, http.MethodPost, "/api/events", admin, `{"title": "Retiro", "event_date": "2025-05-10"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created database.Event
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	path := "/api/events/" + created.ID

	w = s.do(t, http.MethodPatch, path, admin, `{"end_date": "2025-05-01"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Error.Fields, "end_date")

	stored, err := s.services.EventRepository().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.EndDate)

	w = s.do(t, http.MethodPatch, path, admin, `{"end_date": "2025-05-12"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stored, err = s.services.EventRepository().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.EndDate)
	assert.Equal(t, 12, stored.EndDate.Day())

	w = s.do(t, http.MethodPatch, path, admin, `{"event_date": "2025-05-20"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, path, admin, `{"end_date": ""}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stored, err = s.services.EventRepository().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.EndDate)

	w = s.do(t, http.MethodPatch, path, admin, `{"event_date": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHomePageSurvivesStoreFailure(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	require.NoError(t, s.services.DB.Close())

	w := s.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No hay eventos programados")
}

func TestPanelSections(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))
	member := s.token(t, auth.RoleMember)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/panel/donations", member, "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/panel/dashboard", member, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/panel/unknown", member, "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/panel/dashboard", s.token(t, auth.RoleAdmin), "").Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, auth.StaticSecret(testSecret))

	w := s.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/ping", "", "").Code)
}
