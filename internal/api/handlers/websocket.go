package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/api/middlewares"
	"church-portal/internal/api/models"
	"church-portal/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

func newUpgrader(allowed []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, o := range allowed {
				if o == origin {
					return true
				}
			}
			u, err := url.Parse(origin)
			return err == nil && u.Host == r.Host
		},
	}
}

// DashboardWebSocket streams dashboard statistics to admins and leaders.
// The session is re-validated before every push and the feed ends when it
// expires.
func DashboardWebSocket(services interfaces.Services) gin.HandlerFunc {
	cfg := services.GetConfig()
	upgrader := newUpgrader(cfg.API.CORS.AllowedOrigins)
	interval := cfg.API.DashboardPushInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return func(c *gin.Context) {
		claim, ok := requirePermission(c, services, auth.OpViewDashboard)
		if !ok {
			return
		}

		log := requestLogger(c, services).WithField("user_id", claim.UserID)
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warning("WebSocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		log.Info("Dashboard WebSocket connection established")

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()
		go readUntilClosed(conn, cancel)

		jar := middlewares.CookieJar(c)
		push := func() bool {
			if services.Sessions().GetSession(jar) == nil {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session expired"),
					time.Now().Add(writeWait))
				return false
			}
			stats, err := services.DashboardRepository().Stats(ctx, time.Now())
			if err != nil {
				log.Error("failed to load dashboard stats: %v", err)
				return true
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			err = conn.WriteJSON(models.WebSocketMessage{
				Type:      "dashboard_stats",
				Data:      stats,
				Timestamp: time.Now().Unix(),
			})
			return err == nil
		}

		if !push() {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		pinger := time.NewTicker(pingPeriod)
		defer pinger.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Dashboard WebSocket connection closed")
				return
			case <-ticker.C:
				if !push() {
					return
				}
			case <-pinger.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}
}

// readUntilClosed services pongs and close frames; incoming data is ignored
func readUntilClosed(conn *websocket.Conn, done context.CancelFunc) {
	defer done()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
