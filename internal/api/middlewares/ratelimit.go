package middlewares

import (
	"net/http"
	"sync"
	"time"

	"church-portal/internal/api/models"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed one-minute window counter per client IP
type RateLimiter struct {
	clients map[string]*client
	mutex   sync.Mutex
	rate    int
	window  time.Duration
	cleanup time.Duration
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

type client struct {
	lastSeen time.Time
	count    int
	window   time.Time
}

// NewRateLimiter creates a new rate limiter allowing rate requests per minute
func NewRateLimiter(rate int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		rate:    rate,
		window:  time.Minute,
		cleanup: time.Minute * 10,
		now:     time.Now,
		done:    make(chan struct{}),
	}

	// Start cleanup goroutine
	go rl.cleanupExpiredClients()
	return rl
}

// RateLimit middleware rejects clients over the limiter's rate with 429
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			AbortWithError(c, models.NewAPIError(models.ErrCodeRateLimited,
				"Rate limit exceeded. Please try again later.", http.StatusTooManyRequests))
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	if rl.rate <= 0 {
		return true
	}

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	v, exists := rl.clients[ip]

	if !exists {
		rl.clients[ip] = &client{
			lastSeen: now,
			count:    1,
			window:   now,
		}
		return true
	}

	v.lastSeen = now

	// Reset counter if window has passed
	if now.Sub(v.window) >= rl.window {
		v.count = 1
		v.window = now
		return true
	}

	if v.count >= rl.rate {
		return false
	}

	v.count++
	return true
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) cleanupExpiredClients() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mutex.Lock()
			now := rl.now()
			for ip, v := range rl.clients {
				if now.Sub(v.lastSeen) > rl.cleanup {
					delete(rl.clients, ip)
				}
			}
			rl.mutex.Unlock()
		}
	}
}
