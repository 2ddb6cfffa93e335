package api

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/nluthra2001/schedsim/internal/config"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than cfg.IdleTTL are swept on the next lookup after the TTL elapses.
type rateLimiter struct {
	clients   map[string]*clientLimiter
	mu        sync.Mutex
	cfg       config.RateLimitConfig
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	return &rateLimiter{
		clients:   make(map[string]*clientLimiter),
		cfg:       cfg,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (rl *rateLimiter) limiter(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	c, exists := rl.clients[client]
	if !exists {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst)}
		rl.clients[client] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep must be called with mu held.
func (rl *rateLimiter) sweep(now time.Time) {
	if rl.cfg.IdleTTL <= 0 || now.Sub(rl.lastSweep) < rl.cfg.IdleTTL {
		return
	}
	for client, c := range rl.clients {
		if now.Sub(c.lastSeen) >= rl.cfg.IdleTTL {
			delete(rl.clients, client)
		}
	}
	rl.lastSweep = now
}

func (rl *rateLimiter) handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl.cfg.RPS <= 0 {
			return c.Next()
		}
		if !rl.limiter(c.IP()).Allow() {
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		return c.Next()
	}
}
