package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
)

// maxTrackedIPs tope de limitadores en memoria; al superarlo se reinicia el mapa.
const maxTrackedIPs = 10000

// LoginRateLimiter limita los intentos de login por IP (token bucket por dirección).
type LoginRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewLoginRateLimiter perMinute intentos sostenidos por minuto, burst intentos seguidos.
func NewLoginRateLimiter(perMinute, burst int) *LoginRateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 5
	}
	return &LoginRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
	}
}

// Allow consume un intento para ip.
func (l *LoginRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[ip]
	if !ok {
		if len(l.limiters) >= maxTrackedIPs {
			l.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// Handler middleware Fiber: responde 429 cuando la IP agotó sus intentos.
func (l *LoginRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.Allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.Fail("TOO_MANY_ATTEMPTS", "demasiados intentos; espere un momento"))
		}
		return c.Next()
	}
}
