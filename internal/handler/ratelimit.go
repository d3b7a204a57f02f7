package handler

import (
	"fmt"
	"sync"
	"time"

	"quiz-service/domain"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	PerUserPerMinute  int
	PerUserBurst      int
}

// RateLimiter throttles all traffic and, when configured, each caller separately.
type RateLimiter struct {
	config RateLimitConfig

	globalLimiter *rate.Limiter

	userLimiters sync.Map
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{config: cfg}
	if cfg.RequestsPerMinute > 0 {
		rl.globalLimiter = rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)),
			max(cfg.Burst, 1),
		)
	}
	return rl
}

func (rl *RateLimiter) getOrCreateUserLimiter(userID string) *rate.Limiter {
	if rl.config.PerUserPerMinute <= 0 || userID == "" {
		return nil
	}

	limiter, _ := rl.userLimiters.LoadOrStore(userID, rate.NewLimiter(
		rate.Every(time.Minute/time.Duration(rl.config.PerUserPerMinute)),
		max(rl.config.PerUserBurst, 1),
	))
	return limiter.(*rate.Limiter)
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl.globalLimiter != nil && !rl.globalLimiter.Allow() {
			return WriteError(c, fiber.StatusTooManyRequests, fmt.Errorf("%w: global rate limit exceeded", domain.ErrRateLimited))
		}

		if userLimiter := rl.getOrCreateUserLimiter(c.Get(UserIDHeader)); userLimiter != nil {
			if !userLimiter.Allow() {
				return WriteError(c, fiber.StatusTooManyRequests, fmt.Errorf("%w: too many requests, slow down", domain.ErrRateLimited))
			}
		}

		return c.Next()
	}
}
