package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/telemetry"
)

// RateLimit keeps one token bucket per client IP. Idle buckets expire after ten minutes.
func RateLimit(rps float64, burst int, m *telemetry.Metrics) gin.HandlerFunc {
	buckets := cache.New(10*time.Minute, 20*time.Minute)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		var lim *rate.Limiter
		if v, ok := buckets.Get(ip); ok {
			lim = v.(*rate.Limiter)
		} else {
			lim = rate.NewLimiter(rate.Limit(rps), burst)
			// a concurrent Add for the same ip fails and we pick up the winner
			if err := buckets.Add(ip, lim, cache.DefaultExpiration); err != nil {
				if v, ok := buckets.Get(ip); ok {
					lim = v.(*rate.Limiter)
				}
			}
		}
		// sliding expiry
		buckets.Set(ip, lim, cache.DefaultExpiration)

		if !lim.Allow() {
			if m != nil {
				m.RateLimited.WithLabelValues(c.FullPath()).Inc()
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, serializer.Err(http.StatusTooManyRequests, "too many requests", nil))
			return
		}
		c.Next()
	}
}
