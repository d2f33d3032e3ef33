package middleware

import (
	"fmt"
	"strconv"
	"time"

	"goldvest-ledger/internal/core/domain"
	"goldvest-ledger/internal/core/ports"
	"goldvest-ledger/pkg/apperror"
	"goldvest-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Endpoint groups that share a rate limit.
const (
	GroupReference     = "reference"
	GroupQuotes        = "quotes"
	GroupAccountQuotes = "account_quotes"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// RateLimitRules derives per-group limits from the configured base: the
// read-only reference endpoints get twice the base, account quotes half of
// it since each one reads the provider.
func RateLimitRules(requests int64, window time.Duration) map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupReference:     {Limit: requests * 2, Window: window},
		GroupQuotes:        {Limit: requests, Window: window},
		GroupAccountQuotes: {Limit: max(requests/2, 1), Window: window},
	}
}

// DefaultRateLimitRules is RateLimitRules(60, time.Minute).
func DefaultRateLimitRules() map[string]RateLimitRule {
	return RateLimitRules(60, time.Minute)
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Store errors let the request through.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := max(result.ResetAt-time.Now().Unix(), 1)
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys requests by client IP, narrowed to the account on
// account routes so one client cannot spend another client's budget.
func extractIdentifier(c *gin.Context) string {
	ip := c.ClientIP()
	if id := c.Param("id"); domain.ValidAccountID(id) {
		return ip + ":" + id
	}
	return ip
}
