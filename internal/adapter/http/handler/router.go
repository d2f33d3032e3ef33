package handler

import (
	"goldvest-ledger/internal/adapter/http/middleware"
	"goldvest-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CalculatorSvc  ports.CalculatorService
	AccountSvc     ports.AccountQuoteService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte // nil = no /swagger routes
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	NewDocsHandler(deps.OpenAPISpec).register(r)

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}

	// rl returns the group's limiter, or a no-op when limiting is off.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	calc := NewCalculatorHandler(deps.CalculatorSvc)
	v1.GET("/rules", rl(middleware.GroupReference), calc.Rules)
	v1.GET("/levels/unlock", rl(middleware.GroupReference), calc.Unlock)

	quotes := v1.Group("/quotes", rl(middleware.GroupQuotes))
	{
		quotes.POST("/withdrawal", calc.Withdrawal)
		quotes.POST("/transfer", calc.Transfer)
		quotes.POST("/commission", calc.Commission)
		quotes.POST("/cap", calc.Cap)
	}

	accountHandler := NewAccountHandler(deps.AccountSvc)
	accounts := v1.Group("/accounts/:id", rl(middleware.GroupAccountQuotes))
	{
		accounts.POST("/withdrawal-quote", accountHandler.WithdrawalQuote)
		accounts.POST("/transfer-quote", accountHandler.TransferQuote)
		accounts.GET("/levels", accountHandler.Levels)
		accounts.GET("/cap", accountHandler.Cap)
	}

	return r
}
