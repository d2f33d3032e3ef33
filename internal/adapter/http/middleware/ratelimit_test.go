package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goldvest-ledger/internal/adapter/http/middleware"
	redisStore "goldvest-ledger/internal/adapter/storage/redis"
	"goldvest-ledger/internal/core/ports"
	"goldvest-ledger/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRateLimitRouter(store ports.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	handler := func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) }
	r.GET("/test", middleware.RateLimiter(store, "test", rule, log), handler)
	r.GET("/accounts/:id/cap", middleware.RateLimiter(store, "test", rule, log), handler)
	return r
}

func newRedisStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func get(router *gin.Engine, path, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t))

	for i := 0; i < 3; i++ {
		w := get(router, "/test", "10.0.0.1:1234")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "/test", "10.0.0.1:1234").Code)
	}

	w := get(router, "/test", "10.0.0.1:1234")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")

	// Another client is unaffected.
	assert.Equal(t, 200, get(router, "/test", "10.0.0.2:1234").Code)
}

func TestRateLimiter_KeysAccountRoutesByClientAndAccount(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "/accounts/GV-12345/cap", "10.0.0.1:1").Code, "request %d", i+1)
	}
	assert.Equal(t, 429, get(router, "/accounts/GV-12345/cap", "10.0.0.1:1").Code)

	// Another client asking about the same account keeps its own budget.
	assert.Equal(t, 200, get(router, "/accounts/GV-12345/cap", "10.0.0.2:1").Code)
	// The exhausted client can still query a different account.
	assert.Equal(t, 200, get(router, "/accounts/GV-45678/cap", "10.0.0.1:1").Code)
}

func TestRateLimiter_AccountKeyIncludesClientIP(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRateLimitStore(ctrl)
	store.EXPECT().
		Allow(gomock.Any(), "10.0.0.9:GV-12345:test", int64(3), time.Minute).
		Return(&ports.RateLimitResult{Allowed: true, Limit: 3, Remaining: 2}, nil)

	w := get(setupRateLimitRouter(store), "/accounts/GV-12345/cap", "10.0.0.9:4321")
	assert.Equal(t, 200, w.Code)
}

func TestRateLimiter_DegradesOpenOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRateLimitStore(ctrl)
	store.EXPECT().
		Allow(gomock.Any(), "10.0.0.1:test", int64(3), time.Minute).
		Return(nil, errors.New("redis down"))

	w := get(setupRateLimitRouter(store), "/test", "10.0.0.1:1234")
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitRules(t *testing.T) {
	rules := middleware.RateLimitRules(60, time.Minute)

	assert.Equal(t, int64(120), rules[middleware.GroupReference].Limit)
	assert.Equal(t, int64(60), rules[middleware.GroupQuotes].Limit)
	assert.Equal(t, int64(30), rules[middleware.GroupAccountQuotes].Limit)

	tiny := middleware.RateLimitRules(1, time.Second)
	assert.Equal(t, int64(1), tiny[middleware.GroupAccountQuotes].Limit)

	assert.Equal(t, rules, middleware.DefaultRateLimitRules())
}
