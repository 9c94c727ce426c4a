package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academy-scheduler/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func newAuthRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": UserID(c), "admin": IsAdmin(c)})
	})
	r.GET("/admin", AuthMiddleware(cfg), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	r := newAuthRouter(cfg)

	cases := []struct {
		name   string
		header string
		path   string
		want   int
	}{
		{"missing header", "", "/me", http.StatusUnauthorized},
		{"not bearer", "Basic abc", "/me", http.StatusUnauthorized},
		{"bad signature", "Bearer " + signed(t, "other", jwt.MapClaims{"sub": 1, "exp": time.Now().Add(time.Hour).Unix()}), "/me", http.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, "s3cret", jwt.MapClaims{"sub": 1, "exp": time.Now().Add(-time.Hour).Unix()}), "/me", http.StatusUnauthorized},
		{"valid user", "Bearer " + signed(t, "s3cret", jwt.MapClaims{"sub": 7, "role": "user", "exp": time.Now().Add(time.Hour).Unix()}), "/me", http.StatusOK},
		{"user on admin route", "Bearer " + signed(t, "s3cret", jwt.MapClaims{"sub": 7, "role": "user", "exp": time.Now().Add(time.Hour).Unix()}), "/admin", http.StatusForbidden},
		{"admin on admin route", "Bearer " + signed(t, "s3cret", jwt.MapClaims{"sub": 1, "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}), "/admin", http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAuthMiddlewareSetsContext(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	r := newAuthRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, "s3cret", jwt.MapClaims{"sub": 7, "exp": time.Now().Add(time.Hour).Unix()}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"admin":false}`, w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, time.Minute)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.True(t, rl.Allow("10.0.0.9"))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnlistedOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://academy.test"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
