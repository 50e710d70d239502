package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hatra/internal/hatraapi"
	"hatra/internal/platform"
	"hatra/internal/session"
)

var loggerOnce sync.Once

func newTestApp(t *testing.T, handler http.Handler) (*App, *bytes.Buffer) {
	t.Helper()
	loggerOnce.Do(func() {
		platform.SetLogger(filepath.Join(t.TempDir(), "test.log"))
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.Load(filepath.Join(t.TempDir(), "session.json"))
	api := hatraapi.New(server.URL, 5*time.Second, sess.BearerToken)
	out := &bytes.Buffer{}
	cfg := &platform.Config{ApiUrl: server.URL, RequestTimeout: 5 * time.Second}
	return NewApp(cfg, api, sess, out), out
}

func userRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"_id":          "u1",
			"username":     "alice",
			"email":        "alice@example.com",
			"balance":      100.0,
			"referralCode": "ALICE123",
			"isActive":     true,
			"createdAt":    time.Now().AddDate(0, 0, -10).Format(time.RFC3339),
			"token":        "user-token",
		})
	})
	router.GET("/auth/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"_id":          "u1",
			"username":     "alice",
			"balance":      100.0,
			"referralCode": "ALICE123",
			"isActive":     true,
			"createdAt":    time.Now().AddDate(0, 0, -10).Format(time.RFC3339),
		})
	})
	router.GET("/auth/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"depositWallet":      "0xdeposit",
			"withdrawLockAmount": 65,
			"withdrawLockDays":   90,
			"minDeposit":         10,
			"minWithdraw":        10,
		})
	})
	router.GET("/user/referrals", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data":       []gin.H{},
			"pagination": gin.H{"page": 1, "pages": 1, "total": 5},
			"teamCounts": gin.H{"left": 3, "right": 2},
		})
	})
	return router
}

func TestLoginThenDashboard(t *testing.T) {
	app, out := newTestApp(t, userRouter())
	ctx := context.Background()

	assert.NoError(t, app.Run(ctx, []string{"login", "-email", "alice@example.com", "-password", "pw"}))
	assert.Contains(t, out.String(), "Welcome back, alice.")
	assert.True(t, app.Session.Active())

	out.Reset()
	assert.NoError(t, app.Run(ctx, []string{"dashboard"}))
	assert.Contains(t, out.String(), "Balance:   100.00 USDT")
	// ten days into the ninety-day lock, 65 of 100 stays frozen
	assert.Contains(t, out.String(), "Available: 35.00 USDT")
	assert.Contains(t, out.String(), "Team: 3 left / 2 right")
}

func TestMaintenancePreservesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"maintenanceMode": true, "message": "down"})
	})

	app, out := newTestApp(t, router)
	assert.NoError(t, app.Session.SetAuth("user-token", &platform.User{Username: "alice"}))

	err := app.Run(context.Background(), []string{"dashboard"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "under maintenance")
	// credentials survive a maintenance window
	assert.True(t, app.Session.Active())
}

func TestAuthFailureClearsSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
	})

	app, out := newTestApp(t, router)
	assert.NoError(t, app.Session.SetAuth("stale-token", &platform.User{Username: "alice"}))

	err := app.Run(context.Background(), []string{"transactions"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "session has expired")
	assert.False(t, app.Session.Active())
}

func TestWithdrawRejectsLockedFunds(t *testing.T) {
	app, out := newTestApp(t, userRouter())
	assert.NoError(t, app.Session.SetAuth("user-token", &platform.User{Username: "alice"}))

	// 40 exceeds the 35 available while the lock holds
	err := app.Run(context.Background(), []string{"withdraw", "-amount", "40", "-wallet", "0xdest"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "exceeds the available balance")
}

func TestWithdrawBelowMinimum(t *testing.T) {
	app, out := newTestApp(t, userRouter())
	assert.NoError(t, app.Session.SetAuth("user-token", &platform.User{Username: "alice"}))

	err := app.Run(context.Background(), []string{"withdraw", "-amount", "5", "-wallet", "0xdest"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "below the configured minimum")
}

func TestCommandsRequireLogin(t *testing.T) {
	app, out := newTestApp(t, userRouter())
	err := app.Run(context.Background(), []string{"dashboard"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "Please log in first.")
}

func TestAdminAreaRequiresAdminProfile(t *testing.T) {
	app, out := newTestApp(t, userRouter())
	assert.NoError(t, app.Session.SetAuth("user-token", &platform.User{Username: "alice", IsAdmin: true}))

	// the persisted snapshot claims admin, but the fresh profile says no
	err := app.Run(context.Background(), []string{"admin", "stats"})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "administrator access")
}

func TestUnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, userRouter())
	err := app.Run(context.Background(), []string{"frobnicate"})
	assert.Error(t, err)
}
