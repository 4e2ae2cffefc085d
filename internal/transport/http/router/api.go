package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"intern-tracker/internal/service"
	mdw "intern-tracker/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, svc *service.InternService) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Intern Tracker API is running successfully!")
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	reg := &Registry{}
	reg.Register(internModule{svc: svc})
	reg.MountAll(api)

	return r
}
