package main

import (
	"strings"
	"time"

	"wedding-server/config"
	"wedding-server/db"
	"wedding-server/handlers"
	"wedding-server/logger"
	"wedding-server/metrics"
	"wedding-server/middleware"
	"wedding-server/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	db.Init()
	models.Init()
	metrics.Init(config.METRICS_PREFIX)
	log := logger.Get()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	_ = router.SetTrustedProxies([]string{})
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics())
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	}

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	// Guest handlers
	api.GET("/guests/search", handlers.GuestSearch)
	api.GET("/guests/invitation/:invitationId", handlers.GuestListByInvitation)
	api.GET("/guests", handlers.GuestList)
	api.GET("/guests/:id", handlers.GuestGet)
	api.POST("/guests", handlers.GuestCreate)
	api.PUT("/guests/:id", handlers.GuestUpdate)
	api.DELETE("/guests/:id", handlers.GuestDelete)
	api.POST("/guests/bulk-delete", handlers.GuestBulkDelete)
	// Invitation handlers
	api.GET("/invitations/stats", handlers.InvitationStats)
	api.GET("/invitations", handlers.InvitationList)
	api.GET("/invitations/:id", handlers.InvitationGet)
	api.POST("/invitations", handlers.InvitationCreate)
	api.PUT("/invitations/:id", handlers.InvitationUpdate)
	api.DELETE("/invitations/:id", handlers.InvitationDelete)
	// CSV import handlers
	api.POST("/import/guests", handlers.ImportGuests)
	api.GET("/import/unassigned", handlers.UnassignedGuests)
	api.POST("/import/assign-invitation", handlers.AssignInvitation)
	// Public RSVP submission
	api.POST("/rsvp", handlers.RsvpSubmit)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatal("Server stopped", zap.Error(err))
}
