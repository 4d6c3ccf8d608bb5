package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "mbg_outreach/docs"
	"mbg_outreach/internal/adapter/http/handlers"
	"mbg_outreach/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathAPI         = "/api"
	shutdownTimeout = 10 * time.Second
)

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, app *bootstrap.App) error {
	if mode := app.Config.Server.GinMode; mode != "" {
		gin.SetMode(mode)
	}
	srv := &http.Server{
		Addr:              ":" + app.Config.Server.Port,
		Handler:           NewRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.Log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(app *bootstrap.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, app.Log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})))

	leadHandler := handlers.NewLeadHandler(app.LeadUseCase)
	automationHandler := handlers.NewAutomationHandler(app.Orchestrator, app.Scanner, app.RunLock, app.Log)
	webhookHandler := handlers.NewWebhookHandler(app.Outreach, app.Config.Webhook.VerifyToken, app.Log)

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addLeadRoutes(api, leadHandler)
	addAutomationRoutes(api, automationHandler)
	addWebhookRoutes(api, webhookHandler)

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors())
}

// cors allows the dashboard to call the API from any origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
