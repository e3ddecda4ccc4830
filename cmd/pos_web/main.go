package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/pos-web-client/internal/cart"
	customerapi "github.com/ridloal/pos-web-client/internal/customers/api"
	customerservice "github.com/ridloal/pos-web-client/internal/customers/service"
	inventoryapi "github.com/ridloal/pos-web-client/internal/inventory/api"
	inventoryservice "github.com/ridloal/pos-web-client/internal/inventory/service"
	"github.com/ridloal/pos-web-client/internal/platform/config"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
	"github.com/ridloal/pos-web-client/internal/platform/session"
	"github.com/ridloal/pos-web-client/internal/posapi"
	"github.com/ridloal/pos-web-client/internal/refresh"
	refreshapi "github.com/ridloal/pos-web-client/internal/refresh/api"
	salesapi "github.com/ridloal/pos-web-client/internal/sales/api"
	salesservice "github.com/ridloal/pos-web-client/internal/sales/service"
	staffapi "github.com/ridloal/pos-web-client/internal/staff/api"
	staffservice "github.com/ridloal/pos-web-client/internal/staff/service"
	statisticsapi "github.com/ridloal/pos-web-client/internal/statistics/api"
	statisticsservice "github.com/ridloal/pos-web-client/internal/statistics/service"
	"github.com/ridloal/pos-web-client/internal/view"
	"github.com/ridloal/pos-web-client/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load Config
	config.LoadDotEnv()
	cfg := config.LoadWebConfig("8090")
	logger.Init(cfg.Logger.Level, cfg.Logger.Encoding)
	defer logger.Sync()

	production := cfg.Server.AppEnv == "production"
	if production {
		gin.SetMode(gin.ReleaseMode)
	}
	if os.Getenv("SESSION_SECRET_KEY") == "" {
		logger.Warn("SESSION_SECRET_KEY is not set, using the development secret")
	}

	logger.Info("Starting POS web client...", "env", cfg.Server.AppEnv, "api", cfg.API.BaseURL)

	views := view.MustNew()

	// Per-visitor state
	carts := cart.NewStore(cfg.Session.TTL)
	tracker := refresh.NewTracker(refresh.Threshold, cfg.Session.TTL)
	if err := carts.StartSweeper(cfg.Session.SweepSpec, tracker); err != nil {
		logger.Error("Failed to start cart sweeper", err)
		return
	}
	defer carts.Stop()
	sessions := session.NewManager(cfg.Session, production)

	// Setup Dependencies
	client := posapi.NewHTTPClient(cfg.API)
	salesSvc := salesservice.NewSalesService(client, client, client, carts)
	inventorySvc := inventoryservice.NewInventoryService(client, client, client)
	catalogSvc := inventoryservice.NewCatalogService(client, client)
	customerSvc := customerservice.NewCustomerService(client)
	statisticsSvc := statisticsservice.NewStatisticsService(client, client, client, client)
	staffSvc := staffservice.NewStaffService(client)

	apiProxy, err := web.NewAPIProxy(cfg.API.BaseURL)
	if err != nil {
		logger.Error("Failed to create backend proxy", err, "target", cfg.API.BaseURL)
		return
	}

	// Setup Gin Router
	router := gin.Default()
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.Any("/api/*path", web.ProxyHandler(apiProxy))

	refreshHandler := refreshapi.NewRefreshHandler(tracker)

	ui := router.Group("/ui")
	ui.Use(sessions.Middleware(), refreshHandler.TrackLoads("/ui"))
	ui.GET("/loading", web.Loading(views))
	salesapi.NewSalesHandler(salesSvc, views).RegisterRoutes(ui)
	inventoryapi.NewInventoryHandler(inventorySvc, catalogSvc, views).RegisterRoutes(ui)
	customerapi.NewCustomerHandler(customerSvc, views).RegisterRoutes(ui)
	statisticsapi.NewStatisticsHandler(statisticsSvc, views).RegisterRoutes(ui)
	staffapi.NewStaffHandler(staffSvc, views).RegisterRoutes(ui)
	refreshHandler.RegisterRoutes(ui)

	server := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("POS web client running on port " + cfg.Server.Port)
		if errSrv := server.ListenAndServe(); errSrv != nil && !errors.Is(errSrv, http.ErrServerClosed) {
			logger.Error("Failed to run POS web client server", errSrv)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down POS web client...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", err)
	}
}
