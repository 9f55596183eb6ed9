package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/apiserver/handler"
	"github.com/workdesk/backoffice/internal/apiserver/idgen"
	"github.com/workdesk/backoffice/internal/apiserver/provision"
	"github.com/workdesk/backoffice/internal/auth/jwt"
	"github.com/workdesk/backoffice/internal/common/config"
	"github.com/workdesk/backoffice/internal/notifier"
	"github.com/workdesk/backoffice/pkg/logger"
	"github.com/workdesk/backoffice/pkg/metrics"
	"github.com/workdesk/backoffice/pkg/version"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "Back office API server",
		Long:  `Serves the task and process tracking API and runs the daily process provisioning job`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	cfg, cfgPath, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	loc, err := time.LoadLocation(cfg.Provision.TimeZone)
	if err != nil {
		zapLogger.Fatal("Invalid provision timezone",
			zap.String("timezone", cfg.Provision.TimeZone), zap.Error(err))
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	jwtService, err := jwt.NewService(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Duration:  cfg.JWT.Duration,
	})
	if err != nil {
		zapLogger.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	notify, err := notifier.New(&cfg.Notifier, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize notifier", zap.Error(err))
	}

	gen := idgen.NewGenerator(db)
	if err := database.InitSuperAdmin(context.Background(), db, &cfg.SuperAdmin, gen.NextUserID); err != nil {
		zapLogger.Fatal("Failed to seed super admin", zap.Error(err))
	}

	m := metrics.New(cfg.Metrics.Namespace)
	clock := provision.SystemClock()
	provisioner := provision.NewProvisioner(db, gen, clock, loc, zapLogger, m)

	scheduler, err := provision.NewScheduler(provisioner, clock, loc, cfg.Provision.RunAt, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize scheduler", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), m.Middleware())
	router.GET("/metrics", gin.WrapH(m.Handler()))

	h := handler.NewHandler(db, jwtService, notify, gen, clock, loc, provisioner, zapLogger)
	h.RegisterRoutes(router)

	addr := fmt.Sprintf(":%d", cfg.Port)
	zapLogger.Info("Listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute command: %v", err)
	}
}
