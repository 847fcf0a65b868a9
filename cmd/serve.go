package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ingostrakh/insurehub/internal/dashboard"
	"github.com/ingostrakh/insurehub/internal/metrics"
	"github.com/ingostrakh/insurehub/internal/server"
	"github.com/ingostrakh/insurehub/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard page server",
	Long:  `Starts the HTTP server for the dashboard page, the view-state actions, the JSON state API and the live state websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		formatter, err := newFormatter(cfg)
		if err != nil {
			return err
		}

		sessions := session.NewStore(session.Config{
			MaxSessions: cfg.Session.MaxSessions,
			TTL:         cfg.Session.TTL,
		})

		srvCfg := server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}
		var m *metrics.Metrics
		if cfg.Metrics.Enabled {
			reg := metrics.NewRegistry()
			m = metrics.New(reg, sessions.Len)
			srvCfg.Metrics = metrics.Handler(reg)
		}

		srv := server.New(srvCfg, logger)
		dash := dashboard.New(cat, sessions, dashboard.Options{
			CookieName:   cfg.Session.CookieName,
			CookieTTL:    cfg.Session.TTL,
			SecureCookie: cfg.Session.SecureCookie,
			LiveUpdates:  cfg.Server.LiveUpdates,
			Formatter:    formatter,
			Metrics:      m,
			Logger:       logger,
		})
		dash.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", zap.Error(err))
			}
		}()

		logger.Info("insurehub starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.String("company", cat.Company().Name),
			zap.String("locale", formatter.Locale().String()),
			zap.Bool("metrics", cfg.Metrics.Enabled),
		)

		if err := srv.Start(); err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
