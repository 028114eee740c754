package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cbcberry/berrysite/internal/config"
	"github.com/cbcberry/berrysite/internal/forms"
	"github.com/cbcberry/berrysite/internal/live"
	"github.com/cbcberry/berrysite/internal/mail"
	"github.com/cbcberry/berrysite/internal/pages"
	"github.com/cbcberry/berrysite/internal/redirects"
	"github.com/cbcberry/berrysite/internal/server"
	"github.com/cbcberry/berrysite/internal/visitor"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long:  `Starts the HTTP server: pages, live page sessions on /ws/page, and the /api/contact and /api/apply form endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		srv, err := buildServer(cfg, logger, forms.NewStore(database))
		if err != nil {
			return err
		}

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

		logger.Info("berrysite starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Port),
			zap.String("database", database.Path()),
			zap.Bool("mail_configured", cfg.Mail.APIKey != ""),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// buildServer wires every site component from the config.
func buildServer(cfg *config.Config, logger *zap.Logger, store *forms.Store) (*server.Server, error) {
	table, err := redirects.NewTable(cfg.Redirects)
	if err != nil {
		return nil, fmt.Errorf("building redirect table: %w", err)
	}

	composer, err := mail.NewComposer(mail.Senders{
		To:          cfg.Mail.To,
		ContactFrom: cfg.Mail.ContactFrom,
		CareersFrom: cfg.Mail.CareersFrom,
		ConfirmFrom: cfg.Mail.ConfirmFrom,
	})
	if err != nil {
		return nil, fmt.Errorf("building mail composer: %w", err)
	}
	if cfg.Mail.APIKey == "" {
		logger.Warn("mail api key is not set; form submissions will fail to deliver")
	}
	mailer := mail.NewResendClient(cfg.Mail.Endpoint, cfg.Mail.APIKey, cfg.MailTimeout())

	opts := []forms.Option{
		forms.WithLogger(logger.Named("forms")),
		forms.WithMaxResume(cfg.MaxResumeBytes()),
	}
	if cfg.Geo.Enabled {
		opts = append(opts, forms.WithLocator(visitor.NewIPAPILocator(cfg.Geo.BaseURL, cfg.GeoTimeout())))
	}
	formsSvc := forms.NewService(store, composer, mailer, opts...)

	renderer, err := pages.NewRenderer(pages.DefaultCatalog(), pages.WithBaseURL(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("building page renderer: %w", err)
	}

	liveHandler := live.NewHandler(renderer.Catalog(),
		live.WithLogger(logger.Named("live")),
		live.WithSkipWindow(cfg.SkipWindow()),
		live.WithAllowAllOrigins(cfg.AllowAllOrigins),
	)

	return server.New(server.Config{
		Port:      cfg.Port,
		PublicDir: cfg.PublicDir,
		AllowAll:  cfg.AllowAllOrigins,
	}, logger, table, formsSvc, renderer, liveHandler), nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
