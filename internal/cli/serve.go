package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/RyuKangIn/GPT-Killer-Killer/internal/api"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/config"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/detector"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/utils"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP scoring service",
	Long: `Starts the scoring service.

Endpoints:
  GET  /health         liveness plus active request count
  GET  /metrics        request counters and runtime stats
  POST /ai/gpt_killer  score one Korean text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if servePort != "" {
			cfg.App.ServerPort = servePort
		}

		logger := utils.NewLogger(cfg.App.LogLevel)

		det, err := buildDetector(cfg)
		if err != nil {
			return err
		}

		metrics := &api.ServerMetrics{}
		handler := api.NewHandler(logger, det, cfg, metrics)
		mw := api.NewMiddleware(logger, cfg, metrics)
		mw.StartLimiterSweep(cfg.App.LimiterSweep)

		mux := http.NewServeMux()
		api.RegisterRoutes(mux, handler, mw)

		srv := &http.Server{
			Addr:         "0.0.0.0:" + cfg.App.ServerPort,
			Handler:      mw.WithRequestID(mw.WithLogging(mw.WithRecovery(mux))),
			ReadTimeout:  cfg.App.ReadTimeout,
			WriteTimeout: cfg.App.WriteTimeout,
			IdleTimeout:  cfg.App.IdleTimeout,
		}

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			logger.Info("Shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()

		logger.Info("Starting Korean AI-text scoring service")
		logger.Info("Environment: %s", cfg.App.Env)
		logger.Info("Listening on port %s", cfg.App.ServerPort)
		logger.Info("Endpoints:")
		logger.Info("  GET  /health")
		logger.Info("  GET  /metrics")
		logger.Info("  POST /ai/gpt_killer")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func buildDetector(cfg *config.Config) (*detector.Detector, error) {
	lexicon := detector.DefaultLexicon()
	if cfg.Detector.LexiconPath != "" {
		loaded, err := detector.LoadLexicon(cfg.Detector.LexiconPath)
		if err != nil {
			return nil, err
		}
		lexicon = loaded
	}
	return detector.New(lexicon), nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides APP_SERVER_PORT)")
}
