package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/skillscope/skillscope/internal/ai"
	"github.com/skillscope/skillscope/internal/ai/gemini"
	"github.com/skillscope/skillscope/internal/extract"
	"github.com/skillscope/skillscope/internal/intake"
	"github.com/skillscope/skillscope/internal/logger"
	"github.com/skillscope/skillscope/internal/secrets"
	"github.com/skillscope/skillscope/internal/server"
	"github.com/skillscope/skillscope/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultAddress        = ":8080"
	defaultMaxUploadBytes = 10 << 20

	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the skillscope HTTP server",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "address to listen on (default "+defaultAddress+")")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

// serve is the main command for the http server.
func serve(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the skillscope server", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	address := strings.TrimSpace(config.Server.Address)
	if address == "" {
		address = defaultAddress
	}

	maxUpload := config.Intake.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	analyzer, err := newAnalyzer(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("resume analysis disabled",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY or the ai.gemini section in the configuration file"),
		)
	}

	adapter := intake.New(extract.NewPDF(), analyzer, logger, int64(maxUpload))

	srv := server.New(server.Deps{
		Logger:    logger,
		Intake:    adapter,
		Store:     session.NewStore(),
		BodyLimit: maxUpload * 2,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(address)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}
}

func newAnalyzer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Analyzer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, err
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	analyzerLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewAnalyzer(generator, analyzerLogger, cfg.Gemini.MaxLogLength), nil
}
