package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/troll020troll020-byte/REP-TOBOLTFORMATTING/internal/app"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		addr        string
		uploadDir   string
		outputDir   string
		maxUploadMB int64
		style       string
		configPath  string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		verbose     bool
	)

	flag.StringVar(&addr, "addr", "", "Listen address (default :8080)")
	flag.StringVar(&uploadDir, "upload.dir", "", "Directory for stored uploads (default uploads)")
	flag.StringVar(&outputDir, "output.dir", "", "Directory for rendered documents (default formatted)")
	flag.Int64Var(&maxUploadMB, "max.uploadMB", 0, "Maximum upload size in MiB (default 16)")
	flag.StringVar(&style, "style", "", "Default citation style label (default Harvard)")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for reference assist (optional)")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for reference assist")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the assist backend")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		Addr:       addr,
		UploadDir:  uploadDir,
		OutputDir:  outputDir,
		StyleLabel: style,
		LLMBaseURL: llmBaseURL,
		LLMModel:   llmModel,
		LLMAPIKey:  llmKey,
		Verbose:    verbose,
	}
	if maxUploadMB > 0 {
		cfg.MaxUploadBytes = maxUploadMB << 20
	}

	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(1)
		}
		fc.Apply(&cfg)
	}

	// Defaults after flag/file merge so either source can win.
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "formatted"
	}
	if cfg.MaxUploadBytes == 0 {
		cfg.MaxUploadBytes = 16 << 20
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("init failed")
		os.Exit(1)
	}
	defer a.Close()

	srv := a.NewServer()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.Addr).Msg("citefmtd listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
