package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"formula-viz/api/internal/config"
	"formula-viz/api/internal/handle"
	"formula-viz/api/internal/httpserver"
	"formula-viz/api/internal/llm"
	"formula-viz/api/internal/llm/gemini"
	"formula-viz/api/internal/llmjson"
	"formula-viz/api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.FromContext(context.Background()).Error("config", "error", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Output:     os.Stdout,
		JSON:       cfg.LogJSON,
		TimeFormat: "15:04:05",
	})
	logger.SetDefault(log)

	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	engines := &llm.Engines{
		Gemini: gemini.New(cfg.GeminiTemperature),
	}
	normalizer := llmjson.New(llmjson.WithExtractor(llmjson.ExtractorByName(cfg.NormalizerExtractor)))
	h := handle.New(engines,
		handle.WithDefaultCredentials(llm.Credentials{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel}),
		handle.WithTimeout(cfg.RequestTimeout),
		handle.WithNormalizer(normalizer),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := httpserver.NewMux(h, "ok")
	log.Info("llm-proxy starting", "model", cfg.GeminiModel, "extractor", cfg.NormalizerExtractor)
	if err := httpserver.Run(ctx, ":"+cfg.Port, httpserver.WithLogging(log, mux), log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
