package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GeminiAPIKey      string // необязательный ключ по умолчанию, если клиент его не прислал
	GeminiModel       string
	GeminiTemperature float32

	RequestTimeout time.Duration

	LogLevel string
	LogJSON  bool

	NormalizerExtractor string // greedy | balanced
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// Load reads the environment, after merging an optional .env file (or the
// files listed in ENV_FILE, comma separated). Existing variables win.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8000"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		NormalizerExtractor: getEnv("NORMALIZER_EXTRACTOR", "greedy"),
	}

	var errs []error

	temp, err := strconv.ParseFloat(getEnv("GEMINI_TEMPERATURE", "0.2"), 32)
	if err != nil || temp < 0 || temp > 2 {
		errs = append(errs, fmt.Errorf("GEMINI_TEMPERATURE must be a number in [0, 2]"))
	}
	cfg.GeminiTemperature = float32(temp)

	sec, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SEC", "180"))
	if err != nil || sec <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT_SEC must be a positive integer"))
	}
	cfg.RequestTimeout = time.Duration(sec) * time.Second

	cfg.LogJSON, err = strconv.ParseBool(getEnv("LOG_JSON", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_JSON must be a boolean"))
	}

	switch strings.ToLower(cfg.NormalizerExtractor) {
	case "greedy", "balanced":
	default:
		errs = append(errs, fmt.Errorf("NORMALIZER_EXTRACTOR must be greedy or balanced, got %q", cfg.NormalizerExtractor))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func loadDotEnv() error {
	files := strings.Split(getEnv("ENV_FILE", ".env"), ",")
	for _, f := range files {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}
