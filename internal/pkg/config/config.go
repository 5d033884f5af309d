package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"invoicer/internal/entities"
	"invoicer/internal/service/resolver"
)

type (
	Pipeline struct {
		InputPath       string
		EnrichedPath    string
		OutputDir       string
		SchemaVersion   string
		Mode            entities.AggregationMode
		LazyQuotes      bool
		AppendStoreTag  bool
		DispatchWorkers int
	}

	InvoiceAPI struct {
		URL            string
		RequestTimeout time.Duration
	}

	Stores struct {
		File          string
		OnUnavailable resolver.UnavailablePolicy
	}

	Debug struct {
		MetricsEnabled bool
		MetricsPort    string
		PprofEnabled   bool
		PprofPort      string
	}

	Config struct {
		Pipeline   Pipeline
		InvoiceAPI InvoiceAPI
		Stores     Stores
		Debug      Debug
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	lazyQuotes, err := osGetBool("PIPELINE_LAZY_QUOTES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	appendStoreTag, err := osGetBool("PIPELINE_APPEND_STORE_TAG")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dispatchWorkers, err := osGetInt("PIPELINE_DISPATCH_WORKERS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("INVOICE_API_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	metricsEnabled, err := osGetBool("METRICS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Pipeline: Pipeline{
			InputPath:       os.Getenv("PIPELINE_INPUT"),
			EnrichedPath:    os.Getenv("PIPELINE_ENRICHED_OUTPUT"),
			OutputDir:       os.Getenv("PIPELINE_OUTPUT_DIR"),
			SchemaVersion:   os.Getenv("PIPELINE_SCHEMA_VERSION"),
			Mode:            entities.AggregationMode(os.Getenv("PIPELINE_AGGREGATION_MODE")),
			LazyQuotes:      lazyQuotes,
			AppendStoreTag:  appendStoreTag,
			DispatchWorkers: dispatchWorkers,
		},
		InvoiceAPI: InvoiceAPI{
			URL:            os.Getenv("INVOICE_API_URL"),
			RequestTimeout: requestTimeout,
		},
		Stores: Stores{
			File:          os.Getenv("STORES_FILE"),
			OnUnavailable: resolver.UnavailablePolicy(os.Getenv("STORES_ON_UNAVAILABLE")),
		},
		Debug: Debug{
			MetricsEnabled: metricsEnabled,
			MetricsPort:    os.Getenv("METRICS_PORT"),
			PprofEnabled:   pprofEnabled,
			PprofPort:      os.Getenv("PPROF_PORT"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Pipeline.SchemaVersion == "" {
		return errors.New("PIPELINE_SCHEMA_VERSION is required")
	}
	if !cfg.Pipeline.Mode.Valid() {
		return fmt.Errorf("PIPELINE_AGGREGATION_MODE must be %q or %q", entities.PerRecord, entities.PerCustomer)
	}
	if cfg.Pipeline.DispatchWorkers < 0 {
		return errors.New("PIPELINE_DISPATCH_WORKERS must be positive")
	}
	if cfg.Pipeline.DispatchWorkers == 0 {
		cfg.Pipeline.DispatchWorkers = 1
	}

	if cfg.InvoiceAPI.URL == "" {
		return errors.New("INVOICE_API_URL is required")
	}
	if cfg.InvoiceAPI.RequestTimeout == time.Duration(0) {
		return errors.New("INVOICE_API_REQUEST_TIMEOUT is required")
	}

	if cfg.Stores.File == "" {
		return errors.New("STORES_FILE is required")
	}
	if cfg.Stores.OnUnavailable == "" {
		cfg.Stores.OnUnavailable = resolver.SkipUnavailable
	}
	if !cfg.Stores.OnUnavailable.Valid() {
		return fmt.Errorf("STORES_ON_UNAVAILABLE must be %q or %q", resolver.SkipUnavailable, resolver.FailUnavailable)
	}

	if cfg.Debug.MetricsPort == "" && cfg.Debug.MetricsEnabled {
		return errors.New("MetricsPort is required (set via METRICS_PORT env variable)")
	}
	if cfg.Debug.PprofPort == "" && cfg.Debug.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
