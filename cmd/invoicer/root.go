package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	application "invoicer/internal/app"
	"invoicer/internal/pkg/config"
	"invoicer/internal/pkg/debugserver"
	"invoicer/internal/pkg/dotenv"
	metrics_system "invoicer/internal/pkg/metrics"
	"invoicer/internal/service/pipeline"
	"invoicer/pkg/logger"
	"invoicer/pkg/logger/zap_adapter"
)

var (
	flagInput     string
	flagEnriched  string
	flagOutputDir string
	flagSchema    string
	flagMode      string
	flagStores    string
	flagWorkers   string
)

var rootCmd = &cobra.Command{
	Use:   "invoicer",
	Short: "Батч-конвейер: выгрузка отправлений -> обогащение -> счета в PDF",
	Long: `invoicer прогоняет CSV-выгрузку отправлений через резолв клиентов
по базам магазинов, собирает счета и отправляет их в рендер-сервис.

Конфигурация читается из окружения (и .env в рабочем каталоге),
флаги перекрывают переменные окружения.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagInput, "input", "", "путь к входной CSV-выгрузке (PIPELINE_INPUT)")
	pf.StringVar(&flagEnriched, "enriched", "", "путь для обогащённой выгрузки (PIPELINE_ENRICHED_OUTPUT)")
	pf.StringVar(&flagOutputDir, "output-dir", "", "каталог для PDF-счетов (PIPELINE_OUTPUT_DIR)")
	pf.StringVar(&flagSchema, "schema", "", "версия схемы выгрузки (PIPELINE_SCHEMA_VERSION)")
	pf.StringVar(&flagMode, "mode", "", "режим агрегации: per-record или per-customer (PIPELINE_AGGREGATION_MODE)")
	pf.StringVar(&flagStores, "stores", "", "путь к stores.yaml (STORES_FILE)")
	pf.StringVar(&flagWorkers, "workers", "", "число параллельных отправок (PIPELINE_DISPATCH_WORKERS)")

	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(invoicesCmd)
	rootCmd.AddCommand(runCmd)
}

// bootstrap поднимает логгер и конфиг. Флаги прокидываются в окружение
// до config.Load, чтобы не плодить второй путь конфигурации.
func bootstrap() (logger.Logger, *config.Config, error) {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}

	var appLogger logger.Logger = zapLogger

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			return nil, nil, fmt.Errorf("load .env file: %w", err)
		}
	} else {
		appLogger.Warn("No .env file found, using system environment variables")
	}

	applyFlagOverrides()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	return appLogger, cfg, nil
}

func applyFlagOverrides() {
	override := func(env, val string) {
		if val != "" {
			os.Setenv(env, val)
		}
	}

	override("PIPELINE_INPUT", flagInput)
	override("PIPELINE_ENRICHED_OUTPUT", flagEnriched)
	override("PIPELINE_OUTPUT_DIR", flagOutputDir)
	override("PIPELINE_SCHEMA_VERSION", flagSchema)
	override("PIPELINE_AGGREGATION_MODE", flagMode)
	override("STORES_FILE", flagStores)
	override("PIPELINE_DISPATCH_WORKERS", flagWorkers)
}

func runBatch(cmd *cobra.Command, stages pipeline.Stages) error {
	log, cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		if err := log.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	opts := pipeline.Options{
		InputPath:    cfg.Pipeline.InputPath,
		EnrichedPath: cfg.Pipeline.EnrichedPath,
		Mode:         cfg.Pipeline.Mode,
		Stages:       stages,
	}
	if err := validateStageInputs(cfg, stages); err != nil {
		log.Error("invalid run options", logger.NewField("error", err))
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	if cfg.Debug.MetricsEnabled {
		server := debugserver.Start(log, cfg.Debug.MetricsPort)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				runLog.Error("debug listener shutdown error", logger.NewField("error", err))
			}
		}()

		metrics_system.StartSystemMetricsCollector(ctx)
	}

	if cfg.Debug.PprofEnabled {
		go func() {
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Debug.PprofPort))
			server := &http.Server{
				Addr:              ":" + cfg.Debug.PprofPort,
				Handler:           http.DefaultServeMux,
				ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			}
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				runLog.Error("pprof server failed", logger.NewField("error", err))
			}
		}()
	}

	app, cleanup, err := application.InitializeApplication(ctx, log, cfg, opts)
	if err != nil {
		runLog.Error("application init failed", logger.NewField("error", err))
		return err
	}
	defer cleanup()

	summary, err := app.Pipeline.Run(ctx)
	if err != nil {
		runLog.Error("batch failed", logger.NewField("error", err))
		return err
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d invoices failed to dispatch", summary.Failed, summary.Invoices)
	}
	return nil
}

// validateStageInputs проверяет только пути, нужные включённым этапам:
// enrich-прогону не нужен каталог счетов, invoices-прогону — enriched-файл.
func validateStageInputs(cfg *config.Config, stages pipeline.Stages) error {
	if cfg.Pipeline.InputPath == "" {
		return errors.New("input file is required (flag --input or PIPELINE_INPUT)")
	}
	if stages.WriteEnriched && cfg.Pipeline.EnrichedPath == "" {
		return errors.New("enriched output path is required (flag --enriched or PIPELINE_ENRICHED_OUTPUT)")
	}
	if stages.Dispatch && cfg.Pipeline.OutputDir == "" {
		return errors.New("output directory is required (flag --output-dir or PIPELINE_OUTPUT_DIR)")
	}
	return nil
}
