package dispatcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"invoicer/internal/entities"
	"invoicer/pkg/logger"
	"invoicer/pkg/workerpool"
)

// Failure отказ отправки одного счёта.
type Failure struct {
	Number string
	Err    error
}

// Report итог отправки батча счетов.
type Report struct {
	Dispatched int
	Saved      []string
	Failures   []Failure
}

// Dispatcher отправляет счета в рендер-сервис и сохраняет PDF под
// детерминированными именами без коллизий. Отказ одного счёта не
// останавливает остальные.
type Dispatcher struct {
	log      handlerLogger
	renderer Renderer
	outDir   string
	workers  int

	// seq различает файлы одного счёта даже внутри одной наносекунды
	seq atomic.Uint64
}

func New(log handlerLogger, renderer Renderer, outDir string, workers int) *Dispatcher {
	return &Dispatcher{
		log:      log,
		renderer: renderer,
		outDir:   outDir,
		workers:  workers,
	}
}

// DispatchAll отправляет счета пулом воркеров. Ошибка создания выходного
// каталога фатальна; всё остальное собирается в Report.
func (d *Dispatcher) DispatchAll(ctx context.Context, invoices []entities.Invoice) (*Report, error) {
	if err := os.MkdirAll(d.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", d.outDir, err)
	}

	saved := make([]string, len(invoices))
	jobs := make([]workerpool.Job, 0, len(invoices))
	for i, invoice := range invoices {
		jobs = append(jobs, func(ctx context.Context) error {
			path, err := d.dispatch(ctx, invoice)
			if err != nil {
				return err
			}
			saved[i] = path
			return nil
		})
	}

	errs := workerpool.Run(ctx, d.workers, jobs)

	report := &Report{}
	for i, err := range errs {
		if err != nil {
			d.log.With(
				logger.NewField("invoice", invoices[i].Number),
				logger.NewField("error", err),
			).Error("invoice dispatch failed")

			report.Failures = append(report.Failures, Failure{
				Number: invoices[i].Number,
				Err:    err,
			})
			continue
		}

		report.Dispatched++
		report.Saved = append(report.Saved, saved[i])
	}

	return report, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, invoice entities.Invoice) (string, error) {
	pdf, err := d.renderer.Render(ctx, invoice)
	if err != nil {
		return "", err
	}

	path := d.invoicePath(invoice.Number)

	// O_EXCL: коллизия имени это ошибка, молча перезаписывать нельзя
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("save invoice pdf %s: %w", path, err)
	}

	if _, err := f.Write(pdf); err != nil {
		f.Close()
		return "", fmt.Errorf("write invoice pdf %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close invoice pdf %s: %w", path, err)
	}

	d.log.With(
		logger.NewField("invoice", invoice.Number),
		logger.NewField("path", path),
	).Info("invoice pdf saved")

	return path, nil
}

func (d *Dispatcher) invoicePath(number string) string {
	name := fmt.Sprintf("%s_%d_%04d_invoice.pdf", number, time.Now().UnixNano(), d.seq.Add(1))
	return filepath.Join(d.outDir, name)
}
