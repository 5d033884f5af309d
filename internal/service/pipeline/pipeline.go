package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"invoicer/internal/entities"
	"invoicer/internal/pkg/metrics"
	"invoicer/internal/service/dispatcher"
	"invoicer/internal/service/resolver"
	"invoicer/pkg/logger"
)

// Stages включает отдельные этапы прогона: enrich-команде не нужна
// отправка счетов, invoices-команде — резолв по сторам.
type Stages struct {
	Resolve       bool
	WriteEnriched bool
	Dispatch      bool
}

type Options struct {
	InputPath    string
	EnrichedPath string
	Mode         entities.AggregationMode
	Stages       Stages
}

// Summary итог прогона батча.
type Summary struct {
	RunID      string
	Rows       int
	Resolved   int
	Unresolved int
	Invoices   int
	Dispatched int
	Failed     int
	Failures   []dispatcher.Failure
}

// Pipeline прогоняет один батч до конца: load -> resolve -> enriched CSV ->
// aggregate -> dispatch. Данные текут строго вперёд, общего мутабельного
// состояния между этапами нет.
type Pipeline struct {
	log        handlerLogger
	source     Source
	resolver   Resolver
	writer     EnrichedWriter
	aggregator Aggregator
	dispatcher Dispatcher
	opts       Options
}

func New(
	log handlerLogger,
	source Source,
	identityResolver Resolver,
	writer EnrichedWriter,
	invoiceAggregator Aggregator,
	invoiceDispatcher Dispatcher,
	opts Options,
) *Pipeline {
	return &Pipeline{
		log:        log,
		source:     source,
		resolver:   identityResolver,
		writer:     writer,
		aggregator: invoiceAggregator,
		dispatcher: invoiceDispatcher,
		opts:       opts,
	}
}

// Run выполняет батч. Фатальны только загрузка входного файла и запись
// выходных артефактов; нерезолвленная строка или отказ отправки одного
// счёта батч не останавливают.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		RunID: uuid.NewString(),
	}

	runLog := p.log.With(
		logger.NewField("run_id", summary.RunID),
		logger.NewField("input", p.opts.InputPath),
	)

	records, err := p.source.Load(p.opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load shipment export: %w", err)
	}
	summary.Rows = len(records)
	metrics.RowsRead.Add(float64(len(records)))

	enriched, err := p.enrich(ctx, records, summary)
	if err != nil {
		return nil, err
	}

	if p.opts.Stages.WriteEnriched {
		if err := p.writer.WriteEnriched(p.opts.EnrichedPath, enriched); err != nil {
			return nil, fmt.Errorf("write enriched export: %w", err)
		}
		runLog.Info("enriched export written",
			logger.NewField("path", p.opts.EnrichedPath),
		)
	}

	if !p.opts.Stages.Dispatch {
		p.logSummary(runLog, summary)
		return summary, nil
	}

	invoices, err := p.aggregator.Build(enriched, p.opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("aggregate invoices: %w", err)
	}
	summary.Invoices = len(invoices)

	report, err := p.dispatcher.DispatchAll(ctx, invoices)
	if err != nil {
		return nil, fmt.Errorf("dispatch invoices: %w", err)
	}

	summary.Dispatched = report.Dispatched
	summary.Failed = len(report.Failures)
	summary.Failures = report.Failures
	metrics.InvoicesDispatched.Add(float64(report.Dispatched))
	metrics.DispatchFailures.Add(float64(len(report.Failures)))

	p.logSummary(runLog, summary)
	return summary, nil
}

func (p *Pipeline) enrich(ctx context.Context, records []entities.ShipmentRecord, summary *Summary) ([]entities.EnrichedRecord, error) {
	enriched := make([]entities.EnrichedRecord, 0, len(records))

	for _, record := range records {
		item := entities.EnrichedRecord{ShipmentRecord: record}

		switch {
		case record.FullName != "":
			// выгрузка уже обогащена, по сторам не ходим
			item.Identity = &entities.CustomerIdentity{
				FullName:  record.FullName,
				Email:     record.Email,
				SourceTag: record.SourceTag,
			}
		case p.opts.Stages.Resolve:
			identity, err := p.resolver.Resolve(ctx, record.TrackingID)
			if err != nil && !errors.Is(err, resolver.ErrEmptyTrackingID) {
				// эскалация по политике fail: стор лёг, прогон прерываем
				return nil, err
			}
			item.Identity = identity
		}

		if item.Identity.Empty() {
			summary.Unresolved++
			metrics.IdentitiesUnresolved.Inc()
		} else {
			summary.Resolved++
			metrics.IdentitiesResolved.Inc()
		}

		enriched = append(enriched, item)
	}

	return enriched, nil
}

func (p *Pipeline) logSummary(log logger.Logger, summary *Summary) {
	log.With(
		logger.NewField("rows", summary.Rows),
		logger.NewField("resolved", summary.Resolved),
		logger.NewField("unresolved", summary.Unresolved),
		logger.NewField("invoices", summary.Invoices),
		logger.NewField("dispatched", summary.Dispatched),
		logger.NewField("failed", summary.Failed),
	).Info("pipeline run finished")
}
