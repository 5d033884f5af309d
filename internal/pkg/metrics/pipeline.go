package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RowsRead = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_rows_read_total",
			Help: "Shipment rows read from the source export",
		},
	)

	IdentitiesResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_identities_resolved_total",
			Help: "Rows with a customer identity resolved from a record store",
		},
	)

	IdentitiesUnresolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_identities_unresolved_total",
			Help: "Rows with no matching customer identity in any store",
		},
	)

	InvoicesDispatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_invoices_dispatched_total",
			Help: "Invoices rendered and saved as PDF",
		},
	)

	DispatchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_dispatch_failures_total",
			Help: "Invoices the render service rejected or that failed to save",
		},
	)
)
