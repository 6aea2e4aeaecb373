// Package metrics tracks per-run processing counters on a private
// Prometheus registry. The CLI gathers them once at exit for the summary
// log line; there is no HTTP exposition in this system.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/punchamoorthee/paymentsengine/internal/domain"
	"github.com/punchamoorthee/paymentsengine/internal/engine"
)

const (
	transactionsMetric  = "payments_transactions_total"
	malformedRowsMetric = "payments_malformed_rows_total"

	acceptedOutcome = "accepted"
)

// Recorder counts processing outcomes for one engine run.
type Recorder struct {
	registry      *prometheus.Registry
	transactions  *prometheus.CounterVec
	malformedRows prometheus.Counter
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		transactions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: transactionsMetric,
			Help: "Transactions handed to the engine, labeled by type and outcome",
		}, []string{"type", "outcome"}),
		malformedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: malformedRowsMetric,
			Help: "Input rows rejected before reaching the engine",
		}),
	}
}

// ObserveTransaction records one engine call. A nil error counts as
// accepted; failures are labeled with their stable reason.
func (r *Recorder) ObserveTransaction(txType domain.TransactionType, err error) {
	r.transactions.WithLabelValues(string(txType), engine.FailureReason(err)).Inc()
}

// ObserveMalformedRow records a row rejected during parsing.
func (r *Recorder) ObserveMalformedRow() {
	r.malformedRows.Inc()
}

// Summary aggregates the counters collected so far.
type Summary struct {
	Accepted  uint64
	Rejected  uint64
	Malformed uint64
}

// Summary gathers the registry and folds the counters into run totals.
func (r *Recorder) Summary() (Summary, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return Summary{}, fmt.Errorf("gather metrics: %w", err)
	}

	var summary Summary
	for _, family := range families {
		switch family.GetName() {
		case transactionsMetric:
			for _, metric := range family.GetMetric() {
				value := uint64(metric.GetCounter().GetValue())
				if outcomeLabel(metric) == acceptedOutcome {
					summary.Accepted += value
				} else {
					summary.Rejected += value
				}
			}
		case malformedRowsMetric:
			for _, metric := range family.GetMetric() {
				summary.Malformed += uint64(metric.GetCounter().GetValue())
			}
		}
	}

	return summary, nil
}

func outcomeLabel(metric *dto.Metric) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == "outcome" {
			return label.GetValue()
		}
	}
	return ""
}
