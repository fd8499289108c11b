package quotes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/quietday/api/internal/model"
)

var (
	dailyResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daily_quote_resolutions_total",
			Help: "Total number of daily quote resolutions",
		},
		[]string{"scope", "outcome"},
	)

	seedBatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_seed_batches_total",
			Help: "Total number of library seed batches written",
		},
	)

	seedQuotesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_seed_quotes_total",
			Help: "Total number of quotes copied into user libraries",
		},
	)
)

// Resolution outcomes
const (
	outcomeExisting = "existing"
	outcomePicked   = "picked"
	outcomeEmpty    = "empty"
	outcomeError    = "error"
)

func RecordResolution(scope, outcome string) {
	label := "user"
	if scope == model.ScopeGlobal {
		label = "global"
	}
	dailyResolutionsTotal.WithLabelValues(label, outcome).Inc()
}

func RecordSeedBatch(quotes int) {
	seedBatchesTotal.Inc()
	seedQuotesTotal.Add(float64(quotes))
}
