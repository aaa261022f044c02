package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	RecipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesCreated,
			Help: HelpTextRecipesCreated,
		},
	)

	RecipesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesDeleted,
			Help: HelpTextRecipesDeleted,
		},
	)

	RecipeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipeCacheLookups,
			Help: HelpTextRecipeCacheLookups,
		},
		[]string{LabelResult},
	)

	MealsPlanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMealsPlanned,
			Help: HelpTextMealsPlanned,
		},
		[]string{LabelSlot},
	)

	MealsCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMealsCleared,
			Help: HelpTextMealsCleared,
		},
	)

	ShoppingItemsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShoppingItemsAdded,
			Help: HelpTextShoppingItemsAdded,
		},
		[]string{LabelSource},
	)

	ShoppingItemsCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShoppingItemsCleared,
			Help: HelpTextShoppingItemsCleared,
		},
	)

	IngredientSyncErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIngredientSyncErrors,
			Help: HelpTextIngredientSyncErrors,
		},
	)
)
