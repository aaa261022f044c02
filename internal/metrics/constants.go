package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameRecipesCreated       = "recipes_created_total"
	MetricNameRecipesDeleted       = "recipes_deleted_total"
	MetricNameRecipeCacheLookups   = "recipe_cache_lookups_total"
	MetricNameMealsPlanned         = "meals_planned_total"
	MetricNameMealsCleared         = "meals_cleared_total"
	MetricNameShoppingItemsAdded   = "shopping_items_added_total"
	MetricNameShoppingItemsCleared = "shopping_items_cleared_total"
	MetricNameIngredientSyncErrors = "ingredient_sync_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextRecipesCreated       = "Total number of recipes created"
	HelpTextRecipesDeleted       = "Total number of recipes deleted"
	HelpTextRecipeCacheLookups   = "Recipe cache lookups by result"
	HelpTextMealsPlanned         = "Total number of meals placed on the calendar"
	HelpTextMealsCleared         = "Total number of calendar slots cleared"
	HelpTextShoppingItemsAdded   = "Total number of shopping items added"
	HelpTextShoppingItemsCleared = "Total number of completed shopping items cleared"
	HelpTextIngredientSyncErrors = "Total number of failed ingredient merges into the shopping list"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelSlot   = "slot"
	LabelSource = "source"
	LabelResult = "result"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
