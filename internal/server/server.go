package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/FreshMeal_Go/internal/handler"
	"github.com/osse101/FreshMeal_Go/internal/logger"
	"github.com/osse101/FreshMeal_Go/internal/mealplan"
	"github.com/osse101/FreshMeal_Go/internal/metrics"
	"github.com/osse101/FreshMeal_Go/internal/recipe"
	"github.com/osse101/FreshMeal_Go/internal/shopping"
)

// Services are the application services the routes dispatch to
type Services struct {
	Recipes  recipe.Service
	Plans    mealplan.Service
	Shopping shopping.Service
}

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	// MaxRequestsPerWindow defaults to the package constant when zero
	MaxRequestsPerWindow int
}

type Server struct {
	httpServer *http.Server
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(store handler.Pinger, svc Services, opts Options) http.Handler {
	maxRequests := opts.MaxRequestsPerWindow
	if maxRequests <= 0 {
		maxRequests = MaxRequestsPerWindow
	}
	detector := NewSuspiciousActivityDetector(maxRequests)
	proxies := NewTrustedProxies(opts.TrustedProxies)

	r := chi.NewRouter()

	// Outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(proxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, proxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(svc.Recipes))
			r.Post("/", handler.HandleCreateRecipe(svc.Recipes))
			r.Get("/category/{categoryId}", handler.HandleListRecipesByCategory(svc.Recipes))
			r.Get("/{id}", handler.HandleGetRecipe(svc.Recipes))
			r.Patch("/{id}", handler.HandleUpdateRecipe(svc.Recipes))
			r.Delete("/{id}", handler.HandleDeleteRecipe(svc.Recipes))
		})

		r.Route("/meal-planner", func(r chi.Router) {
			r.Get("/meal-types", handler.HandleListMealTypes(svc.Plans))
			r.Get("/plans/{userId}", handler.HandleListPlannedMeals(svc.Plans))
			r.Get("/default-plan/{userId}", handler.HandleGetDefaultPlan(svc.Plans))
			r.Post("/planned-meals", handler.HandleAddPlannedMeal(svc.Plans))
			r.Delete("/planned-meals/{id}", handler.HandleRemovePlannedMeal(svc.Plans))
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/week", handler.HandleGetWeek(svc.Plans))
			r.Put("/{date}/{slot}", handler.HandleSetMeal(svc.Plans))
			r.Delete("/{date}/{slot}", handler.HandleClearMeal(svc.Plans))
		})

		r.Route("/shopping-list", func(r chi.Router) {
			r.Get("/", handler.HandleListShopping(svc.Shopping))
			r.Post("/", handler.HandleAddShoppingItem(svc.Shopping))
			r.Delete("/completed", handler.HandleClearCompleted(svc.Shopping))
			r.Patch("/{id}", handler.HandleUpdateShoppingItem(svc.Shopping))
			r.Post("/{id}/toggle", handler.HandleToggleShoppingItem(svc.Shopping))
			r.Delete("/{id}", handler.HandleRemoveShoppingItem(svc.Shopping))
		})

		r.Get("/dashboard", handler.HandleDashboard(svc.Recipes, svc.Plans, svc.Shopping))
	})

	return r
}

// NewServer creates a new Server instance
func NewServer(store handler.Pinger, svc Services, opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(store, svc, opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// Addr is the configured listen address
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start listens until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Serve is Start on an existing listener
func (s *Server) Serve(l net.Listener) error {
	slog.Default().Info(LogMsgServerStarting, "addr", l.Addr().String())
	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware assigns the request id and logs each request.
// Probe and scrape endpoints are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}
