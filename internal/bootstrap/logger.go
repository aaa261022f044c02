package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/FreshMeal_Go/internal/config"
	"github.com/osse101/FreshMeal_Go/internal/logger"
)

// SetupLogger installs the process logger described by cfg, writing to w, and
// reports any configuration warnings through it.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	// Source locations only in development
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	l := logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	l.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"store_driver", cfg.StoreDriver)
	l.Debug(LogMsgConfigLoaded,
		"port", cfg.Port,
		"past_date_policy", cfg.PastDatePolicy,
		"timezone", cfg.Location.String(),
		"default_user_id", cfg.DefaultUserID)

	for _, w := range cfg.Warnings() {
		l.Warn(LogMsgConfigWarning, "warning", w)
	}
	return l
}
