package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/plugin-menus/internal/platform/telemetry"
)

// Stack returns the inbound middleware in the order the router applies them:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Recovery is outermost so a panic anywhere below still yields a problem
// response. Timeout is innermost so the logged status includes 504s. A
// contribution request returns once its actions are scheduled, so the
// timeout never bounds menu registration itself.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
